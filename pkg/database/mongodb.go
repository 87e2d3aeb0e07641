package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// ErrConnectTimeout is returned when a connection attempt does not complete
// within the connector's configured timeout.
var ErrConnectTimeout = errors.New("database connection timed out")

// DialFunc establishes a verified MongoDB client. It must not return until
// the connection is usable or ctx is done.
type DialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// Connector owns the single shared MongoDB client for the process lifetime.
// The client is established lazily on first Acquire and reused by every
// subsequent caller; there is no teardown in normal operation.
type Connector struct {
	uri     string
	timeout time.Duration
	dial    DialFunc

	mu     sync.RWMutex
	client *mongo.Client

	group singleflight.Group
}

// NewConnector creates a Connector for the given URI. No connection is made
// until Acquire is called.
func NewConnector(uri string, timeout time.Duration) *Connector {
	return &Connector{
		uri:     uri,
		timeout: timeout,
		dial:    dialMongo,
	}
}

// Acquire returns the shared client, establishing it on first use. Concurrent
// callers racing on the first connection share a single in-flight attempt; a
// failed attempt is not cached, so the next call retries fresh. The attempt
// is bounded by the connector's timeout and fails with ErrConnectTimeout
// rather than hanging.
func (c *Connector) Acquire(ctx context.Context) (*mongo.Client, error) {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	v, err, _ := c.group.Do("connect", func() (interface{}, error) {
		// Another caller may have finished connecting while we waited on the
		// single-flight slot.
		c.mu.RLock()
		existing := c.client
		c.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		// The attempt is bounded by the connector timeout, not the caller's
		// context: the established client outlives any single request.
		dialCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		client, err := c.dial(dialCtx, c.uri)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w after %s: %v", ErrConnectTimeout, c.timeout, err)
			}
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		c.mu.Lock()
		c.client = client
		c.mu.Unlock()
		log.Println("Successfully connected to MongoDB.")
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Client), nil
}

// dialMongo connects and verifies the connection with a ping before
// publishing the client.
func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("database URI cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Disconnect with a short independent deadline; ctx may already be done.
		discCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = client.Disconnect(discCtx)
		return nil, err
	}

	return client, nil
}
