package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAcquire_ReusesCachedClient(t *testing.T) {
	var dials int32
	fake := &mongo.Client{}

	c := NewConnector("mongodb://unused", time.Second)
	c.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		return fake, nil
	}

	first, err := c.Acquire(context.Background())
	require.NoError(t, err)
	second, err := c.Acquire(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&dials))
}

func TestAcquire_ConcurrentCallersShareOneDial(t *testing.T) {
	var dials int32
	fake := &mongo.Client{}

	c := NewConnector("mongodb://unused", time.Second)
	c.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		time.Sleep(50 * time.Millisecond) // hold the attempt open so racers pile up
		return fake, nil
	}

	const callers = 20
	clients := make([]*mongo.Client, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i], errs[i] = c.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, fake, clients[i])
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&dials))
}

func TestAcquire_FailedAttemptIsNotCached(t *testing.T) {
	var dials int32
	fake := &mongo.Client{}
	dialErr := errors.New("no route to host")

	c := NewConnector("mongodb://unused", time.Second)
	c.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		if atomic.AddInt32(&dials, 1) == 1 {
			return nil, dialErr
		}
		return fake, nil
	}

	_, err := c.Acquire(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dialErr)

	client, err := c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, fake, client)
	assert.EqualValues(t, 2, atomic.LoadInt32(&dials))
}

func TestAcquire_TimesOutInsteadOfHanging(t *testing.T) {
	var dials int32
	fake := &mongo.Client{}

	c := NewConnector("mongodb://unused", 30*time.Millisecond)
	c.dial = func(ctx context.Context, uri string) (*mongo.Client, error) {
		if atomic.AddInt32(&dials, 1) == 1 {
			<-ctx.Done() // simulate an unreachable server
			return nil, ctx.Err()
		}
		return fake, nil
	}

	start := time.Now()
	_, err := c.Acquire(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectTimeout)
	assert.Less(t, time.Since(start), time.Second)

	// The timed-out attempt must not poison subsequent acquisitions.
	client, err := c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, fake, client)
}
