package mongodb

import (
	"context"
	"fmt"

	"github.com/abishekraja/currency_converter_app/pkg/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseRepository provides shared access to the lazily established database
// connection. Every operation acquires the connection through the connector
// before touching its collection, so a connection failure surfaces as that
// operation's error rather than at startup.
type BaseRepository struct {
	Connector *database.Connector
	Database  string
}

// collection acquires the shared client and returns a handle to the named
// collection.
func (r *BaseRepository) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := r.Connector.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire database connection: %w", err)
	}
	return client.Database(r.Database).Collection(name), nil
}
