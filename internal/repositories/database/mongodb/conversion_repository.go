package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abishekraja/currency_converter_app/internal/apperrors"
	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	portsrepo "github.com/abishekraja/currency_converter_app/internal/core/ports/repositories"
	"github.com/abishekraja/currency_converter_app/internal/models"
	"github.com/abishekraja/currency_converter_app/internal/utils/mapping"
	"github.com/abishekraja/currency_converter_app/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoConversionRepository struct {
	BaseRepository
}

// NewConversionRepository creates a new repository for conversion history data.
func NewConversionRepository(connector *database.Connector, dbName string) portsrepo.ConversionRepositoryFacade {
	return &MongoConversionRepository{
		BaseRepository: BaseRepository{Connector: connector, Database: dbName},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConversionRepositoryFacade = (*MongoConversionRepository)(nil)

// SaveConversion inserts a new conversion record, assigning its identifier
// and defaulting the timestamp when absent. The handler validates input
// first; the check here is a defensive guard so a malformed record can never
// reach the collection through another code path.
func (r *MongoConversionRepository) SaveConversion(ctx context.Context, record domain.ConversionRecord) (*domain.ConversionRecord, error) {
	if !record.HasRequiredFields() {
		return nil, fmt.Errorf("conversion record is missing mandatory fields: %w", apperrors.ErrValidation)
	}

	coll, err := r.collection(ctx, models.ConversionHistoryCollection)
	if err != nil {
		return nil, err
	}

	doc := mapping.ToModelConversion(record)
	doc.ID = primitive.NewObjectID()
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now()
	}

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save conversion record: %w", err)
	}

	saved := mapping.ToDomainConversion(doc)
	return &saved, nil
}

// ListRecentConversions retrieves up to limit records sorted by timestamp
// descending. An empty collection yields an empty slice, not an error.
func (r *MongoConversionRepository) ListRecentConversions(ctx context.Context, limit int64) ([]domain.ConversionRecord, error) {
	coll, err := r.collection(ctx, models.ConversionHistoryCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion records: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ConversionHistory
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode conversion records: %w", err)
	}

	return mapping.ToDomainConversions(docs), nil
}

// DeleteConversionByID removes a record in a single atomic find-and-delete
// and returns the removed record. A malformed identifier can never match a
// stored document, so it reports not-found rather than an error.
func (r *MongoConversionRepository) DeleteConversionByID(ctx context.Context, conversionID string) (*domain.ConversionRecord, error) {
	oid, err := primitive.ObjectIDFromHex(conversionID)
	if err != nil {
		return nil, fmt.Errorf("no record with id %s: %w", conversionID, apperrors.ErrNotFound)
	}

	coll, err := r.collection(ctx, models.ConversionHistoryCollection)
	if err != nil {
		return nil, err
	}

	var doc models.ConversionHistory
	err = coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no record with id %s: %w", conversionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete conversion record %s: %w", conversionID, err)
	}

	deleted := mapping.ToDomainConversion(doc)
	return &deleted, nil
}
