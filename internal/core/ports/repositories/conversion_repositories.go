package repositories

import (
	"context"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
)

// ConversionReader defines read operations for conversion history.
type ConversionReader interface {
	// ListRecentConversions retrieves up to limit records, newest first.
	ListRecentConversions(ctx context.Context, limit int64) ([]domain.ConversionRecord, error)
}

// ConversionWriter defines write operations for conversion history.
type ConversionWriter interface {
	// SaveConversion persists a new record and returns it with the
	// store-assigned identifier.
	SaveConversion(ctx context.Context, record domain.ConversionRecord) (*domain.ConversionRecord, error)

	// DeleteConversionByID atomically removes a record and returns it.
	// Returns apperrors.ErrNotFound when no record has that identifier.
	DeleteConversionByID(ctx context.Context, conversionID string) (*domain.ConversionRecord, error)
}

// ConversionRepositoryFacade combines all conversion-history repository interfaces.
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
