package services

import (
	"context"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	"github.com/abishekraja/currency_converter_app/internal/dto"
)

// ConversionReaderSvc defines read operations for conversion history.
type ConversionReaderSvc interface {
	// ListRecentConversions retrieves the most recent records, newest first.
	ListRecentConversions(ctx context.Context) ([]domain.ConversionRecord, error)
}

// ConversionWriterSvc defines write operations for conversion history.
type ConversionWriterSvc interface {
	// CreateConversion persists a new conversion record.
	CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.ConversionRecord, error)

	// DeleteConversion removes a record by its identifier.
	DeleteConversion(ctx context.Context, conversionID string) (*domain.ConversionRecord, error)
}

// ConversionSvcFacade combines all conversion-history service interfaces.
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWriterSvc
}
