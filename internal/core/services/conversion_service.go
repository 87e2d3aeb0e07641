package services

import (
	"context"
	"fmt"
	"time"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	portsrepo "github.com/abishekraja/currency_converter_app/internal/core/ports/repositories"
	"github.com/abishekraja/currency_converter_app/internal/dto"
)

// defaultHistoryLimit bounds the number of records a list returns.
const defaultHistoryLimit = 10

type ConversionService struct {
	conversionRepo portsrepo.ConversionRepositoryFacade
}

func NewConversionService(conversionRepo portsrepo.ConversionRepositoryFacade) *ConversionService {
	return &ConversionService{conversionRepo: conversionRepo}
}

// CreateConversion persists a new conversion record. The timestamp defaults
// to now when the request carries none; everything else is stored exactly as
// submitted — the converted amount is the client's arithmetic, not ours.
func (s *ConversionService) CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.ConversionRecord, error) {
	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	record := domain.ConversionRecord{
		FromCurrency:    req.FromCurrency,
		ToCurrency:      req.ToCurrency,
		Amount:          req.Amount,
		ExchangeRate:    req.ExchangeRate,
		ConvertedAmount: req.ConvertedAmount,
		Timestamp:       timestamp,
	}

	saved, err := s.conversionRepo.SaveConversion(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion in service: %w", err)
	}

	return saved, nil
}

// ListRecentConversions retrieves the most recent records, newest first.
func (s *ConversionService) ListRecentConversions(ctx context.Context) ([]domain.ConversionRecord, error) {
	records, err := s.conversionRepo.ListRecentConversions(ctx, defaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions in service: %w", err)
	}
	// Return empty slice if no records found, not nil
	if records == nil {
		return []domain.ConversionRecord{}, nil
	}
	return records, nil
}

// DeleteConversion removes a record by identifier and returns the removed
// record. Propagates apperrors.ErrNotFound for unknown identifiers.
func (s *ConversionService) DeleteConversion(ctx context.Context, conversionID string) (*domain.ConversionRecord, error) {
	deleted, err := s.conversionRepo.DeleteConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete conversion in service: %w", err)
	}
	return deleted, nil
}
