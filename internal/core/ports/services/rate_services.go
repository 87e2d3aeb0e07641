package services

import (
	"context"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
)

// RateReaderSvc defines read operations against the exchange-rate provider.
type RateReaderSvc interface {
	// GetRates retrieves the full rate table for a base currency.
	GetRates(ctx context.Context, baseCode string) (*domain.RateTable, error)

	// Convert quotes an amount at the current rate for a currency pair.
	Convert(ctx context.Context, fromCode, toCode string, amount float64) (*domain.ConversionQuote, error)
}

// RateSvcFacade combines all rate-lookup service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
