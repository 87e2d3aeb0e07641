package providers

import (
	"context"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
)

// RateProvider fetches live exchange rates from an external provider.
type RateProvider interface {
	// FetchLatestRates retrieves the full rate table for one base currency.
	FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateTable, error)
}
