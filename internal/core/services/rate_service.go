package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abishekraja/currency_converter_app/internal/apperrors"
	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	portsprov "github.com/abishekraja/currency_converter_app/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// quoteScale is the number of decimal places a converted amount is rounded to.
const quoteScale = 6

// RateService serves exchange rates from an external provider with a small
// in-memory cache per base currency. When the provider is unreachable it
// falls back to the last successfully fetched table, however stale.
type RateService struct {
	provider portsprov.RateProvider
	ttl      time.Duration

	mu    sync.RWMutex
	cache map[string]*domain.RateTable
}

func NewRateService(provider portsprov.RateProvider, ttl time.Duration) *RateService {
	return &RateService{
		provider: provider,
		ttl:      ttl,
		cache:    make(map[string]*domain.RateTable),
	}
}

// GetRates retrieves the rate table for a base currency, serving from cache
// while it is fresh.
func (s *RateService) GetRates(ctx context.Context, baseCode string) (*domain.RateTable, error) {
	base := strings.ToUpper(strings.TrimSpace(baseCode))
	if len(base) != 3 {
		return nil, fmt.Errorf("currency code must be 3 letters: %w", apperrors.ErrValidation)
	}

	s.mu.RLock()
	cached := s.cache[base]
	s.mu.RUnlock()

	if cached != nil && time.Since(cached.FetchedAt) < s.ttl {
		return cached, nil
	}

	table, err := s.provider.FetchLatestRates(ctx, base)
	if err != nil {
		// Serve the stale table rather than failing the request outright.
		if cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", base, err)
	}

	s.mu.Lock()
	s.cache[base] = table
	s.mu.Unlock()

	return table, nil
}

// Convert quotes an amount at the current rate for a currency pair. The
// arithmetic runs on decimals so repeated float rounding never leaks into
// the quote.
func (s *RateService) Convert(ctx context.Context, fromCode, toCode string, amount float64) (*domain.ConversionQuote, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	to := strings.ToUpper(strings.TrimSpace(toCode))
	if len(to) != 3 {
		return nil, fmt.Errorf("currency code must be 3 letters: %w", apperrors.ErrValidation)
	}

	table, err := s.GetRates(ctx, fromCode)
	if err != nil {
		return nil, err
	}

	rate, ok := table.Rates[to]
	if !ok {
		return nil, fmt.Errorf("currency %s not in rate table for %s: %w", to, table.BaseCode, apperrors.ErrNotFound)
	}

	converted := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(quoteScale)

	return &domain.ConversionQuote{
		FromCurrency:    table.BaseCode,
		ToCurrency:      to,
		Rate:            rate,
		Amount:          amount,
		ConvertedAmount: converted.InexactFloat64(),
	}, nil
}
