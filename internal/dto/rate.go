package dto

import (
	"time"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
)

// RateTableResponse defines the data returned for a base currency's rates.
// The conversion_rates key mirrors the upstream provider payload the web
// client originally consumed directly.
type RateTableResponse struct {
	BaseCode        string             `json:"baseCode"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	FetchedAt       time.Time          `json:"fetchedAt"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO.
func ToRateTableResponse(t *domain.RateTable) RateTableResponse {
	return RateTableResponse{
		BaseCode:        t.BaseCode,
		ConversionRates: t.Rates,
		FetchedAt:       t.FetchedAt,
	}
}

// ConversionQuoteResponse defines the data returned for a rate quote.
type ConversionQuoteResponse struct {
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	Rate            float64 `json:"rate"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"convertedAmount"`
}

// ToConversionQuoteResponse converts a domain.ConversionQuote to its DTO.
func ToConversionQuoteResponse(q *domain.ConversionQuote) ConversionQuoteResponse {
	return ConversionQuoteResponse{
		FromCurrency:    q.FromCurrency,
		ToCurrency:      q.ToCurrency,
		Rate:            q.Rate,
		Amount:          q.Amount,
		ConvertedAmount: q.ConvertedAmount,
	}
}
