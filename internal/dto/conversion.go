package dto

import (
	"time"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
)

// CreateConversionRequest defines the data needed to record a conversion.
// Binding validation is intentionally not used here: the required-fields
// check treats zero values as missing (see HasRequiredFields), matching the
// contract the original web client relies on, and the error body must be the
// fixed "Missing required fields" message regardless of which field failed.
type CreateConversionRequest struct {
	FromCurrency    string     `json:"fromCurrency"`
	ToCurrency      string     `json:"toCurrency"`
	Amount          float64    `json:"amount"`
	ExchangeRate    float64    `json:"exchangeRate"`
	ConvertedAmount float64    `json:"convertedAmount"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
}

// HasRequiredFields reports whether all five mandatory fields carry a
// non-zero value. A numeric 0 counts as missing.
func (r CreateConversionRequest) HasRequiredFields() bool {
	return r.FromCurrency != "" &&
		r.ToCurrency != "" &&
		r.Amount != 0 &&
		r.ExchangeRate != 0 &&
		r.ConvertedAmount != 0
}

// ConversionResponse defines the data returned for a conversion record. The
// identifier is serialized as "_id" to match the persisted document layout
// the table view consumes.
type ConversionResponse struct {
	ID              string    `json:"_id"`
	FromCurrency    string    `json:"fromCurrency"`
	ToCurrency      string    `json:"toCurrency"`
	Amount          float64   `json:"amount"`
	ExchangeRate    float64   `json:"exchangeRate"`
	ConvertedAmount float64   `json:"convertedAmount"`
	Timestamp       time.Time `json:"timestamp"`
}

// ToConversionResponse converts a domain.ConversionRecord to ConversionResponse DTO.
func ToConversionResponse(rec *domain.ConversionRecord) ConversionResponse {
	return ConversionResponse{
		ID:              rec.ConversionID,
		FromCurrency:    rec.FromCurrency,
		ToCurrency:      rec.ToCurrency,
		Amount:          rec.Amount,
		ExchangeRate:    rec.ExchangeRate,
		ConvertedAmount: rec.ConvertedAmount,
		Timestamp:       rec.Timestamp,
	}
}

// ToListConversionResponse converts a slice of domain records to DTOs.
// Always returns a non-nil slice so the JSON payload is an array even when
// the history is empty.
func ToListConversionResponse(records []domain.ConversionRecord) []ConversionResponse {
	res := make([]ConversionResponse, len(records))
	for i, rec := range records {
		res[i] = ToConversionResponse(&rec)
	}
	return res
}
