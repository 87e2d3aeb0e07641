package domain

import "time"

// ConversionRecord is one persisted currency conversion. Records are
// immutable once created; the only mutation is deletion.
type ConversionRecord struct {
	ConversionID    string // Store-assigned, opaque, never reused
	FromCurrency    string
	ToCurrency      string
	Amount          float64 // Input amount, in FromCurrency
	ExchangeRate    float64 // Units of ToCurrency per 1 unit of FromCurrency
	ConvertedAmount float64 // As submitted by the client; not recomputed
	Timestamp       time.Time
}

// HasRequiredFields reports whether all mandatory fields carry a value. A
// zero amount, rate or converted amount counts as missing, matching the
// truthiness check the original web client performs before submitting.
func (r ConversionRecord) HasRequiredFields() bool {
	return r.FromCurrency != "" &&
		r.ToCurrency != "" &&
		r.Amount != 0 &&
		r.ExchangeRate != 0 &&
		r.ConvertedAmount != 0
}
