package domain

import "time"

// RateTable holds every rate published by the provider for one base
// currency, as units of target currency per 1 unit of base.
type RateTable struct {
	BaseCode  string
	Rates     map[string]float64
	FetchedAt time.Time
}

// ConversionQuote is the result of converting an amount at the current rate.
// It is a quote only; nothing is persisted until the client submits it as a
// ConversionRecord.
type ConversionQuote struct {
	FromCurrency    string
	ToCurrency      string
	Rate            float64
	Amount          float64
	ConvertedAmount float64
}
