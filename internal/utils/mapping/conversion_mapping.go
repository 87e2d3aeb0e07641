package mapping

import (
	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	"github.com/abishekraja/currency_converter_app/internal/models"
)

// ToDomainConversion converts a persistence model to its domain representation.
func ToDomainConversion(m models.ConversionHistory) domain.ConversionRecord {
	return domain.ConversionRecord{
		ConversionID:    m.ID.Hex(),
		FromCurrency:    m.FromCurrency,
		ToCurrency:      m.ToCurrency,
		Amount:          m.Amount,
		ExchangeRate:    m.ExchangeRate,
		ConvertedAmount: m.ConvertedAmount,
		Timestamp:       m.Timestamp,
	}
}

// ToModelConversion converts a domain record to its persistence model.
// The identifier is left unset; the repository assigns it on insert.
func ToModelConversion(d domain.ConversionRecord) models.ConversionHistory {
	return models.ConversionHistory{
		FromCurrency:    d.FromCurrency,
		ToCurrency:      d.ToCurrency,
		Amount:          d.Amount,
		ExchangeRate:    d.ExchangeRate,
		ConvertedAmount: d.ConvertedAmount,
		Timestamp:       d.Timestamp,
	}
}

// ToDomainConversions converts a slice of persistence models.
func ToDomainConversions(ms []models.ConversionHistory) []domain.ConversionRecord {
	res := make([]domain.ConversionRecord, len(ms))
	for i, m := range ms {
		res[i] = ToDomainConversion(m)
	}
	return res
}
