package enrich

import (
	"github.com/samber/lo"

	"github.com/custodia/vault-gateway/internal/domain"
)

// Valuate attaches unit prices and calculated values to a raw asset.
// It is total over its inputs: an unknown symbol or missing price produces a
// nil entry, a malformed balance counts as zero, and a present zero price is
// a valid price that multiplies to a zero value.
func Valuate(asset domain.RawAsset, prices domain.PriceTable, currencies []domain.QuoteCurrency) domain.EnrichedAsset {
	symbol := domain.ExtractSymbol(asset.ID)
	balance := domain.ParseBalance(asset.Available)

	unitPrice := make(map[domain.QuoteCurrency]*float64, len(currencies))
	values := make(map[domain.QuoteCurrency]*float64, len(currencies))
	for _, currency := range currencies {
		price, ok := prices.Price(symbol, currency)
		if !ok {
			unitPrice[currency] = nil
			values[currency] = nil
			continue
		}
		unitPrice[currency] = lo.ToPtr(price)
		values[currency] = lo.ToPtr(balance * price)
	}

	return domain.EnrichedAsset{
		RawAsset:         asset,
		UnitPrice:        unitPrice,
		CalculatedValues: values,
	}
}
