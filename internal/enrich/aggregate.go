package enrich

import (
	"math"

	"github.com/custodia/vault-gateway/internal/domain"
)

// Aggregate sums calculated values per quote currency across an account's
// enriched assets. Every configured currency is present in the result,
// defaulting to zero. Nil and non-finite values are skipped, not summed as
// zero and not allowed to poison the totals.
func Aggregate(assets []domain.EnrichedAsset, currencies []domain.QuoteCurrency) domain.AccountTotals {
	totals := make(domain.AccountTotals, len(currencies))
	for _, currency := range currencies {
		totals[currency] = 0
	}

	for _, asset := range assets {
		for _, currency := range currencies {
			v := asset.CalculatedValues[currency]
			if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
				continue
			}
			totals[currency] += *v
		}
	}

	return totals
}
