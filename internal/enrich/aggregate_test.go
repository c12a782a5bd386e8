package enrich

import (
	"math"
	"testing"

	"github.com/samber/lo"

	"github.com/custodia/vault-gateway/internal/domain"
)

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil, domain.QuoteCurrencies())

	for _, currency := range domain.QuoteCurrencies() {
		if got, ok := totals[currency]; !ok || got != 0 {
			t.Errorf("totals[%s] = %v, %v, want 0, true", currency, got, ok)
		}
	}
}

func TestAggregateSkipsNil(t *testing.T) {
	assets := []domain.EnrichedAsset{
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(100.0), domain.AUD: nil}},
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: nil, domain.AUD: nil}},
	}

	totals := Aggregate(assets, domain.QuoteCurrencies())

	if totals[domain.USD] != 100 {
		t.Errorf("totals[USD] = %v, want 100", totals[domain.USD])
	}
	if totals[domain.AUD] != 0 {
		t.Errorf("totals[AUD] = %v, want 0", totals[domain.AUD])
	}
}

func TestAggregateSkipsNonFinite(t *testing.T) {
	assets := []domain.EnrichedAsset{
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(math.NaN())}},
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(math.Inf(1))}},
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(25.0)}},
	}

	totals := Aggregate(assets, domain.QuoteCurrencies())

	if totals[domain.USD] != 25 {
		t.Errorf("totals[USD] = %v, want 25", totals[domain.USD])
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	assets := []domain.EnrichedAsset{
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(0.1)}},
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(0.2)}},
		{CalculatedValues: map[domain.QuoteCurrency]*float64{domain.USD: lo.ToPtr(0.3)}},
	}
	reversed := []domain.EnrichedAsset{assets[2], assets[1], assets[0]}

	a := Aggregate(assets, domain.QuoteCurrencies())[domain.USD]
	b := Aggregate(reversed, domain.QuoteCurrencies())[domain.USD]

	if math.Abs(a-b) > 1e-12 {
		t.Errorf("totals differ beyond rounding: %v vs %v", a, b)
	}
}
