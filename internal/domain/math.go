package domain

import "github.com/shopspring/decimal"

// ParseBalance parses a platform balance string into a float64 quantity.
// Empty or malformed balances count as zero: upstream omits balance fields
// freely across SDK revisions and a missing balance must not fail a response.
func ParseBalance(value string) float64 {
	if value == "" {
		return 0
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
