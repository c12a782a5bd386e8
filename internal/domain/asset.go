package domain

import "strings"

// QuoteCurrency is the fiat currency code a price or value is expressed in.
type QuoteCurrency string

const (
	USD QuoteCurrency = "USD"
	AUD QuoteCurrency = "AUD"
)

// quoteCurrencies is unexported to prevent external mutation.
var quoteCurrencies = []QuoteCurrency{USD, AUD}

// QuoteCurrencies returns the currencies every valuation is computed in.
func QuoteCurrencies() []QuoteCurrency {
	return append([]QuoteCurrency(nil), quoteCurrencies...)
}

// ExtractSymbol returns the ticker symbol of an asset identifier: the part
// before the first "_". Network and test variants ("BTC_TEST", "ETH_TEST5")
// share the ticker of their main-net asset. Empty input yields "".
func ExtractSymbol(identifier string) string {
	symbol, _, _ := strings.Cut(identifier, "_")
	return symbol
}

// PriceTable maps a ticker symbol to its unit price per quote currency.
// An absent symbol or currency means the price is unknown.
type PriceTable map[string]map[QuoteCurrency]float64

// Price looks up the unit price of symbol in currency.
func (t PriceTable) Price(symbol string, currency QuoteCurrency) (float64, bool) {
	row, ok := t[symbol]
	if !ok {
		return 0, false
	}
	price, ok := row[currency]
	return price, ok
}

// RawAsset is a vault asset exactly as the wallet platform reports it.
type RawAsset struct {
	ID           string `json:"id"`
	Total        string `json:"total,omitempty"`
	Available    string `json:"available"`
	Pending      string `json:"pending,omitempty"`
	Frozen       string `json:"frozen,omitempty"`
	LockedAmount string `json:"lockedAmount,omitempty"`
}

// EnrichedAsset is a RawAsset with unit prices and calculated values attached.
// A nil entry means the price was unavailable; a present zero is a real price.
type EnrichedAsset struct {
	RawAsset
	UnitPrice        map[QuoteCurrency]*float64 `json:"unitPrice"`
	CalculatedValues map[QuoteCurrency]*float64 `json:"calculatedValues"`
}

// AccountTotals holds per-currency sums of an account's calculated values.
type AccountTotals map[QuoteCurrency]float64

// VaultAccount is a vault account as the wallet platform reports it.
type VaultAccount struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	HiddenOnUI    bool       `json:"hiddenOnUI"`
	AutoFuel      bool       `json:"autoFuel"`
	CustomerRefID string     `json:"customerRefId,omitempty"`
	Assets        []RawAsset `json:"assets"`
}

// EnrichedAccount is a VaultAccount whose assets carry valuations and whose
// balances are totalled per quote currency.
type EnrichedAccount struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	HiddenOnUI    bool            `json:"hiddenOnUI"`
	AutoFuel      bool            `json:"autoFuel"`
	CustomerRefID string          `json:"customerRefId,omitempty"`
	Assets        []EnrichedAsset `json:"assets"`
	AssetBalances AccountTotals   `json:"assetBalances"`
}
