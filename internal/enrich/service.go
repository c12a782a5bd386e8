package enrich

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/custodia/vault-gateway/internal/domain"
)

// PriceFetcher retrieves a price table for a set of symbols in one batched
// call. Implemented by marketdata.Client.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, symbols []string, currencies []domain.QuoteCurrency) (domain.PriceTable, error)
}

// Service runs the balance-enrichment pipeline: collect a scope's symbols,
// fetch prices once for the whole scope, valuate every asset, and aggregate
// account-level totals.
type Service struct {
	fetcher    PriceFetcher
	currencies []domain.QuoteCurrency
}

// NewService creates an enrichment Service pricing assets in the standard
// quote currencies.
func NewService(fetcher PriceFetcher) *Service {
	if fetcher == nil {
		panic("enrich.NewService: fetcher is nil")
	}
	return &Service{
		fetcher:    fetcher,
		currencies: domain.QuoteCurrencies(),
	}
}

// fetchScope resolves the price table for one scope of assets. Symbols are
// deduplicated and empty ones dropped; when nothing is left the fetcher is
// not called at all. A fetch failure degrades to an empty table so the
// underlying balance data is still served, just without valuations.
func (s *Service) fetchScope(ctx context.Context, assets []domain.RawAsset) domain.PriceTable {
	symbols := lo.Uniq(lo.FilterMap(assets, func(a domain.RawAsset, _ int) (string, bool) {
		symbol := domain.ExtractSymbol(a.ID)
		return symbol, symbol != ""
	}))
	if len(symbols) == 0 {
		return domain.PriceTable{}
	}

	slog.Debug("fetching prices", "symbols", symbols)
	table, err := s.fetcher.FetchPrices(ctx, symbols, s.currencies)
	if err != nil {
		slog.Warn("price fetch failed, serving balances without valuations", "error", err)
		return domain.PriceTable{}
	}
	slog.Debug("fetched prices", "rows", len(table))
	return table
}

// EnrichAsset valuates a single asset with a dedicated price fetch.
func (s *Service) EnrichAsset(ctx context.Context, asset domain.RawAsset) domain.EnrichedAsset {
	prices := s.fetchScope(ctx, []domain.RawAsset{asset})
	return Valuate(asset, prices, s.currencies)
}

// EnrichAssets valuates a list of assets sharing one batched price fetch.
func (s *Service) EnrichAssets(ctx context.Context, assets []domain.RawAsset) []domain.EnrichedAsset {
	prices := s.fetchScope(ctx, assets)
	return lo.Map(assets, func(a domain.RawAsset, _ int) domain.EnrichedAsset {
		return Valuate(a, prices, s.currencies)
	})
}

// EnrichAccount valuates an account's assets and attaches per-currency
// totals. All non-pricing account fields pass through unchanged.
func (s *Service) EnrichAccount(ctx context.Context, account domain.VaultAccount) domain.EnrichedAccount {
	assets := s.EnrichAssets(ctx, account.Assets)
	return domain.EnrichedAccount{
		ID:            account.ID,
		Name:          account.Name,
		HiddenOnUI:    account.HiddenOnUI,
		AutoFuel:      account.AutoFuel,
		CustomerRefID: account.CustomerRefID,
		Assets:        assets,
		AssetBalances: Aggregate(assets, s.currencies),
	}
}

// EnrichAccounts enriches a list of accounts, one batched fetch per account.
func (s *Service) EnrichAccounts(ctx context.Context, accounts []domain.VaultAccount) []domain.EnrichedAccount {
	return lo.Map(accounts, func(a domain.VaultAccount, _ int) domain.EnrichedAccount {
		return s.EnrichAccount(ctx, a)
	})
}
