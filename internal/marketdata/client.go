package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/custodia/vault-gateway/internal/domain"
)

// Client fetches spot prices from a CryptoCompare-style market data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a market data client. The timeout bounds each fetch.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPrices retrieves unit prices for all symbols in all quote currencies
// with a single batched request. An empty symbol set returns an empty table
// without touching the network. Failure is all-or-nothing: a transport error,
// a non-200 status or an unparsable body never yields a partial table.
func (c *Client) FetchPrices(ctx context.Context, symbols []string, currencies []domain.QuoteCurrency) (domain.PriceTable, error) {
	if len(symbols) == 0 {
		return domain.PriceTable{}, nil
	}

	fsyms := strings.Join(symbols, ",")
	tsyms := strings.Join(lo.Map(currencies, func(c domain.QuoteCurrency, _ int) string {
		return string(c)
	}), ",")
	reqURL := fmt.Sprintf("%s/data/pricemulti?fsyms=%s&tsyms=%s",
		c.baseURL, url.QueryEscape(fsyms), url.QueryEscape(tsyms))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating market data request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market data request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading market data response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data HTTP %d: %s", resp.StatusCode, string(body))
	}

	// Parse: {"BTC":{"USD":50000,"AUD":70000},"ETH":{...}}
	// Error payloads ({"Response":"Error",...}) fail this shape and are
	// reported as parse errors rather than silently misread as prices.
	var table domain.PriceTable
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("parsing market data response: %w", err)
	}
	if table == nil {
		table = domain.PriceTable{}
	}
	return table, nil
}
