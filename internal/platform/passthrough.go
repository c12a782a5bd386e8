package platform

import (
	"context"
	"encoding/json"
	"fmt"
)

// SupportedAssets retrieves the platform's supported asset list. Entries stay
// raw JSON: the gateway serves them unmodified and must not drop fields that
// newer platform revisions add.
func (c *Client) SupportedAssets(ctx context.Context) ([]json.RawMessage, error) {
	var assets []json.RawMessage
	if err := c.getJSON(ctx, "/supported_assets", &assets); err != nil {
		return nil, fmt.Errorf("fetching supported assets: %w", err)
	}
	return assets, nil
}

// Transactions retrieves the workspace transaction list, raw for the same
// reason as SupportedAssets.
func (c *Client) Transactions(ctx context.Context) ([]json.RawMessage, error) {
	var txs []json.RawMessage
	if err := c.getJSON(ctx, "/transactions", &txs); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return txs, nil
}
