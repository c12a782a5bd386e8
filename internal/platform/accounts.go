package platform

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia/vault-gateway/internal/domain"
)

// VaultAccounts retrieves every vault account with its asset balances.
func (c *Client) VaultAccounts(ctx context.Context) ([]domain.VaultAccount, error) {
	var accounts []domain.VaultAccount
	if err := c.getJSON(ctx, "/vault/accounts", &accounts); err != nil {
		return nil, fmt.Errorf("fetching vault accounts: %w", err)
	}
	return accounts, nil
}

// VaultAccount retrieves a single vault account by id.
func (c *Client) VaultAccount(ctx context.Context, id string) (domain.VaultAccount, error) {
	var account domain.VaultAccount
	if err := c.getJSON(ctx, "/vault/accounts/"+url.PathEscape(id), &account); err != nil {
		return domain.VaultAccount{}, fmt.Errorf("fetching vault account %s: %w", id, err)
	}
	return account, nil
}

// VaultAsset retrieves a single asset balance within a vault account.
func (c *Client) VaultAsset(ctx context.Context, accountID, assetID string) (domain.RawAsset, error) {
	var asset domain.RawAsset
	path := fmt.Sprintf("/vault/accounts/%s/%s", url.PathEscape(accountID), url.PathEscape(assetID))
	if err := c.getJSON(ctx, path, &asset); err != nil {
		return domain.RawAsset{}, fmt.Errorf("fetching vault asset %s/%s: %w", accountID, assetID, err)
	}
	// Legacy balance payloads omit the asset id.
	if asset.ID == "" {
		asset.ID = assetID
	}
	return asset, nil
}
