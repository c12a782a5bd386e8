package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/custodia/vault-gateway/internal/domain"
	"github.com/custodia/vault-gateway/internal/enrich"
	"github.com/custodia/vault-gateway/internal/platform"
)

// PlatformClient is the subset of the wallet platform API the gateway serves.
type PlatformClient interface {
	VaultAccounts(ctx context.Context) ([]domain.VaultAccount, error)
	VaultAccount(ctx context.Context, id string) (domain.VaultAccount, error)
	VaultAsset(ctx context.Context, accountID, assetID string) (domain.RawAsset, error)
	SupportedAssets(ctx context.Context) ([]json.RawMessage, error)
	Transactions(ctx context.Context) ([]json.RawMessage, error)
}

// Handler provides the gateway's HTTP endpoints.
type Handler struct {
	platform PlatformClient
	enricher *enrich.Service
}

// NewHandler creates an API handler.
func NewHandler(platform PlatformClient, enricher *enrich.Service) *Handler {
	return &Handler{platform: platform, enricher: enricher}
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "vault gateway is running"})
}

// ListVaultAccounts handles GET /api/vault-accounts.
func (h *Handler) ListVaultAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.platform.VaultAccounts(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enricher.EnrichAccounts(r.Context(), accounts))
}

// GetVaultAccount handles GET /api/vault-accounts/{id}.
func (h *Handler) GetVaultAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.platform.VaultAccount(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enricher.EnrichAccount(r.Context(), account))
}

// ListVaultAccountAssets handles GET /api/vault-accounts/{id}/assets.
// Asset scope: enriched per asset, no account-level totals.
func (h *Handler) ListVaultAccountAssets(w http.ResponseWriter, r *http.Request) {
	account, err := h.platform.VaultAccount(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enricher.EnrichAssets(r.Context(), account.Assets))
}

// GetVaultAsset handles GET /api/vault-accounts/{id}/{assetId}.
func (h *Handler) GetVaultAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.platform.VaultAsset(r.Context(), r.PathValue("id"), r.PathValue("assetId"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.enricher.EnrichAsset(r.Context(), asset))
}

// ListSupportedAssets handles GET /api/supported-assets.
func (h *Handler) ListSupportedAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.platform.SupportedAssets(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

// ListTransactions handles GET /api/transactions.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.platform.Transactions(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

// writeUpstreamError maps a failed platform call onto the response: the
// upstream status passes through unchanged when the platform reported one,
// transport-level failures become a 500.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var perr *platform.Error
	if errors.As(err, &perr) && perr.Status != 0 {
		if perr.NotFound() {
			writeError(w, http.StatusNotFound, "requested resource does not exist: "+perr.Message)
			return
		}
		writeError(w, perr.Status, perr.Message)
		return
	}
	slog.Error("platform request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error","status":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg, "status": status})
}
