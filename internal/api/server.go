package api

import (
	"net/http"
	"time"
)

// NewServer creates the gateway HTTP server with all routes configured.
func NewServer(port string, handler *Handler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /api/vault-accounts", handler.ListVaultAccounts)
	mux.HandleFunc("GET /api/vault-accounts/{id}", handler.GetVaultAccount)
	mux.HandleFunc("GET /api/vault-accounts/{id}/assets", handler.ListVaultAccountAssets)
	mux.HandleFunc("GET /api/vault-accounts/{id}/{assetId}", handler.GetVaultAsset)
	mux.HandleFunc("GET /api/supported-assets", handler.ListSupportedAssets)
	mux.HandleFunc("GET /api/transactions", handler.ListTransactions)

	return &http.Server{
		Addr:         ":" + port,
		Handler:      withMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewFallbackServer returns a server answering every route with a 500 and the
// startup failure, so a misconfigured deployment reports its problem at the
// HTTP boundary instead of crash-looping.
func NewFallbackServer(port string, startupErr error) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "gateway not started: "+startupErr.Error())
	})

	return &http.Server{
		Addr:         ":" + port,
		Handler:      withMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
