package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia/vault-gateway/internal/api"
	"github.com/custodia/vault-gateway/internal/config"
	"github.com/custodia/vault-gateway/internal/enrich"
	"github.com/custodia/vault-gateway/internal/marketdata"
	"github.com/custodia/vault-gateway/internal/platform"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	srv := buildServer(cfg)

	go func() {
		slog.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}

// buildServer wires the gateway, or the fallback app when startup validation
// fails. The fallback keeps the process alive and answering, so a bad deploy
// reports its configuration problem on every route instead of crash-looping.
func buildServer(cfg config.Config) *http.Server {
	if err := cfg.Validate(); err != nil {
		slog.Error("configuration invalid, serving fallback app", "error", err)
		return api.NewFallbackServer(cfg.HTTPPort, err)
	}
	if err := cfg.CheckCredentials(); err != nil {
		slog.Error("credentials invalid, serving fallback app", "error", err)
		return api.NewFallbackServer(cfg.HTTPPort, err)
	}

	platformClient := platform.NewClient(cfg.PlatformBaseURL, cfg.APIKey, cfg.PlatformTimeout)
	prices := marketdata.NewClient(cfg.MarketDataURL, cfg.MarketDataTimeout)
	enricher := enrich.NewService(prices)

	return api.NewServer(cfg.HTTPPort, api.NewHandler(platformClient, enricher))
}
