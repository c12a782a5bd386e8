package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia/vault-gateway/internal/platform"
)

// Config holds all gateway configuration loaded from the environment.
type Config struct {
	APIKey            string
	SecretKeyPath     string
	PlatformBaseURL   string
	MarketDataURL     string
	HTTPPort          string
	PlatformTimeout   time.Duration
	MarketDataTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment variables")
	}

	return Config{
		APIKey:            os.Getenv("API_KEY"),
		SecretKeyPath:     os.Getenv("SECRET_KEY_PATH"),
		PlatformBaseURL:   envOrDefault("BASE_PATH", platform.DefaultBaseURL),
		MarketDataURL:     envOrDefault("MARKET_DATA_URL", "https://min-api.cryptocompare.com"),
		HTTPPort:          envOrDefault("HTTP_PORT", "3000"),
		PlatformTimeout:   envOrDefaultDuration("PLATFORM_TIMEOUT", 30*time.Second),
		MarketDataTimeout: envOrDefaultDuration("MARKET_DATA_TIMEOUT", 10*time.Second),
	}
}

// Validate reports the first missing required setting. A gateway without an
// API key or signer key cannot serve any platform-backed route.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.SecretKeyPath == "" {
		return fmt.Errorf("SECRET_KEY_PATH is required")
	}
	return nil
}

// CheckCredentials verifies the signer key file exists and looks like a PEM
// private key. The key itself is only ever handed to the platform SDK, so a
// marker check is all the gateway needs at startup.
func (c Config) CheckCredentials() error {
	data, err := os.ReadFile(c.SecretKeyPath)
	if err != nil {
		return fmt.Errorf("reading secret key file: %w", err)
	}
	if !strings.Contains(string(data), "PRIVATE KEY") {
		return fmt.Errorf("secret key file %s does not contain a private key", c.SecretKeyPath)
	}
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
