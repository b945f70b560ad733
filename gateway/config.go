package gateway

import (
	"os"
	"strconv"
	"time"
)

// Config is the configuration for the gateway application.
type Config struct {
	HTTPAddr string
	// BankBaseURL is the base URL of the acquiring bank.
	BankBaseURL string
	// BankTimeout bounds a single bank call; expiry surfaces as a bank
	// unavailable outcome.
	BankTimeout time.Duration
	// RetryAfterSeconds is the delay suggested to clients that hit a
	// concurrent duplicate conflict.
	RetryAfterSeconds int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:          "localhost:8080",
		BankBaseURL:       "http://localhost:8090",
		BankTimeout:       5 * time.Second,
		RetryAfterSeconds: 30,
	}
}

// ConfigFromEnv builds a Config from the environment, falling back to
// defaults for anything unset.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.BankBaseURL = getenv("BANK_BASE_URL", cfg.BankBaseURL)
	if ms, err := strconv.Atoi(getenv("BANK_TIMEOUT_MS", "")); err == nil && ms > 0 {
		cfg.BankTimeout = time.Duration(ms) * time.Millisecond
	}
	if s, err := strconv.Atoi(getenv("RETRY_AFTER_SECONDS", "")); err == nil && s > 0 {
		cfg.RetryAfterSeconds = s
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
