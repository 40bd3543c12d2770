package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("STORYBOOK_APP_ENV", "development")
	t.Setenv("STORYBOOK_DB_DSN", "postgres://localhost/storybook_test")
	t.Setenv("STORYBOOK_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatalf("env classification wrong for %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("default port: got %q", cfg.App.Port)
	}
	if cfg.Preview.TTL != 24*time.Hour {
		t.Fatalf("default preview ttl: got %v", cfg.Preview.TTL)
	}
	if cfg.Preview.RenderTimeout != 3*time.Second {
		t.Fatalf("default render timeout: got %v", cfg.Preview.RenderTimeout)
	}
	if cfg.Pricing.Currency != "USD" {
		t.Fatalf("default currency: got %q", cfg.Pricing.Currency)
	}
	if len(cfg.Moderation.Denylist) == 0 {
		t.Fatal("expected a default denylist")
	}
}

func TestLoadRequiresAppEnv(t *testing.T) {
	t.Setenv("STORYBOOK_APP_ENV", "placeholder")
	os.Unsetenv("STORYBOOK_APP_ENV")
	t.Setenv("STORYBOOK_DB_DSN", "postgres://localhost/storybook_test")
	t.Setenv("STORYBOOK_REDIS_URL", "redis://localhost:6379/0")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing app env to fail")
	}
}

func TestRatesParsesDefaults(t *testing.T) {
	t.Parallel()

	cfg := PricingConfig{
		TaxRate:               "0.08",
		FreeShippingThreshold: "65",
		StandardThreshold:     "35",
		StandardRate:          "4.99",
		BaseRate:              "6.99",
		BulkDiscountMinItems:  3,
		BulkDiscountRate:      "0.1",
		Currency:              "USD",
	}

	rates, err := cfg.Rates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rates.TaxRate.Equal(decimal.RequireFromString("0.08")) {
		t.Fatalf("tax rate: got %s", rates.TaxRate)
	}
	if !rates.FreeShippingThreshold.Equal(decimal.NewFromInt(65)) {
		t.Fatalf("free shipping threshold: got %s", rates.FreeShippingThreshold)
	}
	if rates.BulkDiscountMinItems != 3 || rates.Currency != "USD" {
		t.Fatalf("passthrough fields: %+v", rates)
	}
}

func TestRatesRejectsGarbage(t *testing.T) {
	t.Parallel()

	cfg := PricingConfig{
		TaxRate:               "eight percent",
		FreeShippingThreshold: "65",
		StandardThreshold:     "35",
		StandardRate:          "4.99",
		BaseRate:              "6.99",
		BulkDiscountRate:      "0.1",
	}

	if _, err := cfg.Rates(); err == nil {
		t.Fatal("expected parse failure for non-numeric tax rate")
	}
}
