package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "STORYBOOK"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "STORYBOOK_APP_ENV"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Preview    PreviewConfig
	Pricing    PricingConfig
	Moderation ModerationConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STORYBOOK_APP_ENV" required:"true"`
	Port         string `envconfig:"STORYBOOK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STORYBOOK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STORYBOOK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STORYBOOK_DB_DSN" required:"true"`
	Driver string `envconfig:"STORYBOOK_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"STORYBOOK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STORYBOOK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STORYBOOK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STORYBOOK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STORYBOOK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STORYBOOK_REDIS_ADDR"`
	Password     string        `envconfig:"STORYBOOK_REDIS_PASSWORD"`
	DB           int           `envconfig:"STORYBOOK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STORYBOOK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STORYBOOK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STORYBOOK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STORYBOOK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STORYBOOK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PreviewConfig drives the personalization preview pipeline.
type PreviewConfig struct {
	TTL             time.Duration `envconfig:"STORYBOOK_PREVIEW_TTL" default:"24h"`
	RenderTimeout   time.Duration `envconfig:"STORYBOOK_PREVIEW_RENDER_TIMEOUT" default:"3s"`
	RendererBaseURL string        `envconfig:"STORYBOOK_RENDERER_BASE_URL" default:"https://via.placeholder.com"`
	AssetBaseURL    string        `envconfig:"STORYBOOK_ASSET_BASE_URL" default:"https://storage.example.com/print-assets"`
	RateLimit       int64         `envconfig:"STORYBOOK_PREVIEW_RATE_LIMIT" default:"30"`
	RateWindow      time.Duration `envconfig:"STORYBOOK_PREVIEW_RATE_WINDOW" default:"1m"`
}

// PricingConfig carries the cart pricing thresholds. Values are decimal strings
// so money never round-trips through floats.
type PricingConfig struct {
	TaxRate               string `envconfig:"STORYBOOK_PRICING_TAX_RATE" default:"0.08"`
	FreeShippingThreshold string `envconfig:"STORYBOOK_PRICING_FREE_SHIPPING_THRESHOLD" default:"65"`
	StandardThreshold     string `envconfig:"STORYBOOK_PRICING_STANDARD_THRESHOLD" default:"35"`
	StandardRate          string `envconfig:"STORYBOOK_PRICING_STANDARD_RATE" default:"4.99"`
	BaseRate              string `envconfig:"STORYBOOK_PRICING_BASE_RATE" default:"6.99"`
	BulkDiscountMinItems  int    `envconfig:"STORYBOOK_PRICING_BULK_MIN_ITEMS" default:"3"`
	BulkDiscountRate      string `envconfig:"STORYBOOK_PRICING_BULK_RATE" default:"0.1"`
	Currency              string `envconfig:"STORYBOOK_PRICING_CURRENCY" default:"USD"`
}

// Rates parses the configured pricing strings into decimals.
func (p PricingConfig) Rates() (PricingRates, error) {
	out := PricingRates{
		BulkDiscountMinItems: p.BulkDiscountMinItems,
		Currency:             p.Currency,
	}
	fields := []struct {
		name  string
		value string
		dest  *decimal.Decimal
	}{
		{"tax rate", p.TaxRate, &out.TaxRate},
		{"free shipping threshold", p.FreeShippingThreshold, &out.FreeShippingThreshold},
		{"standard threshold", p.StandardThreshold, &out.StandardThreshold},
		{"standard rate", p.StandardRate, &out.StandardRate},
		{"base rate", p.BaseRate, &out.BaseRate},
		{"bulk discount rate", p.BulkDiscountRate, &out.BulkDiscountRate},
	}
	for _, f := range fields {
		parsed, err := decimal.NewFromString(strings.TrimSpace(f.value))
		if err != nil {
			return PricingRates{}, fmt.Errorf("parsing %s %q: %w", f.name, f.value, err)
		}
		*f.dest = parsed
	}
	return out, nil
}

// PricingRates is the parsed form handed to the pricing engine.
type PricingRates struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	StandardThreshold     decimal.Decimal
	StandardRate          decimal.Decimal
	BaseRate              decimal.Decimal
	BulkDiscountMinItems  int
	BulkDiscountRate      decimal.Decimal
	Currency              string
}

type ModerationConfig struct {
	Denylist []string `envconfig:"STORYBOOK_MODERATION_DENYLIST" default:"badword,inappropriate"`
}
