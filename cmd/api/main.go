package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/meridianpress/storybook-backend/api/routes"
	cartsvc "github.com/meridianpress/storybook-backend/internal/cart"
	"github.com/meridianpress/storybook-backend/internal/personalization"
	previewsvc "github.com/meridianpress/storybook-backend/internal/preview"
	"github.com/meridianpress/storybook-backend/pkg/config"
	"github.com/meridianpress/storybook-backend/pkg/db"
	"github.com/meridianpress/storybook-backend/pkg/logger"
	"github.com/meridianpress/storybook-backend/pkg/metrics"
	"github.com/meridianpress/storybook-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	rates, err := cfg.Pricing.Rates()
	if err != nil {
		logg.Error(context.Background(), "invalid pricing configuration", err)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	defer func() {
		closeErr := multierr.Combine(dbClient.Close(), redisClient.Close())
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	previewMetrics := metrics.NewPreviewMetrics(registry)
	cartMetrics := metrics.NewCartMetrics(registry)

	screener := personalization.NewDenylistScreener(cfg.Moderation.Denylist)

	previewService, err := previewsvc.NewService(previewsvc.ServiceParams{
		Renderer: previewsvc.NewPlaceholderRenderer(cfg.Preview.RendererBaseURL),
		Screener: screener,
		Cache:    redisClient,
		Config:   cfg.Preview,
		Logger:   logg,
		Metrics:  previewMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create preview service", err)
		os.Exit(1)
	}

	cartStore, err := cartsvc.NewGormStore(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Store:    cartStore,
		Pricer:   cartsvc.NewPricer(rates),
		Screener: screener,
		Currency: rates.Currency,
		Logger:   logg,
		Metrics:  cartMetrics,
		Listeners: []cartsvc.Listener{
			func(event cartsvc.Event) {
				ctx := logg.WithFields(context.Background(), map[string]any{
					"event":     string(event.Kind),
					"cart_id":   event.CartID,
					"open_cart": event.OpenCart,
				})
				logg.Debug(ctx, "cart.event")
			},
		},
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, previewService, cartService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
