package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meridianpress/storybook-backend/api/controllers"
	"github.com/meridianpress/storybook-backend/api/middleware"
	cartsvc "github.com/meridianpress/storybook-backend/internal/cart"
	previewsvc "github.com/meridianpress/storybook-backend/internal/preview"
	"github.com/meridianpress/storybook-backend/pkg/config"
	"github.com/meridianpress/storybook-backend/pkg/db"
	"github.com/meridianpress/storybook-backend/pkg/logger"
	"github.com/meridianpress/storybook-backend/pkg/redis"
)

// NewRouter wires the HTTP surface: health, metrics, preview and cart routes.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	previewService previewsvc.Service,
	cartService cartsvc.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(
			"preview",
			cfg.Preview.RateLimit,
			cfg.Preview.RateWindow,
			redisClient,
			logg,
		)).Post("/preview", controllers.GeneratePreview(previewService, logg))

		r.Post("/print-assets", controllers.CreatePrintAsset(previewService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(logg))
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{itemID}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{itemID}", controllers.CartRemoveItem(cartService, logg))
			r.Post("/validate", controllers.CartValidate(cartService, logg))
		})
	})

	return r
}
