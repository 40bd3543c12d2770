package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/meridianpress/storybook-backend/api/responses"
	"github.com/meridianpress/storybook-backend/pkg/config"
	"github.com/meridianpress/storybook-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady verifies the datastores are reachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		for name, p := range map[string]pinger{"db": dbP, "redis": redisP} {
			if p == nil {
				checks[name] = "skipped"
				continue
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "unreachable"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness check failed: "+name, err)
				}
				continue
			}
			checks[name] = "ok"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"env":    cfg.App.Env,
			"checks": checks,
		})
	}
}
