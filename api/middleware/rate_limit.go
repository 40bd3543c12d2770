package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/meridianpress/storybook-backend/api/responses"
	pkgerrors "github.com/meridianpress/storybook-backend/pkg/errors"
	"github.com/meridianpress/storybook-backend/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit applies a per-IP fixed window limit to a traffic surface. Used on
// the preview endpoint, where each request fans out renderer calls.
func RateLimit(name string, limit int64, window time.Duration, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 || window <= 0 || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			scope := fmt.Sprintf("%s:%s", name, clientIP(r))
			allowed, count, err := store.FixedWindowAllow(ctx, scope, limit, window)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
				return
			}
			if !allowed {
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"surface": name,
						"count":   count,
						"limit":   limit,
					})
					logg.Warn(ctx, "rate limit exceeded")
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
