package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/meridianpress/storybook-backend/pkg/logger"
)

const sessionKeyHeader = "X-Session-Key"

type sessionCtxKey struct{}

// Session resolves the client session key from the request header, minting a
// fresh one when absent. The key scopes the cart; it is echoed back so the
// client can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionKey := r.Header.Get(sessionKeyHeader)
			if sessionKey == "" {
				sessionKey = uuid.NewString()
			}

			w.Header().Set(sessionKeyHeader, sessionKey)

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionKey)
			if logg != nil {
				ctx = logg.WithSessionKey(ctx, sessionKey)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionKeyFromContext returns the resolved session key, if any.
func SessionKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return key
	}
	return ""
}
