package middleware

import (
	"context"
	"net/http"
	"time"
)

// TimeoutMiddleware bounds every request context with the store
// timeout, so a hung database call cannot pin a request forever.
// Storage surfaces the exceeded deadline as storage.ErrTimeout.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
