package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware после отмены ongoingCtx при выставленном флаге новые запросы получают 503.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"message":"Service is shutting down"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
