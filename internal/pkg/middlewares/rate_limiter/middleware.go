package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
	"parcel-service/pkg/logger"
)

// NewLimiter token bucket на весь сервис: qps пополнение, burst емкость.
func NewLimiter(qps, burst int) *rate.Limiter {
	if burst <= 0 {
		burst = qps
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(int(limiter.Limit()))
	RateLimitSettings.WithLabelValues("qps").Set(float64(limiter.Limit()))
	RateLimitSettings.WithLabelValues("burst").Set(float64(limiter.Burst()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitedRequestsTotal.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("X-RateLimit-Burst", strconv.Itoa(limiter.Burst()))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(`{"message":"Rate limit exceeded. Try again later."}`)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
