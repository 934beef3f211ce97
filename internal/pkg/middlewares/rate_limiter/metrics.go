package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Requests rejected with 429 by the service-wide token bucket",
		},
		[]string{"method", "route"},
	)

	// RateLimitSettings текущие qps и burst лимитера, label setting.
	RateLimitSettings = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_rate_limit_settings",
			Help: "Configured token bucket refill rate (qps) and capacity (burst)",
		},
		[]string{"setting"},
	)
)
