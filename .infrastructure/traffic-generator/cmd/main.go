package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Количество запросов к parcel-service",
	}, []string{"route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})
)

type route struct {
	name   string
	method string
	path   func() string
}

// Только публичные маршруты, токен генератору не нужен.
var routes = []route{
	{name: "ping", method: http.MethodGet, path: func() string { return "/ping" }},
	{name: "healthcheck", method: http.MethodHead, path: func() string { return "/healthcheck" }},
	{name: "riders", method: http.MethodGet, path: func() string { return "/riders?region=" + randomRegion() }},
	{name: "parcels_assignable", method: http.MethodGet, path: func() string { return "/parcels/available/riders" }},
	{name: "parcel_track", method: http.MethodGet, path: func() string { return "/parcels/track/" + randomTrackingID() }},
}

var regions = []string{"Dhaka", "Chattogram", "Khulna", "Rajshahi", "Sylhet"}

func randomRegion() string {
	return regions[rand.IntN(len(regions))]
}

func randomTrackingID() string {
	return "TRK-" + strings.ToUpper(strconv.FormatUint(uint64(rand.Uint32()), 16))
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fire(ctx context.Context, client *http.Client, baseURL string) {
	r := routes[rand.IntN(len(routes))]

	req, err := http.NewRequestWithContext(ctx, r.method, baseURL+r.path(), nil)
	if err != nil {
		return
	}

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(r.name, "error").Inc()
		return
	}
	_ = resp.Body.Close()

	requestsTotal.WithLabelValues(r.name, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	baseURL := env("TARGET_URL", "http://localhost:8080")
	interval, err := time.ParseDuration(env("TRAFFIC_INTERVAL", "200ms"))
	if err != nil {
		interval = 200 * time.Millisecond
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	metricsServer := &http.Server{
		Addr:              env("METRICS_ADDR", ":2112"),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			stop()
		}
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = metricsServer.Shutdown(shutdownCtx)
			cancel()
			return
		case <-ticker.C:
			go fire(ctx, client, baseURL)
		}
	}
}
