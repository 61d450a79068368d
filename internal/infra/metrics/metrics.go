// Package metrics exposes Prometheus collectors for HTTP traffic and ledger activity.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"weev/config"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/service"
	"weev/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weev"

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry
	path     string

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	activations   *prometheus.CounterVec
	pointsAwarded *prometheus.CounterVec
	grantsIssued  prometheus.Counter
	claims        *prometheus.CounterVec
	grantsExpired prometheus.Counter
}

// New builds and registers all collectors.
func New(cfg *config.Config) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		path:     "/metrics",
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "activations_total",
			Help:      "Product activation attempts by outcome.",
		}, []string{"outcome"}),
		pointsAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "points_awarded_total",
			Help:      "Loyalty points credited to users by source.",
		}, []string{"source"}),
		grantsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reward_grants_issued_total",
			Help:      "Reward grants created by activations.",
		}),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reward_claims_total",
			Help:      "Reward claim attempts by outcome.",
		}, []string{"outcome"}),
		grantsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reward_grants_expired_total",
			Help:      "Reward grants moved to expired.",
		}),
	}

	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Path != "" {
		m.path = cfg.Metrics.Path
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.activations,
		m.pointsAwarded,
		m.grantsIssued,
		m.claims,
		m.grantsExpired,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// NewLedgerMetrics exposes m as the domain recorder.
func NewLedgerMetrics(m *Metrics) service.LedgerMetrics {
	return m
}

// Path is where the exposition endpoint is mounted.
func (m *Metrics) Path() string {
	return m.path
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records HTTP metrics labelled by the matched route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == m.path {
				return next(c)
			}

			start := time.Now()
			m.httpInFlight.Inc()
			defer m.httpInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				// The error handler has not written the response yet.
				status = statusFromError(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := strings.ToUpper(c.Request().Method)

			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func (m *Metrics) ObserveActivation(outcome string) {
	m.activations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePoints(source string, points int) {
	if points <= 0 {
		return
	}
	m.pointsAwarded.WithLabelValues(source).Add(float64(points))
}

func (m *Metrics) ObserveGrantsIssued(n int) {
	if n <= 0 {
		return
	}
	m.grantsIssued.Add(float64(n))
}

func (m *Metrics) ObserveClaim(outcome string) {
	m.claims.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveExpired(n int) {
	if n <= 0 {
		return
	}
	m.grantsExpired.Add(float64(n))
}
