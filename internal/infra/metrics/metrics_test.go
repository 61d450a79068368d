package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weev/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_LedgerCounters(t *testing.T) {
	m := New(nil)

	m.ObserveActivation("success")
	m.ObserveActivation("success")
	m.ObserveActivation("ALREADY_ACTIVATED")
	m.ObservePoints("activation", 10)
	m.ObservePoints("reward", 25)
	m.ObservePoints("reward", 0)
	m.ObserveGrantsIssued(3)
	m.ObserveClaim("success")
	m.ObserveExpired(2)
	m.ObserveExpired(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.activations.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activations.WithLabelValues("ALREADY_ACTIVATED")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.pointsAwarded.WithLabelValues("activation")))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.pointsAwarded.WithLabelValues("reward")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.grantsIssued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.claims.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.grantsExpired))
}

func TestMetrics_MiddlewareLabelsByRoute(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/internal/metrics"}})
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/claim/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET(m.Path(), echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/claim/abc", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/claim/:id", "204")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "weev_http_requests_total"))
}
