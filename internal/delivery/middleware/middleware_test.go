package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cleanrecord/config"
	deliverycontext "cleanrecord/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/api/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("reuses caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-42", rec.Body.String())
	})

	t.Run("mints id when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		require.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet outside debug for successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("logs failures with the real status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, buf.String(), `"status":503`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("debug logs everything except health checks", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/dashboard?token=secret", nil))
		assert.Contains(t, buf.String(), `"path":"/api/dashboard"`)
		assert.NotContains(t, buf.String(), "secret")
	})
}
