package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cleanrecord/config"
	"cleanrecord/internal/delivery/worker/handler"
	"cleanrecord/internal/infra/metrics"
	mockUsecase "cleanrecord/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	registry := metrics.NewRegistry()

	return NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Metrics:  metrics.NewCollector(registry),
		Gatherer: registry,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:      cfg,
			Logger:      logger,
			LifecycleUC: mockUsecase.NewMockSessionLifecycleUsecase(t),
		}),
	})
}

func TestWorkerServer_Routes(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/push",status_code="400"`)
}
