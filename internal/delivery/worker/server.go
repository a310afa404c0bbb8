// Package worker is the stream lifecycle worker: it receives Pub/Sub push
// deliveries and applies them to sessions.
package worker

import (
	"log/slog"
	"net/http"

	"cleanrecord/config"
	"cleanrecord/internal/delivery"
	apimiddleware "cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/middleware"
	"cleanrecord/internal/delivery/worker/handler"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const defaultWorkerPort = 8081

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     service.MetricsRecorder
	Gatherer    prometheus.Gatherer
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	port := defaultWorkerPort
	if params.Cfg.Worker != nil && params.Cfg.Worker.Port != 0 {
		port = params.Cfg.Worker.Port
	}

	srv := delivery.NewEchoServer("worker", port, NewEcho(params), nil, params.Logger)
	params.Lc.Append(fx.Hook{OnStop: srv.Shutdown})

	return srv, nil
}

// NewEcho registers /push, /health and, when enabled, the metrics endpoint.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	middleware.UseBase(e, params.Logger, params.Cfg)
	e.Use(apimiddleware.NewMetricsMiddleware(params.Metrics).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(metrics.Handler(params.Gatherer)))
	}
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}
