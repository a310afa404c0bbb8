// Package api is the customer-facing REST server.
package api

import (
	"context"
	"log/slog"

	"cleanrecord/config"
	"cleanrecord/internal/delivery"
	apimiddleware "cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/router"
	"cleanrecord/internal/delivery/api/validator"
	"cleanrecord/internal/delivery/middleware"
	"cleanrecord/internal/domain/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      service.MetricsRecorder
	RouterParams router.RouterParams
}

// NewServer builds the API server and ties the booking rate limiter's
// cleanup loop to the fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	h2 := &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout}
	srv := delivery.NewEchoServer("api", params.Cfg.HTTP.Port, NewEcho(params), h2, params.Logger)

	done := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go params.RouterParams.BookingLimiter.Run(done)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)

			return srv.Shutdown(ctx)
		},
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with every route registered.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	middleware.UseBase(e, params.Logger, params.Cfg)
	e.Use(apimiddleware.NewMetricsMiddleware(params.Metrics).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}
