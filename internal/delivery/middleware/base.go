// Package middleware holds the echo middleware shared by the API and the stream worker.
package middleware

import (
	"log/slog"

	"cleanrecord/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// UseBase installs panic recovery, request ids and access logging. Recover is
// outermost so a panic anywhere below it becomes a 500.
func UseBase(e *echo.Echo, logger *slog.Logger, cfg *config.Config) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
}
