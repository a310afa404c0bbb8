package middleware

import (
	"net/http"
	"time"

	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	recorder service.MetricsRecorder
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(recorder service.MetricsRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle measures the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The central error handler writes the response after this middleware returns
			status = http.StatusInternalServerError
			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			}
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
