package middleware

import (
	"log/slog"

	deliverycontext "cleanrecord/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request a correlation id and a logger that carries it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the caller, otherwise mints one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := deliverycontext.NormalizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("route", c.Path()),
		)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
