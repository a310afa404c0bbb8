package middleware

import (
	"log/slog"
	"net/http"

	"cleanrecord/internal/delivery/api/response"
	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeHTTPError     = "HTTP_ERROR"
	codeInternalError = "INTERNAL_ERROR"
)

// ErrorMiddleware is the echo HTTPErrorHandler: every error that escapes a
// handler ends up in the standard error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := m.classify(err)
	if status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.String("code", code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
	}

	_ = response.Error(c, status, code, message, nil)
}

// classify maps err to status, code and a client-safe message.
func (m *ErrorMiddleware) classify(err error) (int, string, string) {
	if appErr, ok := response.AsAppError(err); ok {
		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok || message == "" {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, codeHTTPError, message
	}

	return http.StatusInternalServerError, codeInternalError, "Internal server error, please try again later"
}
