// Package context carries request-scoped values (correlation id, caller, logger)
// from the HTTP edge down to the usecases.
package context

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	userIDKey
)

const (
	// HeaderXRequestID is echoed back on every response and accepted from clients and push senders.
	HeaderXRequestID = echo.HeaderXRequestID

	echoRequestIDKey   = "request_id"
	maxRequestIDLength = 128
)

// NormalizeRequestID keeps a client supplied id when it is a usable correlation key
// and mints a new one otherwise.
func NormalizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}
	if strings.IndexFunc(id, func(r rune) bool { return unicode.IsControl(r) || unicode.IsSpace(r) }) >= 0 {
		return uuid.NewString()
	}

	return id
}

// GetRequestID returns the id assigned to the current request. Handlers reached
// without the request id middleware get a fresh id that sticks for the rest of the request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	c.Set(echoRequestIDKey, id)

	return id
}

// SetRequestID records the id on the echo context so envelopes can echo it.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetUserIDFromContext returns the owner key of the authenticated caller, or "".
func GetUserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)

	return id
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when the
// request did not pass through the request id middleware (tests, background jobs).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
