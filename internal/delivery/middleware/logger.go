package middleware

import (
	"log/slog"
	"strings"
	"time"

	"cleanrecord/config"
	deliverycontext "cleanrecord/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access line per request. Outside debug mode only
// failed requests are logged; health and scrape paths are never logged.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// let echo write the response so the logged status is the real one
			c.Error(err)
		}

		status := c.Response().Status
		if m.debug || status >= 400 {
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()
	ctx := req.Context()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if ua := req.UserAgent(); ua != "" {
		attrs = append(attrs, slog.String("user_agent", ua))
	}
	if userID := deliverycontext.GetUserIDFromContext(ctx); userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	if q := req.URL.RawQuery; q != "" && !strings.Contains(strings.ToLower(q), "token") {
		attrs = append(attrs, slog.String("query", q))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}
