package relational

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cleanrecord/config"
	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger sends GORM output to slog. Records go through the request-scoped
// logger when there is one, so queries carry the request_id of the call that ran them.
// Bound values are never logged: statements keep their placeholders.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	l := &queryLogger{base: base, level: logger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil && cfg.Database.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops the bound values; addresses, phones and emails stay out of the logs.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabledAt {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Query failed", slog.Any("error", err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow query", slog.Duration("threshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Query"
	default:
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	scoped := deliverycontext.GetLoggerOrDefault(ctx, l.base)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" && scoped == l.base {
		return scoped.With(slog.String("request_id", requestID))
	}

	return scoped
}
