// Package relational contains the concrete implementation of the persistence layer using GORM.
// The same repositories run on a local SQLite file or on PostgreSQL, selected by database.driver.
package relational

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/domain/lifecycle"
	"cleanrecord/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	// sqliteDriverName is the database/sql name registered by modernc.org/sqlite.
	sqliteDriverName = "sqlite"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store named by database.driver and ties it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, params.Config, db); err != nil {
					return err
				}
				params.Logger.Info("Database migrations applied", slog.String("driver", params.Config.Database.Driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the configured store without lifecycle hooks.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case constants.DatabaseDriverSQLite:
		db, err = openSQLite(cfg.Database.SQLite.Path)
	case constants.DatabaseDriverPostgres:
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			err = errors.Wrap(err, "failed to create PostgreSQL client")
		}
	default:
		err = errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	return db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(logger, cfg),
	}), nil
}

func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: sqliteDriverName,
		DSN:        sqliteDSN(path),
	}, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open SQLite database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// A single writer avoids SQLITE_BUSY between pooled connections.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_time_format=sqlite"
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int64("waitCountTotal", cur.WaitCount),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "DB pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "DB pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
