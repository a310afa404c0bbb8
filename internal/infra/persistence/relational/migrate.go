package relational

import (
	"context"
	"database/sql"
	"embed"

	"cleanrecord/config"
	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationFS embed.FS

// Migrate applies every pending embedded migration for the configured driver.
func Migrate(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	src, err := iofs.New(migrationFS, "migrations/"+cfg.Database.Driver)
	if err != nil {
		return errors.Wrap(err, "failed to load embedded migrations")
	}

	var m *migrate.Migrate
	switch cfg.Database.Driver {
	case constants.DatabaseDriverSQLite:
		m, err = newSQLiteMigrate(src, cfg.Database.SQLite.Path)
	case constants.DatabaseDriverPostgres:
		m, err = newPostgresMigrate(ctx, src, db)
	default:
		err = errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// newSQLiteMigrate uses its own handle because the migrate driver closes it on Close.
func newSQLiteMigrate(src source.Driver, path string) (*migrate.Migrate, error) {
	sqlDB, err := sql.Open(sqliteDriverName, sqliteDSN(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite for migrations")
	}

	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to create SQLite migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, constants.DatabaseDriverSQLite, driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

// newPostgresMigrate borrows a single connection from the shared pool; Close releases only that connection.
func newPostgresMigrate(ctx context.Context, src source.Driver, db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire PostgreSQL connection")
	}

	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to create PostgreSQL migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, constants.DatabaseDriverPostgres, driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}
