package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cleanrecord/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLite.Path)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, constants.AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, defaultCleanerName, cfg.Booking.CleanerName)
	assert.Equal(t, defaultStreamTimeout, cfg.Stream.Timeout)
	assert.Equal(t, defaultShareSize, cfg.Share.Size)
	assert.Equal(t, "M", cfg.Share.ErrorCorrectionLevel)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_PostgresRequiresSection(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{Driver: constants.DatabaseDriverPostgres}}

	err := cfg.applyDefaults()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres section is required")
}

func TestApplyDefaults_UnknownDriver(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{Driver: "mysql"}}

	err := cfg.applyDefaults()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database driver")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
}

func TestBookingLocation(t *testing.T) {
	t.Run("empty falls back to local", func(t *testing.T) {
		cfg := &Config{}
		loc, err := cfg.BookingLocation()
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	})

	t.Run("named zone", func(t *testing.T) {
		cfg := &Config{Booking: &BookingConfig{Location: "Europe/Warsaw"}}
		loc, err := cfg.BookingLocation()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Warsaw", loc.String())
	})

	t.Run("invalid zone", func(t *testing.T) {
		cfg := &Config{Booking: &BookingConfig{Location: "Mars/Olympus"}}
		_, err := cfg.BookingLocation()
		require.Error(t, err)
	})
}

func TestLoadWithEnv_ExplicitFileAndEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "http:\n  port: 8080\nbooking:\n  cleanerName: Ania\nstream:\n  timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(configFileEnv, path)
	t.Setenv("BOOKING_CLEANER_NAME", "Basia")

	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "Basia", cfg.Booking.CleanerName)
	assert.Equal(t, 2*time.Second, cfg.Stream.Timeout)
}

func TestLoadWithEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv(configFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadWithEnv[Config]("config")

	assert.Error(t, err)
}
