package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSQLitePath         = "cleanrecord.db"
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultCleanerName        = "Zespół CleanRecord"
	defaultStreamTimeout      = 5 * time.Second
	defaultShareSize          = 256
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Database selects the store. Driver is the single switch between the local file store and Postgres.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Booking *BookingConfig `json:"booking" yaml:"booking"`

	// Stream configures the video platform client used for live status checks
	Stream *StreamConfig `json:"stream" yaml:"stream"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Share configures QR codes linking to a session's watch page
	Share *ShareConfig `json:"share" yaml:"share"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines which store backs the repositories
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	SQLite SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// AutoMigrate applies embedded migrations on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks queries logged as slow; negative disables the check
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// SQLiteConfig defines the local file store
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

// AuthConfig defines how caller identity is derived from bearer tokens
type AuthConfig struct {
	// Provider is "google" (Google ID tokens) or "jwt" (HS256 tokens signed with Secret)
	Provider string `json:"provider" yaml:"provider"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Secret   string `json:"secret" yaml:"secret"`
	Issuer   string `json:"issuer" yaml:"issuer"`
}

// BookingConfig defines booking defaults
type BookingConfig struct {
	CleanerName string `json:"cleanerName" yaml:"cleanerName"`

	// Location is the IANA zone used to interpret the naive date+time of a booking.
	// Empty means the server's local zone.
	Location string `json:"location" yaml:"location"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig defines a per-caller token bucket
type RateLimitConfig struct {
	RequestsPerMinute float64 `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// StreamConfig defines the video platform API
type StreamConfig struct {
	APIBaseURL   string        `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	AccountID    string        `json:"accountId" yaml:"accountId"`
	APIToken     string        `json:"apiToken" yaml:"apiToken"`
	ViewsBaseURL string        `json:"viewsBaseUrl" yaml:"viewsBaseUrl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	Breaker      BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines circuit breaker thresholds
type BreakerConfig struct {
	MaxFailures uint32        `json:"maxFailures" yaml:"maxFailures"`
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ShareConfig defines QR share link generation
type ShareConfig struct {
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the stream lifecycle worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// PushAudience is the expected audience of push tokens; empty means the request URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount restricts push tokens to one service account email
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// configFileEnv names a YAML file that replaces the search path lookup.
const configFileEnv = "CLEANRECORD_CONFIG"

// LoadWithEnv reads <name>.yaml from the first directory in dirs (relative to the
// working directory) that has it, then overlays environment variables. An env var
// maps onto the YAML tree by splitting on "_": STREAM_BREAKER_MAXFAILURES and
// STREAM_BREAKER_MAX_FAILURES both set stream.breaker.maxFailures.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(name string, dirs []string) (string, error) {
	if explicit := os.Getenv(configFileEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", configFileEnv, explicit)
		}

		return explicit, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	for _, dir := range append([]string{defaultPath}, dirs...) {
		candidate := filepath.Join(pwd, dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found in %v", name, dirs)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = constants.DatabaseDriverSQLite
	}
	if cfg.Database.SlowQueryThreshold == 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	switch cfg.Database.Driver {
	case constants.DatabaseDriverSQLite:
		if cfg.Database.SQLite.Path == "" {
			cfg.Database.SQLite.Path = defaultSQLitePath
		}
	case constants.DatabaseDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required when database.driver is postgres")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	default:
		return errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = constants.AuthProviderJWT
	}

	if cfg.Booking == nil {
		cfg.Booking = &BookingConfig{}
	}
	if cfg.Booking.CleanerName == "" {
		cfg.Booking.CleanerName = defaultCleanerName
	}

	if cfg.Stream == nil {
		cfg.Stream = &StreamConfig{}
	}
	if cfg.Stream.Timeout <= 0 {
		cfg.Stream.Timeout = defaultStreamTimeout
	}

	if cfg.Share == nil {
		cfg.Share = &ShareConfig{}
	}
	if cfg.Share.Size <= 0 {
		cfg.Share.Size = defaultShareSize
	}
	if cfg.Share.ErrorCorrectionLevel == "" {
		cfg.Share.ErrorCorrectionLevel = "M"
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

// BookingLocation resolves the zone used for naive booking timestamps.
func (cfg *Config) BookingLocation() (*time.Location, error) {
	if cfg.Booking == nil || cfg.Booking.Location == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(cfg.Booking.Location)
	if err != nil {
		return nil, errors.Wrapf(err, "load booking location %q", cfg.Booking.Location)
	}

	return loc, nil
}

// canonicalizeEnvKey turns an env var name into a koanf path, reusing the key
// spelling found in the YAML tree. Several "_" segments may join into one
// camelCase key; unknown segments are kept lower-cased.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var segments []string
	for _, seg := range strings.Split(strings.ToLower(rawKey), "_") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	path := make([]string, 0, len(segments))
	for i := 0; i < len(segments); {
		key, child, used := matchKey(tree, segments[i:])
		if used == 0 {
			path = append(path, segments[i])
			tree = nil
			i++

			continue
		}
		path = append(path, key)
		tree = child
		i += used
	}

	return strings.Join(path, ".")
}

// matchKey finds the key in tree spelled by the longest run of leading segments.
func matchKey(tree map[string]any, segments []string) (string, map[string]any, int) {
	if len(tree) == 0 {
		return "", nil, 0
	}

	index := make(map[string]string, len(tree))
	for key := range tree {
		index[foldKey(key)] = key
	}

	for n := len(segments); n > 0; n-- {
		if key, ok := index[strings.Join(segments[:n], "")]; ok {
			child, _ := tree[key].(map[string]any)

			return key, child, n
		}
	}

	return "", nil, 0
}

// foldKey lower-cases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads read replicas from POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD},
// stopping at the first index without both host and port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	return replicasFrom(os.Getenv)
}

func replicasFrom(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + name)
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
