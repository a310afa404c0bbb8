// Package constants holds string constants shared between config and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

// Identity providers
const (
	AuthProviderGoogle = "google"
	AuthProviderJWT    = "jwt"
)
