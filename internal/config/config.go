// Package config defines the application configuration and its loading.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the identity provider settings used to verify
// bearer tokens.
type AuthConfig struct {
	// Domain is the identity provider tenant domain, e.g.
	// "example.eu.auth0.com". Published signing keys are fetched
	// from https://<domain>/.well-known/jwks.json and the expected
	// token issuer is https://<domain>/.
	Domain string `mapstructure:"domain" validate:"required"`

	// Algorithms lists the accepted token signing algorithms.
	Algorithms []string `mapstructure:"algorithms" validate:"required,min=1"`

	// Audience is the API identifier expected in the token's aud claim.
	Audience string `mapstructure:"audience" validate:"required"`
}
