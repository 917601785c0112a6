// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-storybook binaries. It is populated by merging environment variables,
// command-line flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout, CORS and rate limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the terminal client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client local files.
	Client Client

	// Backfill holds settings of the orphan book backfill tool.
	Backfill Backfill

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request, store calls
	// included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the browser origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// AuthRateLimitRPS is the sustained per-IP rate of register/login calls.
	// Env: SERVER_AUTH_RATE_LIMIT_RPS
	AuthRateLimitRPS float64 `env:"AUTH_RATE_LIMIT_RPS"`

	// AuthRateLimitBurst is the per-IP burst of register/login calls.
	// Env: SERVER_AUTH_RATE_LIMIT_BURST
	AuthRateLimitBurst int `env:"AUTH_RATE_LIMIT_BURST"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver as well: postgres:// and postgresql:// URLs
	// use PostgreSQL, anything else is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's connection settings to the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client file locations.
type Client struct {
	// SessionPath is the JSON file keeping token, user and theme.
	// Env: SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`

	// LogPath is the client log file.
	// Env: LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Backfill holds settings of cmd/backfill.
type Backfill struct {
	// Owner is the username receiving orphan books. Empty means the oldest
	// registered user.
	// Env: BACKFILL_OWNER
	Owner string `env:"BACKFILL_OWNER"`

	// DryRun only counts orphan books.
	DryRun bool `env:"BACKFILL_DRY_RUN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are consulted in priority order: environment variables, command-line
// flags, the JSON file, then defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
