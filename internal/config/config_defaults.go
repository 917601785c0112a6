package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied after every other source has been merged.
const (
	DefaultTokenIssuer        = "go-storybook"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultPasswordHashCost   = bcrypt.DefaultCost
	DefaultLogLevel           = "info"
	DefaultVersion            = "dev"
	DefaultHTTPAddress        = "localhost:5000"
	DefaultRequestTimeout     = 10 * time.Second
	DefaultAllowedOrigin      = "http://localhost:5173"
	DefaultAuthRateLimitRPS   = 1.0
	DefaultAuthRateLimitBurst = 5
	DefaultAdapterAddress     = "http://localhost:5000"
	DefaultSessionPath        = ".storybook-session.json"
	DefaultLogPath            = "storybook-client.log"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
			Version:          DefaultVersion,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			AllowedOrigins:     []string{DefaultAllowedOrigin},
			AuthRateLimitRPS:   DefaultAuthRateLimitRPS,
			AuthRateLimitBurst: DefaultAuthRateLimitBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			SessionPath: DefaultSessionPath,
			LogPath:     DefaultLogPath,
		},
	}
}
