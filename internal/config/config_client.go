package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// ServerAddress is the server base address used by the adapter.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// SessionPath is the session file location.
	SessionPath string
	// LogPath is the client log file location.
	LogPath string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the client-relevant fields of cfg.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		SessionPath:    cfg.Client.SessionPath,
		LogPath:        cfg.Client.LogPath,
	}
}

// BackfillConfig is the configuration of the orphan book backfill tool.
type BackfillConfig struct {
	DSN      string
	Owner    string
	DryRun   bool
	LogLevel string
}

// GetBackfillConfig builds and validates the backfill tool configuration.
func GetBackfillConfig() (*BackfillConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	backfillCfg := &BackfillConfig{
		DSN:      cfg.Storage.DB.DSN,
		Owner:    cfg.Backfill.Owner,
		DryRun:   cfg.Backfill.DryRun,
		LogLevel: cfg.App.LogLevel,
	}
	return backfillCfg, backfillCfg.validate()
}
