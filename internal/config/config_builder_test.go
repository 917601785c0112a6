package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer", TokenSignKey: "flag-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
}

// ── withFlags / withJSON / withDefaults ───────────────────────────────────────

func TestWithFlags_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_LowerPriorityThanFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json-issuer", "token_sign_key": "json-key"},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-token-issuer", "flag-issuer"}).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
}

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags([]string{"-d", "storybook.db", "-token-sign-key", "secret"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "storybook.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	require.NoError(t, cfg.validate())
}

// ── validate ──────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "storybook.db"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "no timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero burst", mutate: func(cfg *StructuredConfig) { cfg.Server.AuthRateLimitBurst = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := defaults().ClientConfig()
	require.NoError(t, cfg.validate())

	cfg.ServerAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestBackfillConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&BackfillConfig{}).validate(), ErrInvalidStorageConfigs)
	assert.NoError(t, (&BackfillConfig{DSN: "storybook.db"}).validate())
}
