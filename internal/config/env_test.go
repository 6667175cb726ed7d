package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_AUTH_TOKEN", "secret-token")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("SERVER_ADDRESS", "localhost:9091")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DATABASE_URI", ":memory:")
	t.Setenv("CONFIG", "/tmp/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "secret-token", cfg.App.AuthToken)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:9091", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.App.AuthToken)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
