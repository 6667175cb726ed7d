package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The builder is exercised without withFlags: ParseFlags registers flags on
// the process-global FlagSet and can only run once per process.

func TestBuild_MergesSourcesInOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AuthToken: "first"}, Server: Server{HTTPAddress: ":9001"}},
		&StructuredConfig{App: App{Version: "2.0.0"}, Server: Server{HTTPAddress: ":9002"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field
	assert.Equal(t, "first", cfg.App.AuthToken)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, ":9001", cfg.Server.HTTPAddress)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAuthToken, cfg.App.AuthToken)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_ValidationRejectsBlankToken(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{AuthToken: "   "}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_ValidationRejectsAddressWithoutPort(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: "localhost"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestWithJSON_PicksPathFromEarlierSources(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"auth_token": "from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.AuthToken)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	require.NoError(t, b.err)
	assert.Empty(t, b.configs)
}
