package appconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Staging, EnvFlagToEnvironment("staging"))
	assert.Equal(t, Production, EnvFlagToEnvironment("production"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("something-else"))
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 8080
env: production
api_keys:
  - alpha
  - beta
rate_limit: 50
refresh_interval: 12h
feeds_enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config := Config{
		Port:         5000,
		Env:          Development,
		ApiKeys:      []string{"test"},
		RateLimit:    100,
		DataPath:     "gaia.db",
		FeedsEnabled: true,
	}
	require.NoError(t, LoadConfigFile(path, &config))

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, Production, config.Env)
	assert.Equal(t, []string{"alpha", "beta"}, config.ApiKeys)
	assert.Equal(t, 50, config.RateLimit)
	assert.Equal(t, 12*time.Hour, config.RefreshInterval)
	assert.False(t, config.FeedsEnabled)
	// Not present in the file, so the flag value survives.
	assert.Equal(t, "gaia.db", config.DataPath)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	config := Config{}
	assert.Error(t, LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), &config))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o644))
	assert.Error(t, LoadConfigFile(path, &config))

	path = filepath.Join(t.TempDir(), "interval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_interval: soon"), 0o644))
	assert.Error(t, LoadConfigFile(path, &config))
}

func TestParseApiKeys(t *testing.T) {
	assert.Nil(t, ParseApiKeys(""))
	assert.Equal(t, []string{"one", "two"}, ParseApiKeys("one, two"))
}
