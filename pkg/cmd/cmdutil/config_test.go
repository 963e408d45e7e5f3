package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
exchange:
  apiKey: key
  apiSecret: secret
  uid: up123
  rateLimit: 2+1/1s
database:
  driver: sqlite3
  dsn: file::memory:
persistence:
  json:
    directory: var/data
`

func TestLoadConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "cexio.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(testConfig), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, "key", config.Exchange.APIKey)
	assert.Equal(t, "up123", config.Exchange.UID)
	assert.Equal(t, "sqlite3", config.Database.Driver)
	if assert.NotNil(t, config.Persistence) && assert.NotNil(t, config.Persistence.Json) {
		assert.Equal(t, "var/data", config.Persistence.Json.Directory)
	}
	assert.Nil(t, config.Persistence.Redis)
}

func TestLoadConfig_Missing(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, config.Exchange.APIKey)
	assert.Nil(t, config.Persistence)
}

func TestLoadConfig_Invalid(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "cexio.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("exchange: [1, 2"), 0644))

	_, err := LoadConfig(configFile)
	assert.Error(t, err)
}

func TestConfig_SetViperDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "cexio.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(testConfig), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)

	v := viper.New()
	v.Set("cex-api-key", "from-flag")
	config.SetViperDefaults(v)

	assert.Equal(t, "from-flag", v.GetString("cex-api-key"))
	assert.Equal(t, "secret", v.GetString("cex-api-secret"))
	assert.Equal(t, "2+1/1s", v.GetString("cex-rate-limit"))
	assert.Equal(t, "file::memory:", v.GetString("db-dsn"))
	assert.Empty(t, v.GetString("cex-base-url"))
}
