package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("RPBANK_JWT_SECRET_KEY", "test-secret")

	require.NoError(t, LoadConfig(t.TempDir()))

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "json", AppConfig.Storage.Driver)
	assert.Equal(t, int64(1200), AppConfig.Economy.OpeningCard)
	assert.Equal(t, int64(0), AppConfig.Economy.OpeningCash)
	assert.InDelta(t, 0.065, AppConfig.Economy.TaxRate, 1e-9)
	assert.Len(t, AppConfig.Economy.Banks, 5)
	assert.Len(t, AppConfig.Economy.Shop, 8)
	assert.Equal(t, "@daily", AppConfig.Scheduler.Spec)

	bank, ok := AppConfig.Economy.BankByName("BBVA")
	assert.True(t, ok)
	assert.Equal(t, "BBVA", bank.Name)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("RPBANK_JWT_SECRET_KEY", "")

	err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	yml := `
server:
  port: "9090"
economy:
  opening_card: 500
  shop:
    - name: "Bate de béisbol"
      price: 175
jwt:
  secret_key: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))
	t.Setenv("RPBANK_SERVER_PORT", "7070")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "7070", AppConfig.Server.Port)
	assert.Equal(t, "from-file", AppConfig.JWT.SecretKey)
	assert.Equal(t, int64(500), AppConfig.Economy.OpeningCard)
	require.Len(t, AppConfig.Economy.Shop, 1)
	assert.Equal(t, "Bate de béisbol", AppConfig.Economy.Shop[0].Name)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("RPBANK_JWT_SECRET_KEY", "s")
	t.Setenv("RPBANK_STORAGE_DRIVER", "sqlite")

	assert.Error(t, LoadConfig(t.TempDir()))
}
