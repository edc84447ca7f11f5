package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "Recipebook", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "console", cfg.App.LogFormat)
	assert.Equal(t, []string{"stderr"}, cfg.App.LogOutputs)
	assert.Equal(t, 25, cfg.Catalog.QuickMaxTime)
	assert.True(t, cfg.Monitoring.EnableMetrics)
	assert.Equal(t, "recipebook", cfg.Monitoring.Namespace)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebook.yaml")
	content := `
app:
  environment: production
  log_format: json
catalog:
  quick_max_time: 45
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Catalog.QuickMaxTime)
	assert.Equal(t, "json", cfg.App.LogFormat)
	assert.True(t, cfg.IsProduction())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RECIPEBOOK_CATALOG_QUICK_MAX_TIME", "40")
	t.Setenv("RECIPEBOOK_APP_LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Catalog.QuickMaxTime)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoadFlagOverride(t *testing.T) {
	t.Setenv("RECIPEBOOK_CATALOG_QUICK_MAX_TIME", "40")

	flags := pflag.NewFlagSet("recipebook", pflag.ContinueOnError)
	flags.Int("max-time", 25, "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--max-time=10"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Catalog.QuickMaxTime, "changed flag wins over env")
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:     AppConfig{Name: "Recipebook", LogFormat: "json"},
			Catalog: CatalogConfig{QuickMaxTime: 25},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.App.Name = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.App.LogFormat = "xml"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.App.LogLevel = "verbos"
	assert.ErrorContains(t, cfg.Validate(), "log_level")

	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		cfg = valid()
		cfg.App.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg = valid()
	cfg.Catalog.QuickMaxTime = -1
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Catalog.QuickMaxTime = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsUnknownLogLevelFlag(t *testing.T) {
	flags := pflag.NewFlagSet("recipebook", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "verbos"}))

	_, err := Load("", flags)
	assert.ErrorContains(t, err, "log_level")
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("RECIPEBOOK_CATALOG_QUICK_MAX_TIME", "-3")

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "quick_max_time")
}
