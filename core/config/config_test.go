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
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Remote.BaseURL)
	assert.Equal(t, 30, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, float64(10), cfg.Remote.RateLimit)
	assert.Equal(t, 2, cfg.Executor.NetworkWorkers)
	assert.Equal(t, "file", cfg.Settings.Backend)
	assert.True(t, cfg.Refresh.Enabled)
	assert.True(t, cfg.Server.Swagger)
}

func TestLoadConfig_Overrides(t *testing.T) {
	// Registered first so the values are restored after the test.
	t.Setenv("REMOTE_BASE_URL", "")
	t.Setenv("EXECUTOR_NETWORK_WORKERS", "")
	t.Setenv("LOG_LEVEL", "warn")

	dir := t.TempDir()
	env := "REMOTE_BASE_URL=http://localhost:3000\nEXECUTOR_NETWORK_WORKERS=4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Remote.BaseURL)
	assert.Equal(t, 4, cfg.Executor.NetworkWorkers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Name string `mapstructure:"name" default:"x"`
	}
	type outer struct {
		Inner   inner  `mapstructure:"inner"`
		Flag    string `mapstructure:"flag"`
		Skipped string
	}

	v := viper.New()
	bindValues(v, outer{}, "")

	assert.Equal(t, "x", v.GetString("inner.name"))
	assert.True(t, v.IsSet("flag"))
	assert.False(t, v.IsSet("skipped"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")
	t.Setenv("EXECUTOR_NETWORK_WORKERS", "0")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database driver "oracle"`)
	assert.Contains(t, err.Error(), "network_workers must be positive")
}
