package app

import (
	"path/filepath"
	"testing"

	"jsonplaceholder/core/config"
	"jsonplaceholder/core/database"
	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/refresh"
	"jsonplaceholder/core/remote"
	"jsonplaceholder/core/settings"

	"github.com/stretchr/testify/require"
)

// TestConfig returns a configuration backed by an in-memory database, a
// temporary settings file and the given remote base URL.
func TestConfig(t testing.TB, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Database: database.Config{Driver: "sqlite", Path: database.MemoryPath},
		Remote:   remote.Config{BaseURL: baseURL, TimeoutSeconds: 5},
		Executor: executor.Config{NetworkWorkers: 2},
		Settings: settings.Config{Backend: "file", Path: filepath.Join(t.TempDir(), "app_settings.pb")},
		Refresh:  refresh.Config{Enabled: false},
	}
}

// NewTestApp builds an App over TestConfig and closes it when the test ends.
func NewTestApp(t testing.TB, baseURL string) *App {
	t.Helper()
	a, err := New(TestConfig(t, baseURL), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}
