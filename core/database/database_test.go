package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Path: MemoryPath})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
		assert.NoError(t, Close(db))
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "cache.db")
		db, err := Connect(Config{Driver: "sqlite", Path: path})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error)
		require.NoError(t, Close(db))

		reopened, err := Connect(Config{Driver: "sqlite", Path: path})
		require.NoError(t, err)
		defer Close(reopened)
		assert.True(t, reopened.Migrator().HasTable("probe"))
	})

	t.Run("UnsupportedDriver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("InvalidMySQLConnection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "jsonplaceholder",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
