package helper_test

import (
	"path/filepath"
	"roombook/config"
	"roombook/helper"
	"roombook/infras/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverSqlite
	cfg.Storage.Sqlite.Path = filepath.Join(t.TempDir(), "bookings.db")
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	return cfg
}

func tableExists(t *testing.T, path string) bool {
	t.Helper()

	db, err := database.CreateSqliteConnection(path)
	require.NoError(t, err)

	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'room_bookings'"))

	return count == 1
}

func TestRunner_Sqlite(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, helper.Up(cfg))
	assert.True(t, tableExists(t, cfg.Storage.Sqlite.Path))

	require.NoError(t, helper.Up(cfg), "re-running up is a no-op")

	require.NoError(t, helper.Drop(cfg))
	assert.False(t, tableExists(t, cfg.Storage.Sqlite.Path))
}

func TestRunner_UnknownAction(t *testing.T) {
	assert.Error(t, helper.Runner(sqliteConfig(t), "sideways"))
}

func TestAutoMigrate(t *testing.T) {
	t.Run("file driver is skipped", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.Driver = config.StorageDriverFile
		cfg.Storage.AutoMigrate = true

		assert.NoError(t, helper.AutoMigrate(cfg))
	})

	t.Run("disabled does nothing", func(t *testing.T) {
		cfg := sqliteConfig(t)

		require.NoError(t, helper.AutoMigrate(cfg))
		assert.False(t, tableExists(t, cfg.Storage.Sqlite.Path))
	})

	t.Run("enabled applies migrations", func(t *testing.T) {
		cfg := sqliteConfig(t)
		cfg.Storage.AutoMigrate = true

		require.NoError(t, helper.AutoMigrate(cfg))
		assert.True(t, tableExists(t, cfg.Storage.Sqlite.Path))
	})
}
