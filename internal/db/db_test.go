package db

import (
	"path/filepath"
	"testing"

	"organizo/internal/config"
	"organizo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "organizo.db")
	gdb, err := Open(&config.Config{DBDriver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))

	for _, table := range []string{"tasks", "transactions", "user_settings"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.True(t, gdb.Migrator().HasColumn(&domain.Task{}, "priority"))
	assert.True(t, gdb.Migrator().HasColumn(&domain.Transaction{}, "tag"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestEnsureDirForSQLiteSkipsMemory(t *testing.T) {
	assert.NoError(t, ensureDirForSQLite(":memory:"))
	assert.NoError(t, ensureDirForSQLite("file:test?mode=memory&cache=shared"))
	assert.NoError(t, ensureDirForSQLite("local.db"))
}
