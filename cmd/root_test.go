package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
}

func TestSeedAgainstSqliteFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{"seed", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, rootCmd.Execute())

	// a populated catalog is left alone
	rootCmd.SetArgs([]string{"seed"})
	require.NoError(t, rootCmd.Execute())

	rt, err := bootstrap()
	require.NoError(t, err)
	defer rt.close()

	var count int64
	require.NoError(t, rt.db.Table("movies").Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	rootCmd.SetArgs([]string{"migrate"})
	assert.Error(t, rootCmd.Execute())
}
