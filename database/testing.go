package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenTest creates a private in-memory SQLite database, migrated and,
// when seed is true, loaded with the fixture catalog.
func OpenTest(t testing.TB, seed bool) *gorm.DB {
	t.Helper()

	dsn := sqliteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(zap.NewNop(), false),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	if seed {
		require.NoError(t, SeedData(db, zap.NewNop()))
	}
	return db
}
