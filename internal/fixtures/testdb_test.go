package fixtures

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/click-ai/cal.com/internal/config"
	"github.com/click-ai/cal.com/internal/database"
)

// setupTestDB opens a private in-memory database and migrates the full
// schema. Each test gets its own database; the named DSN keeps it alive
// across the connections in gorm's pool.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTestFactory(t *testing.T) (*Factory, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewFactory(db, config.SeedConfig{}), db
}
