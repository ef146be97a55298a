package data

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, sqlDB, err := Open(Config{
		Driver:       DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "movies.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		MaxIdleTime:  time.Minute,
		AutoMigrate:  true,
	}, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func newTestModels(t *testing.T) Models {
	t.Helper()
	return NewModels(newTestDB(t))
}
