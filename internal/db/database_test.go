package db

import (
	"path/filepath"
	"testing"

	"locman/internal/config"
	"locman/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_SQLiteInMemory(t *testing.T) {
	database, err := NewDB(&config.MockConfig{DatabaseDSN: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.TranslationKey{}, &models.Translation{}))

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, sqlDB.Ping())
}

func TestNewDB_SQLiteFileCreatesDirectory(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "test.db")

	database, err := NewDB(&config.MockConfig{DatabaseDSN: dsn})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, sqlDB.Ping())
}

func TestNewDB_MissingDSN(t *testing.T) {
	_, err := NewDB(&config.MockConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}
