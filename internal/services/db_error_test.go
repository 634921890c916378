package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"locman/internal/config"
	app_errors "locman/internal/errors"
	"locman/internal/store"
	"locman/internal/types"
)

func setupMockService(t *testing.T) (*TranslationService, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	storage := store.NewMemoryStore()
	t.Cleanup(func() { _ = storage.Close() })

	mockConfig := &config.MockConfig{
		CacheConfigValue: types.CacheConfig{LocalizationsTTLMinutes: 5},
	}
	return NewTranslationService(db, storage, mockConfig), mock
}

func TestListKeys_DatabaseFailure(t *testing.T) {
	service, mock := setupMockService(t)

	mock.ExpectQuery("SELECT (.+) FROM `translation_keys`").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := service.ListKeys(context.Background(), "", "")

	var apiErr *app_errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, app_errors.ErrDatabase.Code, apiErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategories_DatabaseFailure(t *testing.T) {
	service, mock := setupMockService(t)

	mock.ExpectQuery("SELECT DISTINCT (.+) FROM `translation_keys`").
		WillReturnError(errors.New("driver: bad connection"))

	_, err := service.Categories(context.Background())

	var apiErr *app_errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, app_errors.ErrDatabase.Code, apiErr.Code)
}

func TestLocalizations_CachedCopyServedWithoutDatabase(t *testing.T) {
	service, mock := setupMockService(t)

	cacheKey := service.localizationsCacheKey("default", "es")
	require.NoError(t, service.storage.Set(cacheKey, []byte(`{"button.save":"Guardar"}`), time.Minute))

	localizations, err := service.Localizations(context.Background(), "default", "es")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"button.save": "Guardar"}, localizations)
	assert.NoError(t, mock.ExpectationsWereMet())
}
