// Package services contains the business logic for translation key and
// translation management.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/store"
	"locman/internal/types"
	"locman/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// localizationsGenKey holds a generation counter that is bumped on every
// write. Cached localization bundles embed the generation in their cache key,
// so bumping it invalidates them without enumerating cached locales.
const localizationsGenKey = "localizations:gen"

// TranslationService implements CRUD operations over translation keys and
// their per-locale translations.
type TranslationService struct {
	db      *gorm.DB
	storage store.Store
	ttl     time.Duration
}

// NewTranslationService creates a TranslationService.
func NewTranslationService(db *gorm.DB, storage store.Store, configManager types.ConfigManager) *TranslationService {
	ttlMinutes := configManager.GetCacheConfig().LocalizationsTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 5
	}
	return &TranslationService{
		db:      db,
		storage: storage,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
	}
}

// CreateKeyParams defines the fields for creating a translation key.
type CreateKeyParams struct {
	Key                 string
	Category            string
	Description         string
	InitialTranslations map[string]string
	UpdatedBy           string
}

// UpdateKeyParams defines the updatable fields of a translation key. Nil
// pointers leave the field unchanged.
type UpdateKeyParams struct {
	Key         *string
	Category    *string
	Description *string
}

// BulkUpdateParams identifies one translation cell to write.
type BulkUpdateParams struct {
	KeyID     string
	Locale    string
	Value     string
	UpdatedBy string
}

// ListKeys returns all translation keys with their translations preloaded,
// optionally filtered by category equality and a case-insensitive search term
// over key and description.
func (s *TranslationService) ListKeys(ctx context.Context, category, search string) ([]models.TranslationKey, error) {
	query := s.db.WithContext(ctx).Preload("Translations").Order("key asc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(key) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var keys []models.TranslationKey
	if err := query.Find(&keys).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return keys, nil
}

// GetKey returns a single translation key by ID.
func (s *TranslationService) GetKey(ctx context.Context, id string) (*models.TranslationKey, error) {
	var key models.TranslationKey
	err := s.db.WithContext(ctx).Preload("Translations").First(&key, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, app_errors.NewNotFoundError("Translation key not found")
		}
		return nil, app_errors.ParseDBError(err)
	}
	return &key, nil
}

// GetKeyByKey returns a single translation key by its dotted key string.
func (s *TranslationService) GetKeyByKey(ctx context.Context, keyString string) (*models.TranslationKey, error) {
	var key models.TranslationKey
	err := s.db.WithContext(ctx).Preload("Translations").First(&key, "key = ?", keyString).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, app_errors.NewNotFoundError("Translation key not found")
		}
		return nil, app_errors.ParseDBError(err)
	}
	return &key, nil
}

// CreateKey creates a translation key, optionally with initial translations,
// in a single transaction. The unique index on the key string is the
// authority on duplicates; the pre-check only produces a friendlier message.
func (s *TranslationService) CreateKey(ctx context.Context, params CreateKeyParams) (*models.TranslationKey, error) {
	if params.Key == "" {
		return nil, app_errors.NewValidationError("Field 'key' is required")
	}
	if params.Category == "" {
		return nil, app_errors.NewValidationError("Field 'category' is required")
	}
	for locale := range params.InitialTranslations {
		if err := utils.ValidateLocale(locale); err != nil {
			return nil, app_errors.NewValidationError(err.Error())
		}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.TranslationKey{}).Where("key = ?", params.Key).Count(&count).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if count > 0 {
		return nil, app_errors.NewDuplicateError(fmt.Sprintf("Translation key %q already exists", params.Key))
	}

	updatedBy := params.UpdatedBy
	if updatedBy == "" {
		updatedBy = "system"
	}

	key := models.TranslationKey{
		Key:         params.Key,
		Category:    params.Category,
		Description: params.Description,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&key).Error; err != nil {
			return err
		}
		for locale, value := range params.InitialTranslations {
			translation := models.Translation{
				TranslationKeyID: key.ID,
				LanguageCode:     locale,
				Value:            value,
				UpdatedBy:        updatedBy,
			}
			if err := tx.Create(&translation).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		apiErr := app_errors.ParseDBError(err)
		if apiErr.Code == app_errors.ErrDuplicateResource.Code {
			return nil, app_errors.NewDuplicateError(fmt.Sprintf("Translation key %q already exists", params.Key))
		}
		return nil, apiErr
	}

	s.invalidateLocalizations()
	return s.GetKey(ctx, key.ID)
}

// UpdateKey updates a translation key's own fields (not its translations).
func (s *TranslationService) UpdateKey(ctx context.Context, id string, params UpdateKeyParams) (*models.TranslationKey, error) {
	key, err := s.GetKey(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if params.Key != nil {
		if *params.Key == "" {
			return nil, app_errors.NewValidationError("Field 'key' must not be empty")
		}
		updates["key"] = *params.Key
	}
	if params.Category != nil {
		if *params.Category == "" {
			return nil, app_errors.NewValidationError("Field 'category' must not be empty")
		}
		updates["category"] = *params.Category
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if len(updates) == 0 {
		return key, nil
	}

	if err := s.db.WithContext(ctx).Model(key).Updates(updates).Error; err != nil {
		apiErr := app_errors.ParseDBError(err)
		if apiErr.Code == app_errors.ErrDuplicateResource.Code && params.Key != nil {
			return nil, app_errors.NewDuplicateError(fmt.Sprintf("Translation key %q already exists", *params.Key))
		}
		return nil, apiErr
	}

	s.invalidateLocalizations()
	return s.GetKey(ctx, id)
}

// DeleteKey deletes a translation key and all of its translations.
func (s *TranslationService) DeleteKey(ctx context.Context, id string) error {
	if _, err := s.GetKey(ctx, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Explicit child delete keeps behavior identical across dialects
		// that do not enforce the FK cascade.
		if err := tx.Where("translation_key_id = ?", id).Delete(&models.Translation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TranslationKey{}, "id = ?", id).Error
	})
	if err != nil {
		return app_errors.ParseDBError(err)
	}

	s.invalidateLocalizations()
	return nil
}

// TranslationsForKey returns all translations of one key.
func (s *TranslationService) TranslationsForKey(ctx context.Context, keyID string) ([]models.Translation, error) {
	if _, err := s.GetKey(ctx, keyID); err != nil {
		return nil, err
	}

	var translations []models.Translation
	err := s.db.WithContext(ctx).
		Where("translation_key_id = ?", keyID).
		Order("language_code asc").
		Find(&translations).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return translations, nil
}

// GetTranslation returns one key's translation for a specific locale.
func (s *TranslationService) GetTranslation(ctx context.Context, keyID, locale string) (*models.Translation, error) {
	var translation models.Translation
	err := s.db.WithContext(ctx).
		First(&translation, "translation_key_id = ? AND language_code = ?", keyID, locale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, app_errors.NewNotFoundError("Translation not found")
		}
		return nil, app_errors.ParseDBError(err)
	}
	return &translation, nil
}

// CreateTranslation creates one locale's value for a key, rejecting locales
// that already hold a value. PUT upserts; this is the create-only variant.
func (s *TranslationService) CreateTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (*models.Translation, error) {
	if err := utils.ValidateLocale(locale); err != nil {
		return nil, app_errors.NewValidationError(err.Error())
	}
	if updatedBy == "" {
		return nil, app_errors.NewValidationError("Field 'updated_by' is required")
	}
	if _, err := s.GetKey(ctx, keyID); err != nil {
		return nil, err
	}

	if _, err := s.GetTranslation(ctx, keyID, locale); err == nil {
		return nil, app_errors.NewDuplicateError("Translation already exists for this language")
	} else if apiErr := app_errors.ParseDBError(err); apiErr.Code != app_errors.ErrResourceNotFound.Code {
		return nil, apiErr
	}

	translation := models.Translation{
		TranslationKeyID: keyID,
		LanguageCode:     locale,
		Value:            value,
		UpdatedBy:        updatedBy,
	}
	if err := s.db.WithContext(ctx).Create(&translation).Error; err != nil {
		apiErr := app_errors.ParseDBError(err)
		if apiErr.Code == app_errors.ErrDuplicateResource.Code {
			// Lost a race with a concurrent writer; same answer as the pre-check.
			return nil, app_errors.NewDuplicateError("Translation already exists for this language")
		}
		return nil, apiErr
	}

	s.invalidateLocalizations()
	return &translation, nil
}

// UpsertTranslation creates or updates one locale's value for a key and
// returns the full updated key. The parent key's updated_at is not touched;
// translations live in their own records.
func (s *TranslationService) UpsertTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (*models.TranslationKey, error) {
	if err := utils.ValidateLocale(locale); err != nil {
		return nil, app_errors.NewValidationError(err.Error())
	}
	if updatedBy == "" {
		return nil, app_errors.NewValidationError("Field 'updated_by' is required")
	}
	if _, err := s.GetKey(ctx, keyID); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertTranslationTx(tx, keyID, locale, value, updatedBy)
	})
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	s.invalidateLocalizations()
	return s.GetKey(ctx, keyID)
}

// BulkUpdate applies an ordered sequence of translation writes in a single
// transaction and returns the number of updates applied. Every referenced key
// must exist before any write happens.
func (s *TranslationService) BulkUpdate(ctx context.Context, updates []BulkUpdateParams) (int, error) {
	if len(updates) == 0 {
		return 0, app_errors.NewValidationError("No updates provided")
	}

	seen := make(map[string]struct{}, len(updates))
	for _, update := range updates {
		if err := utils.ValidateLocale(update.Locale); err != nil {
			return 0, app_errors.NewValidationError(err.Error())
		}
		if _, ok := seen[update.KeyID]; ok {
			continue
		}
		seen[update.KeyID] = struct{}{}
		if _, err := s.GetKey(ctx, update.KeyID); err != nil {
			if apiErr := app_errors.ParseDBError(err); apiErr.Code == app_errors.ErrResourceNotFound.Code {
				return 0, app_errors.NewNotFoundError(fmt.Sprintf("Translation key with ID %s not found", update.KeyID))
			}
			return 0, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			updatedBy := update.UpdatedBy
			if updatedBy == "" {
				updatedBy = "system"
			}
			if err := upsertTranslationTx(tx, update.KeyID, update.Locale, update.Value, updatedBy); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, app_errors.ParseDBError(err)
	}

	s.invalidateLocalizations()
	return len(updates), nil
}

// Categories returns the sorted distinct categories across all keys.
func (s *TranslationService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).
		Model(&models.TranslationKey{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return categories, nil
}

// Localizations resolves the flat key-to-value map for one locale, cached in
// the KV store under a generation-stamped key.
func (s *TranslationService) Localizations(ctx context.Context, projectID, locale string) (map[string]string, error) {
	if err := utils.ValidateLocale(locale); err != nil {
		return nil, app_errors.NewValidationError(err.Error())
	}

	cacheKey := s.localizationsCacheKey(projectID, locale)
	if cached, err := s.storage.Get(cacheKey); err == nil {
		var localizations map[string]string
		if err := json.Unmarshal(cached, &localizations); err == nil {
			return localizations, nil
		}
		// Corrupt cache entry; fall through to the database.
		logrus.WithField("cache_key", cacheKey).Warn("Discarding unreadable localizations cache entry")
	}

	type row struct {
		Key   string
		Value string
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&models.Translation{}).
		Select("translation_keys.key AS key, translations.value AS value").
		Joins("JOIN translation_keys ON translation_keys.id = translations.translation_key_id").
		Where("translations.language_code = ?", locale).
		Scan(&rows).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	localizations := make(map[string]string, len(rows))
	for _, r := range rows {
		localizations[r.Key] = r.Value
	}

	if encoded, err := json.Marshal(localizations); err == nil {
		if err := s.storage.Set(cacheKey, encoded, s.ttl); err != nil {
			logrus.WithError(err).Warn("Failed to cache localizations")
		}
	}

	return localizations, nil
}

// localizationsCacheKey embeds the current write generation so stale entries
// are never served after a write; they simply age out by TTL.
func (s *TranslationService) localizationsCacheKey(projectID, locale string) string {
	var gen int64
	if raw, err := s.storage.Get(localizationsGenKey); err == nil {
		gen, _ = strconv.ParseInt(string(raw), 10, 64)
	}
	return fmt.Sprintf("localizations:%d:%s:%s", gen, projectID, locale)
}

// invalidateLocalizations bumps the generation counter. Failures only delay
// invalidation until the TTL expires, so they are logged and ignored.
func (s *TranslationService) invalidateLocalizations() {
	if _, err := s.storage.Incr(localizationsGenKey); err != nil {
		logrus.WithError(err).Warn("Failed to bump localizations cache generation")
	}
}

// upsertTranslationTx writes one translation cell inside a transaction.
func upsertTranslationTx(tx *gorm.DB, keyID, locale, value, updatedBy string) error {
	var existing models.Translation
	err := tx.First(&existing, "translation_key_id = ? AND language_code = ?", keyID, locale).Error
	switch err {
	case nil:
		return tx.Model(&existing).Updates(map[string]any{
			"value":      value,
			"updated_by": updatedBy,
		}).Error
	case gorm.ErrRecordNotFound:
		translation := models.Translation{
			TranslationKeyID: keyID,
			LanguageCode:     locale,
			Value:            value,
			UpdatedBy:        updatedBy,
		}
		return tx.Create(&translation).Error
	default:
		return err
	}
}
