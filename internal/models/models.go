// Package models defines the database models and wire payloads for
// translation keys and their per-locale translations.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranslationKey names one piece of translatable UI text, independent of any
// language. The dotted key string is unique across the store.
type TranslationKey struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey"`
	Key          string        `json:"key" gorm:"size:255;not null;uniqueIndex"`
	Category     string        `json:"category" gorm:"size:255;not null;index"`
	Description  string        `json:"description" gorm:"type:text"`
	Translations []Translation `json:"translations" gorm:"foreignKey:TranslationKeyID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Translation holds one locale's value for a translation key. The pair
// (translation_key_id, language_code) is unique.
type Translation struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	TranslationKeyID string    `json:"translation_key_id" gorm:"type:uuid;not null;uniqueIndex:idx_translations_key_locale"`
	LanguageCode     string    `json:"language_code" gorm:"size:35;not null;uniqueIndex:idx_translations_key_locale"`
	Value            string    `json:"value" gorm:"type:text;not null"`
	UpdatedBy        string    `json:"updated_by" gorm:"size:255;not null"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (k *TranslationKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key when none is set.
func (t *Translation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TranslationValue is the wire shape of a single locale's translation.
type TranslationValue struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// TranslationKeyPayload is the wire shape of a translation key, with
// translations keyed by locale code. It is shared by the server handlers and
// the API client.
type TranslationKeyPayload struct {
	ID           string                      `json:"id"`
	Key          string                      `json:"key"`
	Category     string                      `json:"category"`
	Description  string                      `json:"description,omitempty"`
	Translations map[string]TranslationValue `json:"translations"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// ToPayload converts a TranslationKey model into its wire payload.
func (k *TranslationKey) ToPayload() TranslationKeyPayload {
	translations := make(map[string]TranslationValue, len(k.Translations))
	for _, t := range k.Translations {
		translations[t.LanguageCode] = TranslationValue{
			Value:     t.Value,
			UpdatedAt: t.UpdatedAt,
			UpdatedBy: t.UpdatedBy,
		}
	}
	return TranslationKeyPayload{
		ID:           k.ID,
		Key:          k.Key,
		Category:     k.Category,
		Description:  k.Description,
		Translations: translations,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
	}
}

// ToPayloads converts a slice of models, preserving order.
func ToPayloads(keys []TranslationKey) []TranslationKeyPayload {
	payloads := make([]TranslationKeyPayload, 0, len(keys))
	for i := range keys {
		payloads = append(payloads, keys[i].ToPayload())
	}
	return payloads
}
