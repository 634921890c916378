package client

import (
	"context"
	"errors"

	"locman/internal/models"
)

// ErrNotEditing is returned when UpdateValue is called while no edit is live.
var ErrNotEditing = errors.New("client: no edit in progress")

// Saver persists a confirmed edit. *Cache satisfies this interface.
type Saver interface {
	UpdateTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (models.TranslationKeyPayload, error)
}

// EditSession tracks at most one in-progress inline edit. Starting a new edit
// silently discards any live one; only the UI focus moves, no network call is
// made for the discarded edit.
//
// EditSession is designed for a single UI goroutine and is not safe for
// concurrent use.
type EditSession struct {
	saver     Saver
	updatedBy string

	editing  bool
	keyID    string
	locale   string
	original string
	current  string
}

// NewEditSession creates an idle edit session. Saves are attributed to
// updatedBy.
func NewEditSession(saver Saver, updatedBy string) *EditSession {
	return &EditSession{
		saver:     saver,
		updatedBy: updatedBy,
	}
}

// StartEditing begins editing one cell, replacing any live edit.
func (s *EditSession) StartEditing(keyID, locale, value string) {
	s.editing = true
	s.keyID = keyID
	s.locale = locale
	s.original = value
	s.current = value
}

// UpdateValue replaces the live edit's current value.
func (s *EditSession) UpdateValue(value string) error {
	if !s.editing {
		return ErrNotEditing
	}
	s.current = value
	return nil
}

// Cancel discards the live edit without any network effect.
func (s *EditSession) Cancel() {
	s.reset()
}

// Confirm commits the live edit. An unchanged value is treated as a cancel
// and issues no network call. The session returns to idle whether the save
// succeeds or fails; on failure the error is surfaced and the caller decides
// whether to re-open editing.
func (s *EditSession) Confirm(ctx context.Context) error {
	if !s.editing {
		return nil
	}
	if s.current == s.original {
		s.reset()
		return nil
	}

	keyID, locale, value := s.keyID, s.locale, s.current
	s.reset()

	_, err := s.saver.UpdateTranslation(ctx, keyID, locale, value, s.updatedBy)
	return err
}

// IsEditing reports whether an edit is live.
func (s *EditSession) IsEditing() bool {
	return s.editing
}

// Target returns the key ID and locale of the live edit, or empty strings.
func (s *EditSession) Target() (keyID, locale string) {
	return s.keyID, s.locale
}

// Value returns the live edit's current value.
func (s *EditSession) Value() string {
	return s.current
}

// Dirty reports whether the live edit differs from its original value.
func (s *EditSession) Dirty() bool {
	return s.editing && s.current != s.original
}

func (s *EditSession) reset() {
	s.editing = false
	s.keyID = ""
	s.locale = ""
	s.original = ""
	s.current = ""
}
