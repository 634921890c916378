package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/response"

	"github.com/gin-gonic/gin"
)

// TranslationUpsertRequest defines the payload for writing one locale value.
type TranslationUpsertRequest struct {
	LanguageCode string `json:"language_code"`
	Value        string `json:"value"`
	UpdatedBy    string `json:"updated_by"`
}

// ListTranslationsForKey handles GET /translation-keys/:id/translations.
func (s *Server) ListTranslationsForKey(c *gin.Context) {
	translations, err := s.TranslationService.TranslationsForKey(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, translations)
}

// GetTranslation handles GET /translation-keys/:id/translations/:locale.
func (s *Server) GetTranslation(c *gin.Context) {
	translation, err := s.TranslationService.GetTranslation(c.Request.Context(), c.Param("id"), c.Param("locale"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, translation)
}

// CreateTranslation handles POST /translation-keys/:id/translations/:locale.
// Unlike the PUT upsert, an existing translation for the locale is a conflict.
func (s *Server) CreateTranslation(c *gin.Context) {
	var req TranslationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	locale := c.Param("locale")
	if req.LanguageCode != "" && req.LanguageCode != locale {
		response.Error(c, app_errors.NewValidationError("Body 'language_code' does not match the path locale"))
		return
	}

	translation, err := s.TranslationService.CreateTranslation(c.Request.Context(), c.Param("id"), locale, req.Value, req.UpdatedBy)
	if HandleServiceError(c, err) {
		return
	}
	response.Created(c, translation)
}

// UpsertTranslation handles PUT /translation-keys/:id/translations/:locale.
// The path locale is authoritative; a mismatched body language_code is
// rejected rather than silently ignored.
func (s *Server) UpsertTranslation(c *gin.Context) {
	var req TranslationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	locale := c.Param("locale")
	if req.LanguageCode != "" && req.LanguageCode != locale {
		response.Error(c, app_errors.NewValidationError("Body 'language_code' does not match the path locale"))
		return
	}

	key, err := s.TranslationService.UpsertTranslation(c.Request.Context(), c.Param("id"), locale, req.Value, req.UpdatedBy)
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, key.ToPayload())
}
