package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
)

// TranslationKeyCreateRequest defines the payload for creating a translation key.
type TranslationKeyCreateRequest struct {
	Key                 string            `json:"key"`
	Category            string            `json:"category"`
	Description         string            `json:"description"`
	InitialTranslations map[string]string `json:"initial_translations"`
	UpdatedBy           string            `json:"updated_by"`
}

// TranslationKeyUpdateRequest defines the payload for updating a translation
// key. Pointer fields distinguish "absent" from zero values.
type TranslationKeyUpdateRequest struct {
	Key         *string `json:"key,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListTranslationKeys handles GET /translation-keys.
func (s *Server) ListTranslationKeys(c *gin.Context) {
	keys, err := s.TranslationService.ListKeys(c.Request.Context(), c.Query("category"), c.Query("search"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, models.ToPayloads(keys))
}

// GetTranslationKey handles GET /translation-keys/:id.
func (s *Server) GetTranslationKey(c *gin.Context) {
	key, err := s.TranslationService.GetKey(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, key.ToPayload())
}

// CreateTranslationKey handles POST /translation-keys.
func (s *Server) CreateTranslationKey(c *gin.Context) {
	var req TranslationKeyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	key, err := s.TranslationService.CreateKey(c.Request.Context(), services.CreateKeyParams{
		Key:                 req.Key,
		Category:            req.Category,
		Description:         req.Description,
		InitialTranslations: req.InitialTranslations,
		UpdatedBy:           req.UpdatedBy,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.Created(c, key.ToPayload())
}

// UpdateTranslationKey handles PUT /translation-keys/:id.
func (s *Server) UpdateTranslationKey(c *gin.Context) {
	var req TranslationKeyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	key, err := s.TranslationService.UpdateKey(c.Request.Context(), c.Param("id"), services.UpdateKeyParams{
		Key:         req.Key,
		Category:    req.Category,
		Description: req.Description,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, key.ToPayload())
}

// DeleteTranslationKey handles DELETE /translation-keys/:id.
func (s *Server) DeleteTranslationKey(c *gin.Context) {
	err := s.TranslationService.DeleteKey(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.NoContent(c)
}
