package handler

import (
	"locman/internal/response"

	"github.com/gin-gonic/gin"
)

// LocalizationsResponse is the resolved key-to-value map for one locale.
type LocalizationsResponse struct {
	ProjectID     string            `json:"project_id"`
	Locale        string            `json:"locale"`
	Localizations map[string]string `json:"localizations"`
}

// GetLocalizations handles GET /localizations/:project_id/:locale.
func (s *Server) GetLocalizations(c *gin.Context) {
	projectID := c.Param("project_id")
	locale := c.Param("locale")

	localizations, err := s.TranslationService.Localizations(c.Request.Context(), projectID, locale)
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, LocalizationsResponse{
		ProjectID:     projectID,
		Locale:        locale,
		Localizations: localizations,
	})
}

// GetCategories handles GET /categories.
func (s *Server) GetCategories(c *gin.Context) {
	categories, err := s.TranslationService.Categories(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, categories)
}
