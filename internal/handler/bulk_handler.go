package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/i18n"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
)

// BulkUpdateItem identifies one translation cell in a bulk update request.
type BulkUpdateItem struct {
	KeyID     string `json:"key_id"`
	Locale    string `json:"locale"`
	Value     string `json:"value"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

// BulkUpdateRequest defines the payload for PUT /translation-keys/bulk.
type BulkUpdateRequest struct {
	Updates []BulkUpdateItem `json:"updates"`
}

// BulkUpdateResponse reports only the applied count; per-row results are not
// available, which is why clients must re-fetch after a bulk update.
type BulkUpdateResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// CSVImportRequest defines the payload for POST /translation-keys/bulk/csv.
type CSVImportRequest struct {
	CSVData   string `json:"csv_data"`
	UpdatedBy string `json:"updated_by"`
}

// BulkUpdateTranslations handles PUT /translation-keys/bulk.
func (s *Server) BulkUpdateTranslations(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	updates := make([]services.BulkUpdateParams, 0, len(req.Updates))
	for _, item := range req.Updates {
		updates = append(updates, services.BulkUpdateParams{
			KeyID:     item.KeyID,
			Locale:    item.Locale,
			Value:     item.Value,
			UpdatedBy: item.UpdatedBy,
		})
	}

	count, err := s.TranslationService.BulkUpdate(c.Request.Context(), updates)
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, BulkUpdateResponse{UpdatedCount: count})
}

// ImportCSV handles POST /translation-keys/bulk/csv.
func (s *Server) ImportCSV(c *gin.Context) {
	var req CSVImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, err := s.CSVImporter.Import(c.Request.Context(), req.CSVData, req.UpdatedBy)
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, response.APIResponse{
		Success: true,
		Message: i18n.Message(c, "csv.imported", map[string]any{
			"Created":      result.CreatedKeys,
			"Updated":      result.UpdatedKeys,
			"Translations": result.TranslationsUpdated,
		}),
		Data: result,
	})
}
