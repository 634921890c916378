package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CSVImportResult summarizes one CSV import run.
type CSVImportResult struct {
	CreatedKeys         int `json:"created_keys"`
	UpdatedKeys         int `json:"updated_keys"`
	TranslationsUpdated int `json:"translations_updated"`
	TotalRowsProcessed  int `json:"total_rows_processed"`
}

// CSVImporter parses localization CSV data and applies it in one transaction.
//
// Expected format: a header row of "key,category[,description],<locale>..."
// followed by one row per translation key. Empty translation cells are
// skipped; missing keys are created, existing keys have category and
// description refreshed when the CSV provides different values.
type CSVImporter struct {
	service *TranslationService
}

// NewCSVImporter creates a CSVImporter on top of the translation service.
func NewCSVImporter(service *TranslationService) *CSVImporter {
	return &CSVImporter{service: service}
}

// csvLayout describes which header column maps to which field.
type csvLayout struct {
	keyCol         int
	categoryCol    int
	descriptionCol int
	localeCols     map[int]string // column index -> locale code
}

// Import parses csvData and applies all rows atomically. updatedBy is
// recorded on every written translation; it defaults to "csv_import".
func (imp *CSVImporter) Import(ctx context.Context, csvData, updatedBy string) (*CSVImportResult, error) {
	if strings.TrimSpace(csvData) == "" {
		return nil, app_errors.NewValidationError("Field 'csv_data' is required")
	}
	if updatedBy == "" {
		updatedBy = "csv_import"
	}

	reader := csv.NewReader(strings.NewReader(csvData))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, app_errors.NewValidationError(fmt.Sprintf("Malformed CSV: %v", err))
	}
	if len(records) < 1 {
		return nil, app_errors.NewValidationError("CSV data has no header row")
	}

	layout, err := parseCSVHeader(records[0])
	if err != nil {
		return nil, err
	}

	result := &CSVImportResult{}
	err = imp.service.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for rowNum, row := range records[1:] {
			if err := imp.importRow(tx, layout, row, updatedBy, result); err != nil {
				return fmt.Errorf("row %d: %w", rowNum+2, err)
			}
			result.TotalRowsProcessed++
		}
		return nil
	})
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	imp.service.invalidateLocalizations()
	logrus.WithFields(logrus.Fields{
		"created_keys":         result.CreatedKeys,
		"updated_keys":         result.UpdatedKeys,
		"translations_updated": result.TranslationsUpdated,
		"rows":                 result.TotalRowsProcessed,
	}).Info("CSV import completed")

	return result, nil
}

// parseCSVHeader resolves column roles from the header row.
func parseCSVHeader(header []string) (*csvLayout, error) {
	layout := &csvLayout{
		keyCol:         -1,
		categoryCol:    -1,
		descriptionCol: -1,
		localeCols:     make(map[int]string),
	}

	for i, name := range header {
		name = strings.TrimSpace(name)
		switch strings.ToLower(name) {
		case "key":
			layout.keyCol = i
		case "category":
			layout.categoryCol = i
		case "description":
			layout.descriptionCol = i
		default:
			if err := utils.ValidateLocale(name); err != nil {
				return nil, app_errors.NewValidationError(fmt.Sprintf("Unrecognized CSV column %q", name))
			}
			layout.localeCols[i] = name
		}
	}

	if layout.keyCol == -1 {
		return nil, app_errors.NewValidationError("CSV header must contain a 'key' column")
	}
	return layout, nil
}

// importRow applies one CSV data row inside the import transaction.
func (imp *CSVImporter) importRow(tx *gorm.DB, layout *csvLayout, row []string, updatedBy string, result *CSVImportResult) error {
	cell := func(col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	keyString := cell(layout.keyCol)
	if keyString == "" {
		return fmt.Errorf("missing key")
	}

	category := cell(layout.categoryCol)
	description := cell(layout.descriptionCol)

	var key models.TranslationKey
	err := tx.First(&key, "key = ?", keyString).Error
	switch err {
	case nil:
		updates := map[string]any{}
		if category != "" && category != key.Category {
			updates["category"] = category
		}
		if description != "" && description != key.Description {
			updates["description"] = description
		}
		if len(updates) > 0 {
			if err := tx.Model(&key).Updates(updates).Error; err != nil {
				return err
			}
			result.UpdatedKeys++
		}
	case gorm.ErrRecordNotFound:
		if category == "" {
			category = "general"
		}
		key = models.TranslationKey{
			Key:         keyString,
			Category:    category,
			Description: description,
		}
		if err := tx.Create(&key).Error; err != nil {
			return err
		}
		result.CreatedKeys++
	default:
		return err
	}

	for col, locale := range layout.localeCols {
		value := cell(col)
		if value == "" {
			continue
		}
		if err := upsertTranslationTx(tx, key.ID, locale, value, updatedBy); err != nil {
			return err
		}
		result.TranslationsUpdated++
	}

	return nil
}
