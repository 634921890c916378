// Package client provides the typed API client, the server-state cache, the
// filter engine, and the edit-session state machine used by frontends of the
// localization management API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/services"

	"github.com/sirupsen/logrus"
)

// Client is a thin typed wrapper over the localization management HTTP API.
// Transport-level failures are retried with a small fixed budget; HTTP error
// responses are never retried and surface as *errors.APIError.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	readRetries  int
	writeRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetries overrides the automatic retry budgets for reads and mutations.
func WithRetries(read, write int) Option {
	return func(c *Client) {
		c.readRetries = read
		c.writeRetries = write
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		readRetries:  2,
		writeRetries: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateKeyRequest is the payload for CreateKey.
type CreateKeyRequest struct {
	Key                 string            `json:"key"`
	Category            string            `json:"category"`
	Description         string            `json:"description,omitempty"`
	InitialTranslations map[string]string `json:"initial_translations,omitempty"`
	UpdatedBy           string            `json:"updated_by,omitempty"`
}

// BulkUpdateEntry identifies one translation cell in a bulk update.
type BulkUpdateEntry struct {
	KeyID     string `json:"key_id"`
	Locale    string `json:"locale"`
	Value     string `json:"value"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

// ListKeys fetches the full translation key collection.
func (c *Client) ListKeys(ctx context.Context) ([]models.TranslationKeyPayload, error) {
	var keys []models.TranslationKeyPayload
	if err := c.do(ctx, http.MethodGet, "/translation-keys", nil, &keys, c.readRetries); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetKey fetches a single translation key by ID.
func (c *Client) GetKey(ctx context.Context, id string) (models.TranslationKeyPayload, error) {
	var key models.TranslationKeyPayload
	err := c.do(ctx, http.MethodGet, "/translation-keys/"+id, nil, &key, c.readRetries)
	return key, err
}

// CreateKey creates a new translation key.
func (c *Client) CreateKey(ctx context.Context, req CreateKeyRequest) (models.TranslationKeyPayload, error) {
	var key models.TranslationKeyPayload
	err := c.do(ctx, http.MethodPost, "/translation-keys", req, &key, c.writeRetries)
	return key, err
}

// UpdateTranslation writes one locale's value and returns the updated key.
func (c *Client) UpdateTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (models.TranslationKeyPayload, error) {
	body := map[string]string{
		"language_code": locale,
		"value":         value,
		"updated_by":    updatedBy,
	}
	var key models.TranslationKeyPayload
	path := fmt.Sprintf("/translation-keys/%s/translations/%s", keyID, locale)
	err := c.do(ctx, http.MethodPut, path, body, &key, c.writeRetries)
	return key, err
}

// DeleteKey deletes a translation key.
func (c *Client) DeleteKey(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/translation-keys/"+id, nil, nil, c.writeRetries)
}

// BulkUpdate applies translation writes as a single request and returns the
// applied count. The response carries no per-row detail.
func (c *Client) BulkUpdate(ctx context.Context, updates []BulkUpdateEntry) (int, error) {
	body := map[string]any{"updates": updates}
	var result struct {
		UpdatedCount int `json:"updated_count"`
	}
	if err := c.do(ctx, http.MethodPut, "/translation-keys/bulk", body, &result, c.writeRetries); err != nil {
		return 0, err
	}
	return result.UpdatedCount, nil
}

// ImportCSV submits CSV data for bulk import.
func (c *Client) ImportCSV(ctx context.Context, csvData, updatedBy string) (*services.CSVImportResult, error) {
	body := map[string]string{
		"csv_data":   csvData,
		"updated_by": updatedBy,
	}
	var envelope struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    *services.CSVImportResult `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/translation-keys/bulk/csv", body, &envelope, c.writeRetries); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, app_errors.NewAPIError(app_errors.ErrInternalServer, "CSV import response carried no data")
	}
	return envelope.Data, nil
}

// Categories fetches the sorted distinct categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories, c.readRetries); err != nil {
		return nil, err
	}
	return categories, nil
}

// Localizations fetches the resolved key-to-value map for one locale.
func (c *Client) Localizations(ctx context.Context, projectID, locale string) (map[string]string, error) {
	var result struct {
		Localizations map[string]string `json:"localizations"`
	}
	path := fmt.Sprintf("/localizations/%s/%s", projectID, locale)
	if err := c.do(ctx, http.MethodGet, path, nil, &result, c.readRetries); err != nil {
		return nil, err
	}
	return result.Localizations, nil
}

// errorEnvelope is the wire shape of a non-2xx response.
type errorEnvelope struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}

// do executes one request with up to retries additional attempts on
// transport-level failures. HTTP error statuses terminate immediately.
func (c *Client) do(ctx context.Context, method, path string, body, out any, retries int) error {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			logrus.WithFields(logrus.Fields{
				"method":  method,
				"path":    path,
				"attempt": attempt,
			}).Debug("Retrying request after transport failure")
		}

		var reader io.Reader
		if encoded != nil {
			reader = bytes.NewReader(encoded)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		if encoded != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}

		return decodeResponse(resp, out)
	}

	return app_errors.NewAPIError(app_errors.ErrNetwork, lastErr.Error())
}

// decodeResponse consumes the response body, returning an APIError for any
// non-2xx status.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Detail == "" {
			return app_errors.FromHTTPStatus(resp.StatusCode, "")
		}
		return app_errors.FromHTTPStatus(resp.StatusCode, envelope.Detail)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
