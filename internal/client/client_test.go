package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/translation-keys", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.TranslationKeyPayload{
			{ID: "id-1", Key: "button.save", Category: "buttons"},
		})
	}))
	defer server.Close()

	keys, err := New(server.URL).ListKeys(context.Background())

	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "button.save", keys[0].Key)
}

func TestClient_ErrorEnvelopeDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"detail":      "Translation key not found",
			"status_code": http.StatusNotFound,
		})
	}))
	defer server.Close()

	_, err := New(server.URL).GetKey(context.Background(), "missing")

	var apiErr *app_errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, "Translation key not found", apiErr.Message)
}

func TestClient_HTTPErrorsAreNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"detail":      "Invalid locale code",
			"status_code": http.StatusBadRequest,
		})
	}))
	defer server.Close()

	_, err := New(server.URL).ListKeys(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

// flakyTransport fails the first failures attempts at the transport level,
// then delegates to the real transport.
type flakyTransport struct {
	failures int32
	inner    http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if atomic.AddInt32(&t.failures, -1) >= 0 {
		return nil, errors.New("connection refused")
	}
	return t.inner.RoundTrip(req)
}

func TestClient_RetriesTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: &flakyTransport{failures: 2, inner: http.DefaultTransport}}
	api := New(server.URL, WithHTTPClient(httpClient))

	keys, err := api.ListKeys(context.Background())

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClient_RetryBudgetExhausted(t *testing.T) {
	httpClient := &http.Client{Transport: &flakyTransport{failures: 10, inner: http.DefaultTransport}}
	api := New("http://127.0.0.1:0", WithHTTPClient(httpClient), WithRetries(1, 0))

	_, err := api.ListKeys(context.Background())

	var apiErr *app_errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, app_errors.ErrNetwork.Code, apiErr.Code)
}

func TestClient_UpdateTranslationSendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/translation-keys/id-1/translations/es", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "es", body["language_code"])
		assert.Equal(t, "Guardar", body["value"])
		assert.Equal(t, "editor", body["updated_by"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TranslationKeyPayload{
			ID:  "id-1",
			Key: "button.save",
			Translations: map[string]models.TranslationValue{
				"es": {Value: "Guardar", UpdatedBy: "editor"},
			},
		})
	}))
	defer server.Close()

	key, err := New(server.URL).UpdateTranslation(context.Background(), "id-1", "es", "Guardar", "editor")

	require.NoError(t, err)
	assert.Equal(t, "Guardar", key.Translations["es"].Value)
}

func TestClient_DeleteKeyAcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL).DeleteKey(context.Background(), "id-1")

	assert.NoError(t, err)
}

func TestClient_BulkUpdateReturnsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/translation-keys/bulk", r.URL.Path)

		var body struct {
			Updates []BulkUpdateEntry `json:"updates"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"updated_count": len(body.Updates)})
	}))
	defer server.Close()

	count, err := New(server.URL).BulkUpdate(context.Background(), []BulkUpdateEntry{
		{KeyID: "id-1", Locale: "es", Value: "Guardar"},
		{KeyID: "id-2", Locale: "es", Value: "Inicio"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestClient_ImportCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translation-keys/bulk/csv", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "CSV import completed",
			"data": map[string]int{
				"created_keys":         2,
				"updated_keys":         1,
				"translations_updated": 5,
				"total_rows_processed": 3,
			},
		})
	}))
	defer server.Close()

	result, err := New(server.URL).ImportCSV(context.Background(), "key,category\nfoo,bar", "importer")

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedKeys)
	assert.Equal(t, 1, result.UpdatedKeys)
	assert.Equal(t, 5, result.TranslationsUpdated)
	assert.Equal(t, 3, result.TotalRowsProcessed)
}

func TestClient_Localizations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/localizations/default/es", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"project_id": "default",
			"locale":     "es",
			"localizations": map[string]string{
				"button.save": "Guardar",
			},
		})
	}))
	defer server.Close()

	values, err := New(server.URL).Localizations(context.Background(), "default", "es")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"button.save": "Guardar"}, values)
}
