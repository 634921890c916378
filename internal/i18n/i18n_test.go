package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(acceptLang string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if acceptLang != "" {
		c.Request.Header.Set("Accept-Language", acceptLang)
	}
	return c
}

func TestMessage_DefaultLanguage(t *testing.T) {
	require.NoError(t, Init())

	msg := Message(testContext(""), "health.ok")

	assert.Equal(t, "Localization management API is running", msg)
}

func TestMessage_SpanishLocale(t *testing.T) {
	require.NoError(t, Init())

	msg := Message(testContext("es-ES"), "health.ok")

	assert.Contains(t, msg, "funcionamiento")
}

func TestMessage_UnknownLanguageFallsBack(t *testing.T) {
	require.NoError(t, Init())

	msg := Message(testContext("ja-JP"), "health.ok")

	assert.Equal(t, "Localization management API is running", msg)
}

func TestMessage_UnknownIDReturnsID(t *testing.T) {
	require.NoError(t, Init())

	msg := Message(testContext(""), "does.not.exist")

	assert.Equal(t, "does.not.exist", msg)
}

func TestMessage_TemplateData(t *testing.T) {
	require.NoError(t, Init())

	msg := Message(testContext(""), "csv.imported", map[string]any{
		"Created":      2,
		"Updated":      1,
		"Translations": 5,
	})

	assert.Contains(t, msg, "2 keys created")
	assert.Contains(t, msg, "1 keys updated")
	assert.Contains(t, msg, "5 translations written")
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   []string
	}{
		{"", nil},
		{"en-US", []string{"en-US"}},
		{"es-ES,es;q=0.9,en;q=0.8", []string{"es-ES"}},
		{"fr;q=0.9", []string{"fr"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAcceptLanguage(tt.header), tt.header)
	}
}

func TestMiddlewareStoresLocalizer(t *testing.T) {
	require.NoError(t, Init())
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Middleware())
	engine.GET("/", func(c *gin.Context) {
		_, ok := c.Get(localizerKey)
		assert.True(t, ok)
		c.String(200, Message(c, "health.ok"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es-ES")
	engine.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "funcionamiento")
}
