// Package i18n localizes the service's own human-readable messages.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"locman/internal/i18n/locales"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const localizerKey = "i18n_localizer"

var bundle *i18n.Bundle

// Init initializes the i18n bundle with all supported locales.
func Init() error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range locales.Supported() {
		if err := loadMessages(lang); err != nil {
			return fmt.Errorf("failed to load language %s: %w", lang, err)
		}
	}

	return nil
}

// loadMessages registers the message table for one language.
func loadMessages(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	for id, msg := range locales.Messages(lang) {
		bundle.AddMessages(tag, &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}
	return nil
}

// GetLocalizer builds a localizer for an Accept-Language header value.
func GetLocalizer(acceptLang string) *i18n.Localizer {
	langs := parseAcceptLanguage(acceptLang)
	if len(langs) == 0 {
		langs = []string{"en-US"}
	}
	return i18n.NewLocalizer(bundle, langs...)
}

// Message resolves a message ID using the request's localizer. Falls back to
// the message ID itself when no translation exists.
func Message(c *gin.Context, msgID string, templateData ...map[string]any) string {
	var localizer *i18n.Localizer
	if v, ok := c.Get(localizerKey); ok {
		localizer, _ = v.(*i18n.Localizer)
	}
	if localizer == nil {
		localizer = GetLocalizer(c.GetHeader("Accept-Language"))
	}

	cfg := &i18n.LocalizeConfig{MessageID: msgID}
	if len(templateData) > 0 {
		cfg.TemplateData = templateData[0]
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return msgID
	}
	return msg
}

// parseAcceptLanguage extracts the first language from an Accept-Language header.
func parseAcceptLanguage(acceptLang string) []string {
	if acceptLang == "" {
		return nil
	}
	parts := strings.Split(acceptLang, ",")
	lang := strings.TrimSpace(parts[0])
	if idx := strings.Index(lang, ";"); idx > 0 {
		lang = lang[:idx]
	}
	if lang == "" {
		return nil
	}
	return []string{lang}
}
