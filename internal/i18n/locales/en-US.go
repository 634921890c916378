// Package locales holds the message tables for each supported language.
package locales

var enUS = map[string]string{
	"health.ok":    "Localization management API is running",
	"csv.imported": "CSV import completed: {{.Created}} keys created, {{.Updated}} keys updated, {{.Translations}} translations written",
}

// Supported returns the languages with a registered message table.
func Supported() []string {
	return []string{"en-US", "es-ES"}
}

// Messages returns the message table for a language. Unknown languages fall
// back to English.
func Messages(lang string) map[string]string {
	switch lang {
	case "es-ES":
		return esES
	default:
		return enUS
	}
}
