package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ValidateLocale reports whether code is a well-formed BCP 47 language tag
// (e.g. "en", "es", "pt-BR"). The code is stored as given; only syntactic
// validity is enforced here.
func ValidateLocale(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("locale code must not be empty")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid locale code %q: %w", code, err)
	}
	return nil
}
