package client

import (
	"sort"
	"strings"

	"locman/internal/models"
)

// SearchFilters describes the client-side view criteria. The zero value
// filters nothing.
type SearchFilters struct {
	// SearchTerm is matched case-insensitively as a substring of the key,
	// category, description, or any translation value.
	SearchTerm string

	// SelectedCategories keeps only keys whose category is in the set.
	// Empty means all categories pass.
	SelectedCategories []string

	// SelectedLocales lists the locale columns chosen for display. It never
	// filters rows; a missing translation is a displayable empty state.
	SelectedLocales []string
}

// FilterResult is the derived view over a key collection snapshot.
type FilterResult struct {
	FilteredKeys        []models.TranslationKeyPayload
	AvailableCategories []string
	AvailableLocales    []string
	TotalKeys           int
	FilteredCount       int
}

// Filter derives the filtered, category-sorted view of keys. It is a pure
// function: the input is never mutated and identical inputs yield identical
// results.
//
// Ordering: ascending by category, with the original collection order as the
// tie-break (stable sort). Available categories and locales are computed from
// the unfiltered collection so filter dropdowns always show every value.
func Filter(keys []models.TranslationKeyPayload, filters SearchFilters) FilterResult {
	categorySet := make(map[string]struct{}, len(filters.SelectedCategories))
	for _, category := range filters.SelectedCategories {
		categorySet[category] = struct{}{}
	}
	term := strings.ToLower(filters.SearchTerm)

	filtered := make([]models.TranslationKeyPayload, 0, len(keys))
	for _, key := range keys {
		if len(categorySet) > 0 {
			if _, ok := categorySet[key.Category]; !ok {
				continue
			}
		}
		if term != "" && !matchesTerm(key, term) {
			continue
		}
		filtered = append(filtered, key)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Category < filtered[j].Category
	})

	return FilterResult{
		FilteredKeys:        filtered,
		AvailableCategories: distinctCategories(keys),
		AvailableLocales:    distinctLocales(keys),
		TotalKeys:           len(keys),
		FilteredCount:       len(filtered),
	}
}

// matchesTerm reports whether any searchable field of key contains term.
// term must already be lowercased.
func matchesTerm(key models.TranslationKeyPayload, term string) bool {
	if strings.Contains(strings.ToLower(key.Key), term) {
		return true
	}
	if strings.Contains(strings.ToLower(key.Category), term) {
		return true
	}
	if key.Description != "" && strings.Contains(strings.ToLower(key.Description), term) {
		return true
	}
	for _, translation := range key.Translations {
		if strings.Contains(strings.ToLower(translation.Value), term) {
			return true
		}
	}
	return false
}

// distinctCategories returns the sorted deduplicated categories across keys.
func distinctCategories(keys []models.TranslationKeyPayload) []string {
	seen := make(map[string]struct{})
	for _, key := range keys {
		seen[key.Category] = struct{}{}
	}
	return sortedSet(seen)
}

// distinctLocales returns the sorted union of locale codes across all keys.
func distinctLocales(keys []models.TranslationKeyPayload) []string {
	seen := make(map[string]struct{})
	for _, key := range keys {
		for locale := range key.Translations {
			seen[locale] = struct{}{}
		}
	}
	return sortedSet(seen)
}

func sortedSet(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
