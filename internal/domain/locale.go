package domain

import "strings"

// Locale identifies one supported culture a record can be replicated into.
type Locale struct {
	Code        string `json:"code"`
	IsDefault   bool   `json:"isDefault"`
	IsSupported bool   `json:"isSupported"`
}

// CloneTargets returns the locales a record in source may be cloned into:
// supported locales whose code differs from source, in their original order.
// Callers enabling cloning on save are responsible for this filtering.
func CloneTargets(all []Locale, source string) []Locale {
	targets := make([]Locale, 0, len(all))
	for _, l := range all {
		if !l.IsSupported || strings.EqualFold(l.Code, source) {
			continue
		}
		targets = append(targets, l)
	}
	return targets
}

// DefaultLocale returns the locale flagged as default, or the first locale
// when none is flagged. ok is false for an empty slice.
func DefaultLocale(all []Locale) (Locale, bool) {
	for _, l := range all {
		if l.IsDefault {
			return l, true
		}
	}
	if len(all) == 0 {
		return Locale{}, false
	}
	return all[0], true
}

// FindLocale looks up a locale by code, ignoring case.
func FindLocale(all []Locale, code string) (Locale, bool) {
	for _, l := range all {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Locale{}, false
}
