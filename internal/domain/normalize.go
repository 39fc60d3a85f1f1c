package domain

import "strings"

// NormalizeText prepares a word for use in a question key: trimmed,
// lowercased, with every run of whitespace collapsed into one space.
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// NormalizeLang trims and lowercases a language code.
func NormalizeLang(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
