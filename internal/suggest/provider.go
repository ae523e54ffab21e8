package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
)

var (
	// ErrNoAPIKey is returned when the provider has no API key configured
	ErrNoAPIKey = errors.New("API key not found")
	// ErrEmptySuggestion is returned when the provider answers with nothing usable
	ErrEmptySuggestion = errors.New("no translation returned")
)

// Provider suggests a translation for a word missing from the lexicon
type Provider interface {
	Name() string
	Suggest(ctx context.Context, word string, from, to langdetect.Language) (string, error)
}

// Other returns the language a word in lang is translated into
func Other(lang langdetect.Language) langdetect.Language {
	if lang == langdetect.Russian {
		return langdetect.English
	}
	return langdetect.Russian
}

func prompt(word string, from, to langdetect.Language) string {
	return fmt.Sprintf("Translate the %s word '%s' to %s. Respond with only the %s translation as a single lower-case word, nothing else.",
		from, word, to, to)
}

// cleanSuggestion keeps the first word of a model answer, lower-cased and
// without surrounding quotes or punctuation
func cleanSuggestion(answer string) (string, error) {
	fields := strings.Fields(answer)
	if len(fields) == 0 {
		return "", ErrEmptySuggestion
	}
	word := strings.ToLower(strings.Trim(fields[0], `"'.,!?;:«»“”`))
	if word == "" {
		return "", ErrEmptySuggestion
	}
	return word, nil
}
