// Package tokenizer splits raw text into normalized, lower-case words.
package tokenizer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned for input that is not valid UTF-8
var ErrInvalidEncoding = errors.New("text is not valid UTF-8")

// noise is replaced by a space before splitting. The order matters for the
// overlapping entries ("https" before "http", "°c" before "°").
var noise = []string{
	":", ".", ",", ";", "?", "!", "\"", "'", "’", "“", "”", "\\", "/", "(", ")", "[", "]",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"_", "-", "–",
	"https", "http", "html", "htm", "www",
	">", "<", "+", "=", "%", "&", "$", "€", "#", "@", "~", "…", "→", "^", "*", "°c", "¼",
	"„", "№", "—", "‘", "⁸", "−", "{", "|", "}", "°", "×",
}

// Fragments left behind by stripping apostrophes: don't, you're, we've, i'm...
var contractionArtifacts = map[string]bool{
	"t":     true,
	"re":    true,
	"ve":    true,
	"m":     true,
	"s":     true,
	"ll":    true,
	"don":   true,
	"doesn": true,
	"haven": true,
	"g":     true,
	"e":     true,
}

// Tokenize lower-cases text, strips noise and returns the remaining words.
// The result never contains empty strings.
func Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	cleaned := strings.ToLower(text)
	for _, symbol := range noise {
		cleaned = strings.ReplaceAll(cleaned, symbol, " ")
	}

	var words []string
	for _, field := range strings.Fields(cleaned) {
		word := strings.TrimSpace(field)
		if word == "" || contractionArtifacts[word] {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

