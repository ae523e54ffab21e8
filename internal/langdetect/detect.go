// Package langdetect tells Russian text from English text by alphabet.
package langdetect

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// RussianAlphabet holds the 33 lower-case letters of the Russian alphabet
const RussianAlphabet = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"

// Language is one of the two languages the translator knows
type Language int

const (
	English Language = iota
	Russian
)

// Tag returns the BCP 47 tag of the language
func (l Language) Tag() language.Tag {
	if l == Russian {
		return language.Russian
	}
	return language.English
}

// String returns the English name of the language, e.g. "Russian"
func (l Language) String() string {
	return display.English.Languages().Name(l.Tag())
}

// Detect returns Russian when text contains at least one letter of the
// Russian alphabet, and English otherwise. Case matters: the caller is
// expected to lower-case the text first.
func Detect(text string) Language {
	if strings.ContainsAny(text, RussianAlphabet) {
		return Russian
	}
	return English
}
