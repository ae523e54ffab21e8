// Package translation provides the word-by-word English/Russian translation
// engine. Each token is looked up in the lexicon and falls back to the most
// similar dictionary word when it is missing. Fuzzy matches are cached.
package translation
