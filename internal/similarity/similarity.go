// Package similarity finds the dictionary word closest to an unknown word.
package similarity

import (
	"strings"
	"unicode/utf8"
)

// substringMinLen is the length a word must exceed to take part in the
// substring short-circuit
const substringMinLen = 4

// Score is 2*|shared distinct letters| / (len(a)+len(b)), lengths in runes.
func Score(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	return 2 * float64(commonLetters(a, b)) / float64(total)
}

func commonLetters(a, b string) int {
	letters := make(map[rune]bool, len(a))
	for _, r := range a {
		letters[r] = true
	}
	shared := 0
	for _, r := range b {
		if letters[r] {
			shared++
			delete(letters, r)
		}
	}
	return shared
}

// BestMatch returns the candidate most similar to query.
//
// When query is longer than four letters, the first candidate that is also
// longer than four letters and contains query (or is contained by it) wins
// outright. Otherwise the highest Score wins, ties going to the earlier
// candidate. The running best starts at zero and only a strictly higher score
// replaces it, so a candidate list where every score is zero has no match.
func BestMatch(candidates []string, query string) (string, bool) {
	if utf8.RuneCountInString(query) > substringMinLen {
		for _, c := range candidates {
			if utf8.RuneCountInString(c) <= substringMinLen {
				continue
			}
			if strings.Contains(c, query) || strings.Contains(query, c) {
				return c, true
			}
		}
	}

	best, bestScore, found := "", 0.0, false
	for _, c := range candidates {
		if score := Score(c, query); score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}
