package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"abc", "abc", 1},
		{"abc", "xyz", 0},
		{"", "", 0},
		{"", "abc", 0},
		// distinct letters count once: {l, o} shared, 2*2/(5+4)
		{"hello", "loop", 4.0 / 9.0},
		// repeated letters on both sides: {a} shared, 2*1/(3+2)
		{"aaa", "aa", 0.4},
		// lengths are counted in runes, not bytes
		{"мир", "мира", 2 * 3.0 / 7.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Score(tt.a, tt.b), 1e-9, "Score(%q, %q)", tt.a, tt.b)
		assert.InDelta(t, Score(tt.a, tt.b), Score(tt.b, tt.a), 1e-9, "Score must be symmetric")
	}
}

func TestBestMatch_EmptyCandidates(t *testing.T) {
	for _, query := range []string{"", "a", "mothers", "привет"} {
		got, ok := BestMatch(nil, query)
		assert.False(t, ok, "query %q", query)
		assert.Empty(t, got)

		got, ok = BestMatch([]string{}, query)
		assert.False(t, ok, "query %q", query)
		assert.Empty(t, got)
	}
}

func TestBestMatch_SubstringShortCircuit(t *testing.T) {
	got, ok := BestMatch([]string{"grandmother", "mother"}, "mothers")
	assert.True(t, ok)
	assert.Equal(t, "mother", got)
}

func TestBestMatch_SubstringFirstWins(t *testing.T) {
	// "mothers" contains "mother" and is a substring of "mothership"; the
	// first one in order wins even though "mother" scores higher
	got, ok := BestMatch([]string{"mothership", "mother"}, "mothers")
	assert.True(t, ok)
	assert.Equal(t, "mothership", got)
}

func TestBestMatch_SubstringBeatsScore(t *testing.T) {
	// "gnirts" scores a perfect 1 but is no substring; "strings" contains
	// the query and is chosen without scoring
	got, ok := BestMatch([]string{"gnirts", "strings"}, "string")
	assert.True(t, ok)
	assert.Equal(t, "strings", got)
}

func TestBestMatch_ShortQuerySkipsSubstring(t *testing.T) {
	// "cat" is too short for the short-circuit, so "act" (score 1) beats
	// "cats" which contains it (score 6/7)
	got, ok := BestMatch([]string{"cats", "act"}, "cat")
	assert.True(t, ok)
	assert.Equal(t, "act", got)
}

func TestBestMatch_ShortCandidateSkipsSubstring(t *testing.T) {
	// "word" is contained in the query but is only four letters long
	got, ok := BestMatch([]string{"word", "sword"}, "swordfish")
	assert.True(t, ok)
	assert.Equal(t, "sword", got)
}

func TestBestMatch_Scoring(t *testing.T) {
	got, ok := BestMatch([]string{"xyz", "tablet", "able"}, "table")
	assert.True(t, ok)
	assert.Equal(t, "tablet", got, "tablet contains the query")

	got, ok = BestMatch([]string{"dog", "god", "cat"}, "odg")
	assert.True(t, ok)
	assert.Equal(t, "dog", got, "ties keep the first candidate")
}

func TestBestMatch_AllZeroScores(t *testing.T) {
	got, ok := BestMatch([]string{"xyz", "qqq", ""}, "abc")
	assert.False(t, ok, "no candidate shares a letter, so there is no match")
	assert.Empty(t, got)
}

func TestBestMatch_FirstNonZeroAfterZeros(t *testing.T) {
	// only "bird" shares a letter with the query
	got, ok := BestMatch([]string{"xyz", "qqq", "bird"}, "abk")
	assert.True(t, ok)
	assert.Equal(t, "bird", got)
}

func TestBestMatch_HighestAfterZeros(t *testing.T) {
	got, ok := BestMatch([]string{"xyz", "qqq", "bird", "abc"}, "abk")
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
}

func TestBestMatch_Cyrillic(t *testing.T) {
	got, ok := BestMatch([]string{"мир", "привет", "пока"}, "приветик")
	assert.True(t, ok)
	assert.Equal(t, "привет", got)
}
