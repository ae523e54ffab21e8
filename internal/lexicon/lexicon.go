package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrLengthMismatch is returned when the two word lists differ in length
var ErrLengthMismatch = errors.New("the English and the Russian parts of the dictionary have different lengths")

// Mapping is one read-only direction of a lexicon.
// Keys keep their first-insertion order; a duplicate key only replaces the value.
type Mapping struct {
	index map[string]string
	keys  []string
}

func newMapping(capacity int) *Mapping {
	return &Mapping{
		index: make(map[string]string, capacity),
		keys:  make([]string, 0, capacity),
	}
}

func (m *Mapping) put(key, value string) {
	if _, ok := m.index[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.index[key] = value
}

// Lookup returns the translation stored for word
func (m *Mapping) Lookup(word string) (string, bool) {
	value, ok := m.index[word]
	return value, ok
}

// Keys returns the mapping keys in insertion order.
// The returned slice must not be modified.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of distinct keys
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Lexicon holds the English-to-Russian and Russian-to-English mappings
type Lexicon struct {
	forward  *Mapping
	backward *Mapping
}

// New builds a lexicon from two index-aligned word lists.
// Words must already be normalized. Later duplicates overwrite earlier ones.
func New(english, russian []string) (*Lexicon, error) {
	if len(english) != len(russian) {
		return nil, fmt.Errorf("can't build the dictionary (%d English, %d Russian words): %w",
			len(english), len(russian), ErrLengthMismatch)
	}

	lex := &Lexicon{
		forward:  newMapping(len(english)),
		backward: newMapping(len(russian)),
	}
	for i := range english {
		lex.forward.put(english[i], russian[i])
		lex.backward.put(russian[i], english[i])
	}
	return lex, nil
}

// Forward returns the English-to-Russian mapping
func (l *Lexicon) Forward() *Mapping {
	return l.forward
}

// Backward returns the Russian-to-English mapping
func (l *Lexicon) Backward() *Mapping {
	return l.backward
}

// ReadWordList reads one word per line, trimmed and lower-cased.
// Blank lines are kept so that both lists stay line-aligned.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, strings.ToLower(strings.TrimSpace(scanner.Text())))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// Load reads both word lists through src and builds the lexicon
func Load(ctx context.Context, src Source, englishPath, russianPath string) (*Lexicon, error) {
	english, err := readFrom(ctx, src, englishPath)
	if err != nil {
		return nil, err
	}
	russian, err := readFrom(ctx, src, russianPath)
	if err != nil {
		return nil, err
	}
	return New(english, russian)
}

func readFrom(ctx context.Context, src Source, path string) ([]string, error) {
	rc, err := src.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer rc.Close()

	words, err := ReadWordList(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
