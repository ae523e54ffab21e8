package translation

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
	"codeberg.org/snonux/naivetrans/internal/lexicon"
	"codeberg.org/snonux/naivetrans/internal/similarity"
	"codeberg.org/snonux/naivetrans/internal/tokenizer"
)

// Result is the translation of a single word.
// Similar holds the dictionary key used when the word itself was not found.
type Result struct {
	Original   string
	Similar    string
	Translated string
}

// Outcome is the translation of a whole text
type Outcome struct {
	Language langdetect.Language
	Tokens   []string
	Results  []Result
	Text     string
}

// Tracer receives every word result as it is produced
type Tracer func(Result)

// Option configures a Translator
type Option func(*Translator)

// WithLogger sets the logger for diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithTracer sets a callback for per-word results
func WithTracer(tracer Tracer) Option {
	return func(t *Translator) {
		t.tracer = tracer
	}
}

// WithCache sets the fuzzy match cache. A nil cache disables caching.
func WithCache(cache *MatchCache) Option {
	return func(t *Translator) {
		t.cache = cache
	}
}

// Translator translates English to Russian and back, word by word
type Translator struct {
	lexicon *lexicon.Lexicon
	logger  *log.Logger
	tracer  Tracer
	cache   *MatchCache
}

// NewTranslator creates a translator over lex
func NewTranslator(lex *lexicon.Lexicon, opts ...Option) *Translator {
	t := &Translator{
		lexicon: lex,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MappingFor returns the mapping whose keys are in lang
func (t *Translator) MappingFor(lang langdetect.Language) *lexicon.Mapping {
	if lang == langdetect.Russian {
		return t.lexicon.Backward()
	}
	return t.lexicon.Forward()
}

// TranslateWord looks word up in m, falling back to the most similar key.
// Without any similar key the word is returned unchanged.
func (t *Translator) TranslateWord(word string, m *lexicon.Mapping) Result {
	if translated, ok := m.Lookup(word); ok {
		return Result{Original: word, Translated: translated}
	}

	similar, ok := t.bestMatch(word, m)
	if !ok {
		return Result{Original: word, Translated: word}
	}

	translated, _ := m.Lookup(similar)
	return Result{Original: word, Similar: similar, Translated: translated}
}

func (t *Translator) bestMatch(word string, m *lexicon.Mapping) (string, bool) {
	if t.cache != nil {
		if match, found, cached := t.cache.Get(m, word); cached {
			return match, found
		}
	}

	match, found := similarity.BestMatch(m.Keys(), word)
	if t.cache != nil {
		t.cache.Add(m, word, match, found)
	}
	return match, found
}

// TranslateText tokenizes text and translates each token with m. Each
// translated word is followed by a single space, including the last one.
func (t *Translator) TranslateText(text string, m *lexicon.Mapping) (string, []string, []Result) {
	tokens, err := tokenizer.Tokenize(text)
	if err != nil {
		t.logger.Warn("failed to extract words, translating nothing", "err", err)
		tokens = nil
	}

	var b strings.Builder
	results := make([]Result, 0, len(tokens))
	for _, token := range tokens {
		r := t.TranslateWord(token, m)
		t.logger.Debug("translated word", "original", r.Original, "similar", r.Similar, "translated", r.Translated)
		if t.tracer != nil {
			t.tracer(r)
		}
		results = append(results, r)

		b.WriteString(r.Translated)
		b.WriteByte(' ')
	}
	return b.String(), tokens, results
}

// Translate detects the language of text and translates it into the other one
func (t *Translator) Translate(text string) Outcome {
	lang := langdetect.Detect(text)
	translated, tokens, results := t.TranslateText(text, t.MappingFor(lang))
	return Outcome{
		Language: lang,
		Tokens:   tokens,
		Results:  results,
		Text:     translated,
	}
}
