package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"codeberg.org/snonux/naivetrans/internal/anki"
	"codeberg.org/snonux/naivetrans/internal/archive"
	"codeberg.org/snonux/naivetrans/internal/batch"
	"codeberg.org/snonux/naivetrans/internal/cli"
	"codeberg.org/snonux/naivetrans/internal/history"
	"codeberg.org/snonux/naivetrans/internal/langdetect"
	"codeberg.org/snonux/naivetrans/internal/lexicon"
	"codeberg.org/snonux/naivetrans/internal/models"
	"codeberg.org/snonux/naivetrans/internal/session"
	"codeberg.org/snonux/naivetrans/internal/suggest"
	"codeberg.org/snonux/naivetrans/internal/translation"
)

// Processor handles the main translation logic
type Processor struct {
	flags  *cli.Flags
	logger *log.Logger
	source lexicon.Source
	in     io.Reader
	out    io.Writer

	lexicon    *lexicon.Lexicon
	translator *translation.Translator
}

// NewProcessor creates a new processor reading stdin and writing stdout
func NewProcessor(flags *cli.Flags, logger *log.Logger) *Processor {
	return &Processor{
		flags:  flags,
		logger: logger,
		source: &lexicon.MultiSource{Region: flags.S3Region},
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetIO replaces the input and output streams
func (p *Processor) SetIO(in io.Reader, out io.Writer) {
	p.in = in
	p.out = out
}

// SetSource replaces the word list source
func (p *Processor) SetSource(src lexicon.Source) {
	p.source = src
}

// LoadLexicon reads both word lists and builds the translator.
// It is called once; later calls reuse the loaded lexicon.
func (p *Processor) LoadLexicon(ctx context.Context) error {
	if p.translator != nil {
		return nil
	}

	lex, err := lexicon.Load(ctx, p.source, p.flags.EnglishPath, p.flags.RussianPath)
	if err != nil {
		return err
	}
	p.logger.Info("loaded lexicon",
		"english", p.flags.EnglishPath,
		"russian", p.flags.RussianPath,
		"entries", humanize.Comma(int64(lex.Forward().Len())))

	opts := []translation.Option{translation.WithLogger(p.logger)}
	if p.flags.CacheSize > 0 {
		cache, err := translation.NewMatchCache(p.flags.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to create match cache: %w", err)
		}
		opts = append(opts, translation.WithCache(cache))
	}

	p.lexicon = lex
	p.translator = translation.NewTranslator(lex, opts...)
	return nil
}

// openHistory opens the history store when it is enabled
func (p *Processor) openHistory() (*history.Store, error) {
	if !p.flags.History {
		return nil, nil
	}
	store, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("recording history", "database", p.flags.HistoryDB)
	return store, nil
}

// RunInteractive starts the interactive session
func (p *Processor) RunInteractive(ctx context.Context) error {
	if err := p.LoadLexicon(ctx); err != nil {
		return err
	}

	store, err := p.openHistory()
	if err != nil {
		return err
	}

	var sessionStore session.Store
	if store != nil {
		defer store.Close()
		sessionStore = store
	}

	return session.New(p.translator, p.in, p.out, p.logger, sessionStore).Run(ctx)
}

// ProcessText translates a single text and prints the report
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	if err := p.LoadLexicon(ctx); err != nil {
		return err
	}

	store, err := p.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	p.translate(ctx, store, normalize(text))
	return nil
}

// ProcessBatch translates every text of the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if err := p.LoadLexicon(ctx); err != nil {
		return err
	}

	store, err := p.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	words, fuzzy := 0, 0
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "\nTranslating %d/%d (line %d)\n", i+1, len(entries), entry.Line)

		outcome := p.translate(ctx, store, normalize(entry.Text))
		words += len(outcome.Results)
		for _, r := range outcome.Results {
			if r.Similar != "" {
				fuzzy++
			}
		}
	}

	fmt.Fprintf(p.out, "\n=== Batch Translation Summary ===\n")
	fmt.Fprintf(p.out, "Texts: %s\n", humanize.Comma(int64(len(entries))))
	fmt.Fprintf(p.out, "Words: %s\n", humanize.Comma(int64(words)))
	fmt.Fprintf(p.out, "Approximate matches: %s\n", humanize.Comma(int64(fuzzy)))
	fmt.Fprintf(p.out, "=================================\n")
	return nil
}

// normalize lower-cases and trims input text the way the interactive session does
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func (p *Processor) translate(ctx context.Context, store *history.Store, text string) translation.Outcome {
	outcome := p.translator.Translate(text)
	session.WriteReport(p.out, outcome)

	if store != nil {
		_, err := store.Add(ctx, history.Entry{
			Language: outcome.Language.String(),
			Input:    text,
			Output:   outcome.Text,
		})
		if err != nil {
			p.logger.Warn("failed to record translation", "err", err)
		}
	}
	return outcome
}

// ShowHistory prints the most recent translations
func (p *Processor) ShowHistory(ctx context.Context, limit int) error {
	store, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Showing %d of %s translations\n\n", len(entries), humanize.Comma(int64(total)))
	session.WriteHistory(p.out, entries)
	return nil
}

// ArchiveHistory moves the history database into the archive directory
func (p *Processor) ArchiveHistory() error {
	archived, err := archive.ArchiveHistory(p.flags.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to archive history: %w", err)
	}
	fmt.Fprintf(p.out, "History archived to: %s\n", archived)
	return nil
}

// ExportAnki writes the lexicon as an Anki CSV file and returns its path
func (p *Processor) ExportAnki(ctx context.Context) (string, error) {
	if err := p.LoadLexicon(ctx); err != nil {
		return "", err
	}

	outputPath := p.flags.ExportAnki
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = anki.OutputPathForDeck(outputPath, p.flags.DeckName)
	}

	options := anki.DefaultGeneratorOptions()
	options.OutputPath = outputPath
	gen := anki.NewGenerator(options)

	gen.AddMapping(p.lexicon.Forward(), tag(p.flags.DeckName), "en-ru")
	if p.flags.Reverse {
		gen.AddMapping(p.lexicon.Backward(), tag(p.flags.DeckName), "ru-en")
	}

	if err := gen.GenerateCSV(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "Exported %s cards\n", humanize.Comma(int64(len(gen.Cards()))))
	return outputPath, nil
}

// tag turns a deck name into a single Anki tag
func tag(deckName string) string {
	return strings.ReplaceAll(strings.TrimSpace(deckName), " ", "_")
}

// newSuggester builds the suggester for the configured provider
func (p *Processor) newSuggester() (*suggest.Suggester, error) {
	var provider suggest.Provider
	switch p.flags.SuggestProvider {
	case "openai":
		provider = suggest.NewOpenAIProvider(cli.GetOpenAIKey(), p.flags.SuggestModel)
	case "gemini":
		provider = suggest.NewGeminiProvider(cli.GetGeminiKey(), p.flags.SuggestModel)
	default:
		return nil, fmt.Errorf("unknown suggestion provider: %s (use openai or gemini)", p.flags.SuggestProvider)
	}
	return suggest.NewSuggester(provider, p.flags.SuggestTimeout, p.logger), nil
}

// SuggestWord asks the configured provider for a translation of word and
// optionally appends the pair to the word lists
func (p *Processor) SuggestWord(ctx context.Context, word string) error {
	word = normalize(word)
	if word == "" {
		return fmt.Errorf("nothing to suggest: empty word")
	}

	if err := p.LoadLexicon(ctx); err != nil {
		return err
	}

	s, err := p.newSuggester()
	if err != nil {
		return err
	}
	return p.suggestWith(ctx, s, word)
}

func (p *Processor) suggestWith(ctx context.Context, s *suggest.Suggester, word string) error {
	m := p.translator.MappingFor(langdetect.Detect(word))
	if known, ok := m.Lookup(word); ok {
		fmt.Fprintf(p.out, "'%s' is already in the lexicon: %s\n", word, known)
		return nil
	}
	if current := p.translator.TranslateWord(word, m); current.Similar != "" {
		fmt.Fprintf(p.out, "Currently translated via '%s' as: %s\n", current.Similar, current.Translated)
	}

	suggestion, err := s.Suggest(ctx, word)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Suggestion (%s): %s = %s\n", suggestion.To, suggestion.Word, suggestion.Translation)

	if !p.flags.Append {
		return nil
	}
	if err := suggest.AppendPair(p.flags.EnglishPath, p.flags.RussianPath, suggestion); err != nil {
		return fmt.Errorf("failed to extend word lists: %w", err)
	}
	fmt.Fprintf(p.out, "Appended '%s = %s' to the word lists\n", suggestion.English(), suggestion.Russian())
	return nil
}

// ListModels prints the OpenAI chat models usable for suggestions
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(cli.GetOpenAIKey()).ListChatModels(ctx, p.out)
}
