// Package session runs the interactive translation loop on a terminal or any
// other line-oriented reader/writer pair.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"codeberg.org/snonux/naivetrans/internal/history"
	"codeberg.org/snonux/naivetrans/internal/translation"
)

// Prompt is printed before every input line
const Prompt = "Please enter a text to translate, or type 'exit' to exit"

const historyLimit = 10

// Store is the part of the history store the session needs
type Store interface {
	Add(ctx context.Context, e history.Entry) (history.Entry, error)
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Session reads texts, translates them and prints a report for each
type Session struct {
	translator *translation.Translator
	in         io.Reader
	out        io.Writer
	logger     *log.Logger
	store      Store
}

// New creates a session. store may be nil to disable history.
func New(translator *translation.Translator, in io.Reader, out io.Writer, logger *log.Logger, store Store) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		translator: translator,
		in:         in,
		out:        out,
		logger:     logger,
		store:      store,
	}
}

// Run loops until a quit command, end of input or context cancellation.
// Cancellation is noticed while waiting for input, too.
func (s *Session) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.in, done)

	for {
		fmt.Fprintln(s.out, Prompt)

		var l line
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok = <-lines:
		}
		if !ok {
			return nil
		}
		if l.err != nil {
			return fmt.Errorf("failed to read input: %w", l.err)
		}

		cmd := ParseCommand(l.text)
		switch cmd.Kind {
		case Quit:
			return nil
		case Empty:
			continue
		case Help:
			s.printHelp()
		case History:
			s.printHistory(ctx)
		case Translate:
			s.translate(ctx, cmd.Text)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

type line struct {
	text string
	err  error
}

// readLines sends every input line, of any length, until end of input.
// The channel is closed at end of input; a read error is sent last.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" {
				select {
				case lines <- line{text: text}:
				case <-done:
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case lines <- line{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return lines
}

func (s *Session) translate(ctx context.Context, text string) {
	outcome := s.translator.Translate(text)
	WriteReport(s.out, outcome)

	if s.store == nil {
		return
	}
	_, err := s.store.Add(ctx, history.Entry{
		Language: outcome.Language.String(),
		Input:    text,
		Output:   outcome.Text,
	})
	if err != nil {
		s.logger.Warn("failed to record translation", "err", err)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  exit, :q, :quit  leave the session")
	fmt.Fprintln(s.out, "  :history         show recent translations")
	fmt.Fprintln(s.out, "  :help            show this help")
	fmt.Fprintln(s.out, "Anything else is translated.")
	fmt.Fprintln(s.out)
}

func (s *Session) printHistory(ctx context.Context) {
	if s.store == nil {
		fmt.Fprintln(s.out, "History is disabled (use --history to enable it)")
		fmt.Fprintln(s.out)
		return
	}

	entries, err := s.store.Recent(ctx, historyLimit)
	if err != nil {
		s.logger.Warn("failed to read history", "err", err)
		return
	}
	WriteHistory(s.out, entries)
}

// WriteReport prints the language, the extracted words, the per-word trace
// and the final translation of outcome
func WriteReport(w io.Writer, outcome translation.Outcome) {
	fmt.Fprintf(w, "\n%s language detected.\n\n", outcome.Language)
	fmt.Fprintf(w, "\nExtracted the following words:\n%s\n", FormatTokens(outcome.Tokens))
	fmt.Fprintf(w, "\nCommencing a word-by-word translation.\n\n")
	for _, r := range outcome.Results {
		fmt.Fprintf(w, "%s --> %s --> %s\n", r.Original, r.Similar, r.Translated)
	}
	fmt.Fprintf(w, "\nTranslation:\n%s\n\n", outcome.Text)
}

// WriteHistory prints entries, newest first
func WriteHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No translations recorded yet")
		fmt.Fprintln(w)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-14s %-8s %s --> %s\n", humanize.Time(e.CreatedAt), e.Language, e.Input, strings.TrimSpace(e.Output))
	}
	fmt.Fprintln(w)
}

// FormatTokens renders tokens as a bracketed, quoted list: ['hello', 'world']
func FormatTokens(tokens []string) string {
	if len(tokens) == 0 {
		return "[]"
	}
	return "['" + strings.Join(tokens, "', '") + "']"
}
