package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/naivetrans/internal/history"
	"codeberg.org/snonux/naivetrans/internal/lexicon"
	"codeberg.org/snonux/naivetrans/internal/translation"
)

type fakeStore struct {
	entries []history.Entry
	addErr  error
}

func (f *fakeStore) Add(_ context.Context, e history.Entry) (history.Entry, error) {
	if f.addErr != nil {
		return history.Entry{}, f.addErr
	}
	e.CreatedAt = time.Now()
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeStore) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	var out []history.Entry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

func newTestTranslator(t *testing.T) *translation.Translator {
	t.Helper()

	lex, err := lexicon.New([]string{"hello", "world"}, []string{"привет", "мир"})
	if err != nil {
		t.Fatal(err)
	}
	return translation.NewTranslator(lex)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"exit", Command{Kind: Quit}},
		{"  EXIT \n", Command{Kind: Quit}},
		{"quit", Command{Kind: Translate, Text: "quit"}},
		{":q", Command{Kind: Quit}},
		{":quit", Command{Kind: Quit}},
		{":help", Command{Kind: Help}},
		{":history", Command{Kind: History}},
		{"", Command{Kind: Empty}},
		{"   ", Command{Kind: Empty}},
		{"  Hello World ", Command{Kind: Translate, Text: "hello world"}},
		{"exit now", Command{Kind: Translate, Text: "exit now"}},
		{"Привет", Command{Kind: Translate, Text: "привет"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ParseCommand(tt.line); got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRun_TranslatesUntilExit(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Hello World\nexit\nhello\n")
	s := New(newTestTranslator(t), in, &out, nil, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"English language detected.",
		"Extracted the following words:\n['hello', 'world']",
		"hello -->  --> привет\n",
		"world -->  --> мир\n",
		"Translation:\nпривет мир \n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}

	// the line after exit is never translated
	if n := strings.Count(got, "Translation:"); n != 1 {
		t.Errorf("Expected 1 translation, got %d", n)
	}
	if n := strings.Count(got, Prompt); n != 2 {
		t.Errorf("Expected 2 prompts, got %d", n)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := New(newTestTranslator(t), strings.NewReader("мир"), &out, nil, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Russian language detected.") {
		t.Errorf("Expected Russian detection:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Translation:\nworld \n") {
		t.Errorf("Expected translation:\n%s", out.String())
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := New(newTestTranslator(t), strings.NewReader("hello\n"), &out, nil, nil)

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRun_QuitIsTranslated(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("quit\nhello\nexit\n")
	s := New(newTestTranslator(t), in, &out, nil, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n := strings.Count(out.String(), "Translation:"); n != 2 {
		t.Errorf("Expected 2 translations, got %d:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "Translation:\nпривет \n") {
		t.Errorf("Expected 'hello' to be translated after 'quit':\n%s", out.String())
	}
}

func TestRun_LongLine(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("hello ", 20000)
	in := strings.NewReader(long + "\nworld\nexit\n")
	s := New(newTestTranslator(t), in, &out, nil, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed on a line longer than 64 KiB: %v", err)
	}
	if !strings.Contains(out.String(), strings.Repeat("привет ", 20000)) {
		t.Error("Expected the long line to be translated")
	}
	if !strings.Contains(out.String(), "Translation:\nмир \n") {
		t.Error("Expected the line after the long one to be translated")
	}
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	s := New(newTestTranslator(t), pr, &out, nil, nil)

	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation while blocked on input")
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	store := &fakeStore{}
	var out bytes.Buffer
	in := strings.NewReader("hello\nмир\n:history\n:q\n")
	s := New(newTestTranslator(t), in, &out, nil, store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(store.entries) != 2 {
		t.Fatalf("Expected 2 recorded entries, got %d", len(store.entries))
	}
	first := store.entries[0]
	if first.Language != "English" || first.Input != "hello" || first.Output != "привет " {
		t.Errorf("Unexpected entry: %+v", first)
	}
	if !strings.Contains(out.String(), "мир --> world") {
		t.Errorf("Expected history listing:\n%s", out.String())
	}
}

func TestRun_HistoryFailureIsLogged(t *testing.T) {
	var logs, out bytes.Buffer
	store := &fakeStore{addErr: errors.New("disk full")}
	s := New(newTestTranslator(t), strings.NewReader("hello\nworld\n"), &out, log.New(&logs), store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n := strings.Count(out.String(), "Translation:"); n != 2 {
		t.Errorf("Session should continue after a history failure, got %d translations", n)
	}
	if !strings.Contains(logs.String(), "disk full") {
		t.Errorf("Expected logged error, got %q", logs.String())
	}
}

func TestRun_HistoryDisabled(t *testing.T) {
	var out bytes.Buffer
	s := New(newTestTranslator(t), strings.NewReader(":history\n"), &out, nil, nil)

	s.Run(context.Background())
	if !strings.Contains(out.String(), "History is disabled") {
		t.Errorf("Expected disabled notice:\n%s", out.String())
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	s := New(newTestTranslator(t), strings.NewReader(":help\n"), &out, nil, nil)

	s.Run(context.Background())
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("Expected help:\n%s", out.String())
	}
}

func TestFormatTokens(t *testing.T) {
	if got := FormatTokens(nil); got != "[]" {
		t.Errorf("FormatTokens(nil) = %q", got)
	}
	if got := FormatTokens([]string{"i", "know"}); got != "['i', 'know']" {
		t.Errorf("FormatTokens = %q", got)
	}
}

func TestWriteHistory_Empty(t *testing.T) {
	var out bytes.Buffer
	WriteHistory(&out, nil)
	if !strings.Contains(out.String(), "No translations recorded yet") {
		t.Errorf("Unexpected output %q", out.String())
	}
}
