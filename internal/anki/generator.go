// Package anki exports the lexicon as a CSV file that Anki can import as
// basic front/back cards.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/naivetrans/internal"
	"codeberg.org/snonux/naivetrans/internal/lexicon"
)

// Card is a single Anki flashcard
type Card struct {
	Front string
	Back  string
	Tags  []string
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	SkipEmpty      bool   // Skip pairs where either side is empty
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
		SkipEmpty:      true,
	}
}

// OutputPathForDeck derives a CSV file name from a deck name
func OutputPathForDeck(dir, deckName string) string {
	return filepath.Join(dir, internal.SanitizeFilename(strings.ToLower(deckName))+".csv")
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	if g.options.SkipEmpty && (card.Front == "" || card.Back == "") {
		return
	}
	g.cards = append(g.cards, card)
}

// AddMapping adds one card per mapping key, in key order
func (g *Generator) AddMapping(m *lexicon.Mapping, tags ...string) {
	for _, key := range m.Keys() {
		value, _ := m.Lookup(key)
		g.AddCard(Card{Front: key, Back: value, Tags: tags})
	}
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write([]string{"Front", "Back", "Tags"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{card.Front, card.Back, strings.Join(card.Tags, " ")}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
