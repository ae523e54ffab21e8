package suggest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
)

// Suggester wraps a Provider with a request timeout and a circuit breaker,
// so a failing remote stops being called after a few consecutive errors
type Suggester struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	logger   *log.Logger
}

// NewSuggester creates a suggester around provider
func NewSuggester(provider Provider, timeout time.Duration, logger *log.Logger) *Suggester {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("suggestion provider state changed", "provider", name, "from", from.String(), "to", to.String())
		},
	}
	return &Suggester{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		timeout:  timeout,
		logger:   logger,
	}
}

// Suggestion is a proposed lexicon pair
type Suggestion struct {
	Word        string
	Translation string
	From        langdetect.Language
	To          langdetect.Language
}

// English returns the English half of the pair
func (s Suggestion) English() string {
	if s.From == langdetect.English {
		return s.Word
	}
	return s.Translation
}

// Russian returns the Russian half of the pair
func (s Suggestion) Russian() string {
	if s.From == langdetect.Russian {
		return s.Word
	}
	return s.Translation
}

// Suggest detects the language of word and asks the provider for its translation
func (s *Suggester) Suggest(ctx context.Context, word string) (Suggestion, error) {
	from := langdetect.Detect(word)
	to := Other(from)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Debug("requesting suggestion", "provider", s.provider.Name(), "word", word, "from", from, "to", to)
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.provider.Suggest(ctx, word, from, to)
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("%s suggestion for '%s' failed: %w", s.provider.Name(), word, err)
	}

	return Suggestion{
		Word:        word,
		Translation: result.(string),
		From:        from,
		To:          to,
	}, nil
}
