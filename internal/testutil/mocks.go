package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
)

// MockProvider is a suggestion provider returning canned answers
type MockProvider struct {
	Answers map[string]string
	Errors  map[string]error
	Calls   []string
}

// NewMockProvider creates a provider answering from answers
func NewMockProvider(answers map[string]string) *MockProvider {
	return &MockProvider{
		Answers: answers,
		Errors:  make(map[string]error),
	}
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// Suggest returns the canned answer for word
func (m *MockProvider) Suggest(_ context.Context, word string, from, to langdetect.Language) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s %s->%s", word, from, to))

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if answer, ok := m.Answers[word]; ok {
		return answer, nil
	}
	return "", fmt.Errorf("no answer for %q", word)
}
