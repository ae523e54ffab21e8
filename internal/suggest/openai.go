package suggest

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
)

// OpenAIProvider asks an OpenAI chat model for translations
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a provider; model defaults to gpt-4o-mini
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Name returns "openai"
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Suggest translates a single word
func (p *OpenAIProvider) Suggest(ctx context.Context, word string, from, to langdetect.Language) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI: %w", ErrNoAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(word, from, to),
			},
		},
		MaxTokens:   20,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptySuggestion
	}

	return cleanSuggestion(resp.Choices[0].Message.Content)
}
