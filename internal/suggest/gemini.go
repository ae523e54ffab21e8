package suggest

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"codeberg.org/snonux/naivetrans/internal/langdetect"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider asks a Google Gemini model for translations
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a provider; the client is created per request
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// Name returns "gemini"
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Suggest translates a single word
func (p *GeminiProvider) Suggest(ctx context.Context, word string, from, to langdetect.Language) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("Gemini: %w", ErrNoAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt(word, from, to)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.3),
		MaxOutputTokens: 20,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return cleanSuggestion(resp.Text())
}
