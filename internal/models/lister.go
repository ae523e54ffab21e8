package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ChatModels filters model IDs down to chat models, sorted
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "realtime") || strings.Contains(id, "transcribe") {
			continue
		}
		if strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "o1") ||
			strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") {
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)
	return chat
}

// ListChatModels prints the chat models usable with --suggest-model
func (l *Lister) ListChatModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .naivetrans.yaml")
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, model := range list.Models {
		ids = append(ids, model.ID)
	}

	chat := ChatModels(ids)
	fmt.Fprintln(w, "Chat models for translation suggestions:")
	if len(chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, id := range chat {
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}
