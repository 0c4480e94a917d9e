package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is a request/response text-completion backend. The pipeline sends
// a prompt and gets raw text back; everything else is the caller's problem.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config selects and configures a completion backend.
type Config struct {
	Provider string // "openai" or "gemini"
	BaseURL  string // OpenAI-compatible endpoint; covers local Ollama /v1
	APIKey   string
	Model    string
}

// NewClient builds the configured backend.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
