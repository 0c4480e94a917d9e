package llmfx

import (
	"go.uber.org/fx"

	"placefinder/internal/clients/llm"
	"placefinder/pkg/config"
)

var Module = fx.Provide(provideLLMClient)

func provideLLMClient(cfg *config.Config) (llm.Client, error) {
	return llm.NewClient(llm.Config{
		Provider: cfg.LLMProvider,
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
	})
}
