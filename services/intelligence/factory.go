// File: services/intelligence/factory.go
package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"zodiac/config"
)

// NewCompletionClient builds the client for cfg.LLMProvider. The returned
// closer releases provider resources and is never nil.
func NewCompletionClient(ctx context.Context, cfg config.Config) (CompletionClient, io.Closer, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		client := NewOpenAIClient(&http.Client{Timeout: cfg.LLMTimeout}, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		return client, io.NopCloser(nil), nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, nil, err
		}
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.LLMProvider)
	}
}
