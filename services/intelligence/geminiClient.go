// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// CreateCompletion sends the messages as one prompt. A GenerativeModel carries
// its own generation settings, so each call gets a fresh one.
func (g *GeminiClient) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	model := g.client.GenerativeModel(req.Model)
	model.SetMaxOutputTokens(int32(req.MaxTokens))
	model.SetTemperature(req.Temperature)

	parts := make([]genai.Part, 0, len(req.Messages))
	for _, m := range req.Messages {
		parts = append(parts, genai.Text(m.Content))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate error: %w", ErrCompletionFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrCompletionFailed)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
