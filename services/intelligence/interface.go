// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"
)

var (
	// ErrCompletionFailed wraps every provider, network or decoding failure.
	ErrCompletionFailed = errors.New("completion failed")
	// ErrUnknownProvider is returned by NewCompletionClient for an unsupported provider.
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a single chat-completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// CompletionClient wraps an LLM provider's chat-completion endpoint.
// Implementations must be safe for concurrent use.
type CompletionClient interface {
	CreateCompletion(ctx context.Context, req CompletionRequest) (string, error)
}

// UserPrompt builds the single user-role message the analysis sends.
func UserPrompt(prompt string) []Message {
	return []Message{{Role: "user", Content: prompt}}
}
