package ai

import (
	"context"
)

// Request describes one call to the text-completion service.
type Request struct {
	// System carries the role instructions for the model.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Temperature controls sampling; 0 gives deterministic output.
	Temperature float32

	// MaxTokens caps the model output. 0 means provider default.
	MaxTokens int32
}

// Result is the raw completion plus the token usage reported by the service.
type Result struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Provider is the contract for the opaque text-completion service.
// Implementations must return the response text verbatim; callers handle
// any markdown fencing around structured payloads.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Result, error)

	// Model reports the model identifier, used for usage tagging.
	Model() string
}
