// Package llm generates revision notes from solved problem submissions.
package llm

import "context"

// Provider defines the interface for note-generating LLM backends.
type Provider interface {
	// Generate submits a single-turn prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name returns the name of this provider.
	Name() string
}
