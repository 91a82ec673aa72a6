// Package notes orchestrates the note-generation pipeline: resolve the
// target document, generate notes for the submission, append them.
package notes

import (
	"context"
	"strings"
	"sync"

	"github.com/Rehneet11/LeetNotes/internal/llm"
)

// Payload is the trigger message carrying one extracted submission.
type Payload struct {
	Code     string `json:"code"`
	Title    string `json:"title"`
	Language string `json:"language"`
	DocID    string `json:"docId"`
}

// Result reports the outcome of one pipeline invocation.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DocumentResolver locates or creates the notes document.
type DocumentResolver interface {
	Resolve(ctx context.Context, preferredID string) (string, error)
}

// Appender writes generated notes to a document.
type Appender interface {
	Append(ctx context.Context, docID, notes string) error
}

// stepNames are the sequential pipeline stages, reported to OnStep.
var stepNames = []string{
	"Resolving notes document",
	"Building prompt",
	"Generating notes",
	"Appending to document",
}

// Pipeline runs the linear generate-and-append sequence. At most one
// invocation runs at a time; overlapping triggers are rejected rather than
// allowed to interleave appends or create duplicate documents.
type Pipeline struct {
	resolver DocumentResolver
	appender Appender
	provider llm.Provider

	// OnStep, when set, receives progress for each stage (1-based).
	OnStep func(step, total int, name string)

	mu sync.Mutex
}

// New creates a pipeline. A nil provider means no API key is configured;
// Run reports that as a failure without any network call.
func New(resolver DocumentResolver, appender Appender, provider llm.Provider) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		appender: appender,
		provider: provider,
	}
}

// Run executes the pipeline for one payload. Every failure short-circuits to
// a failure result carrying the triggering error's message; completed side
// effects (a created document) are not rolled back.
func (p *Pipeline) Run(ctx context.Context, payload Payload) Result {
	if err := validate(payload); err != "" {
		return Result{Error: err}
	}

	if p.provider == nil {
		return Result{Error: "API key is not configured; run `leetnotes auth gemini` or set GEMINI_API_KEY"}
	}

	if !p.mu.TryLock() {
		return Result{Error: "a note generation is already in progress"}
	}
	defer p.mu.Unlock()

	p.step(1)
	docID, err := p.resolver.Resolve(ctx, payload.DocID)
	if err != nil {
		return Result{Error: err.Error()}
	}

	p.step(2)
	prompt := llm.BuildPrompt(payload.Code, payload.Title, payload.Language)

	p.step(3)
	generated, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		return Result{Error: err.Error()}
	}

	p.step(4)
	if err := p.appender.Append(ctx, docID, generated); err != nil {
		return Result{Error: err.Error()}
	}

	return Result{Success: true}
}

func (p *Pipeline) step(n int) {
	if p.OnStep != nil {
		p.OnStep(n, len(stepNames), stepNames[n-1])
	}
}

// validate checks the payload's required fields before any network call.
func validate(payload Payload) string {
	var missing []string
	if strings.TrimSpace(payload.Code) == "" {
		missing = append(missing, "code")
	}
	if strings.TrimSpace(payload.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(payload.Language) == "" {
		missing = append(missing, "language")
	}
	if len(missing) > 0 {
		return "missing required field(s): " + strings.Join(missing, ", ")
	}
	return ""
}
