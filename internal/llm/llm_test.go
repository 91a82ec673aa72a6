package llm

import (
	"strings"
	"testing"
)

func TestBuildPromptContainsSubmission(t *testing.T) {
	prompt := BuildPrompt("print(1)", "Two Sum", "python")

	if !strings.Contains(prompt, "Problem: Two Sum") {
		t.Error("prompt missing problem title")
	}
	if !strings.Contains(prompt, "Language: python") {
		t.Error("prompt missing language")
	}
	if !strings.Contains(prompt, "```python\nprint(1)\n```") {
		t.Error("prompt missing fenced code block")
	}
}

func TestBuildPromptHasEightSections(t *testing.T) {
	prompt := BuildPrompt("code", "title", "go")

	for _, section := range noteSections {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if len(noteSections) != 8 {
		t.Errorf("expected 8 sections, got %d", len(noteSections))
	}
	if !strings.Contains(prompt, "plain text only") {
		t.Error("prompt missing no-markup instruction")
	}
}

func TestFactoryCreatesGeminiProvider(t *testing.T) {
	p, err := NewProvider("gemini", "key", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("expected name 'gemini', got %q", p.Name())
	}
}

func TestFactoryCreatesOpenAIProvider(t *testing.T) {
	p, err := NewProvider("openai", "key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected name 'openai', got %q", p.Name())
	}
}

func TestFactoryRejectsMissingKey(t *testing.T) {
	if _, err := NewProvider("gemini", "", "gemini-2.0-flash"); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	if _, err := NewProvider("anthropic", "key", "model"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
