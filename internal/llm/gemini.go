package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiProvider implements Provider using the Google Gemini API via direct HTTP.
// The API key is sent in the x-goog-api-key header.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey string, model string) *GeminiProvider {
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiAPIBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	Error          *geminiError          `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate submits a single-turn request and extracts the first candidate's
// first text part.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	apiReq := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", fmt.Errorf("marshalling gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", p.baseURL, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading gemini response: %w", err)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshalling gemini response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", geminiStatusError(httpResp.StatusCode, &apiResp)
	}

	if len(apiResp.Candidates) == 0 || apiResp.Candidates[0].Content == nil ||
		len(apiResp.Candidates[0].Content.Parts) == 0 {
		if apiResp.PromptFeedback != nil && apiResp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("generation was blocked by a safety filter (reason: %s)",
				apiResp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("no notes content generated")
	}

	text := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("no notes content generated")
	}
	return text, nil
}

// geminiStatusError maps auth and malformed-request statuses to distinguishable
// messages before the generic fallback.
func geminiStatusError(status int, resp *geminiResponse) error {
	detail := ""
	if resp.Error != nil && resp.Error.Message != "" {
		detail = ": " + resp.Error.Message
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("gemini rejected the API key (HTTP %d), check that the key is valid and has access%s", status, detail)
	case http.StatusBadRequest:
		return fmt.Errorf("gemini rejected the request as malformed (HTTP 400)%s", detail)
	default:
		if detail != "" {
			return fmt.Errorf("gemini API error (HTTP %d)%s", status, detail)
		}
		return fmt.Errorf("HTTP error %d from gemini", status)
	}
}
