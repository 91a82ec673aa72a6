package llm

import "fmt"

// NewProvider creates a note-generating provider for the given provider type.
// Supported provider types: "gemini", "openai".
func NewProvider(providerType, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key for provider %q is not configured", providerType)
	}

	switch providerType {
	case "gemini":
		return NewGeminiProvider(apiKey, model), nil
	case "openai":
		return NewOpenAIProvider(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
