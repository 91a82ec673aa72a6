package config

// defaultModels maps each provider to its default model.
var defaultModels = map[ProviderType]string{
	ProviderGemini: "gemini-2.0-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    defaultModels[ProviderGemini],
		DocTitle: "LeetNotes",
		Port:     8787,
	}
}

// DefaultModel returns the default model for the given provider, falling
// back to the Gemini default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGemini]
}
