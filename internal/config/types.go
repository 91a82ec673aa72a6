package config

// ProviderType identifies a note-generating LLM provider.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level leetnotes configuration, corresponding to .leetnotes.yml.
// API keys are not stored here; they live in the credential store or env vars.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	DocID    string       `yaml:"doc_id" koanf:"doc_id"`
	DocTitle string       `yaml:"doc_title" koanf:"doc_title"`
	Port     int          `yaml:"port" koanf:"port"`
}
