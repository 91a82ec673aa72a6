package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .leetnotes.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to leetnotes! Let's configure your notes setup.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"gemini", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: DefaultModel(provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Notes document title.
	titlePrompt := promptui.Prompt{
		Label:   "Notes document title",
		Default: "LeetNotes",
	}
	docTitle, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("document title: %w", err)
	}

	// 4. Optional fixed document id.
	docIDPrompt := promptui.Prompt{
		Label:   "Google Doc id (leave blank to find or create by title)",
		Default: "",
	}
	docID, err := docIDPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("document id: %w", err)
	}

	// 5. Trigger server port.
	portPrompt := promptui.Prompt{
		Label:   "Trigger server port",
		Default: "8787",
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := &Config{
		Provider: provider,
		Model:    model,
		DocID:    docID,
		DocTitle: docTitle,
		Port:     port,
	}

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: set %s or run `leetnotes auth %s` before generating notes.\n", envVar, provider)
	}

	configPath := ".leetnotes.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
