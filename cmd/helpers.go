package cmd

import (
	"fmt"

	"github.com/Rehneet11/LeetNotes/internal/apiclient"
	"github.com/Rehneet11/LeetNotes/internal/auth"
	"github.com/Rehneet11/LeetNotes/internal/config"
	"github.com/Rehneet11/LeetNotes/internal/drive"
	"github.com/Rehneet11/LeetNotes/internal/gdocs"
	"github.com/Rehneet11/LeetNotes/internal/llm"
	"github.com/Rehneet11/LeetNotes/internal/notes"
)

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildProvider creates the note-generating provider from stored or env
// credentials. Returns nil (not an error) when no API key is configured,
// so the pipeline can report the missing key itself.
func buildProvider(cfg *config.Config) (llm.Provider, error) {
	apiKey := auth.GetAPIKey(string(cfg.Provider))
	if apiKey == "" {
		return nil, nil
	}
	return llm.NewProvider(string(cfg.Provider), apiKey, cfg.Model)
}

// buildPipeline wires the Google API clients and the provider into a pipeline.
func buildPipeline(cfg *config.Config) (*notes.Pipeline, error) {
	creds, err := auth.Load()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	if creds.Google == nil || creds.Google.RefreshToken == "" {
		return nil, fmt.Errorf("Google account is not connected; run `leetnotes auth google` first")
	}

	source := auth.NewGoogleTokenSource(creds.Google)
	driveClient := apiclient.New(drive.BaseURL, &apiclient.TokenAuth{Source: source, ServiceName: "Google Drive"})
	docsClient := apiclient.New(gdocs.BaseURL, &apiclient.TokenAuth{Source: source, ServiceName: "Google Docs"})

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}

	resolver := drive.NewResolver(driveClient, cfg.DocTitle)
	appender := gdocs.NewAppender(docsClient)
	return notes.New(resolver, appender, provider), nil
}
