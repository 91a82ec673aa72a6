package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GoogleCredentials stores OAuth2 tokens for Google API access.
type GoogleCredentials struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenExpiry  string `json:"token_expiry,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// APIKeyCredentials stores an API key for a provider.
type APIKeyCredentials struct {
	APIKey string `json:"api_key,omitempty"`
}

// Credentials holds stored credentials for all services.
type Credentials struct {
	Google *GoogleCredentials `json:"google,omitempty"`
	Gemini *APIKeyCredentials `json:"gemini,omitempty"`
	OpenAI *APIKeyCredentials `json:"openai,omitempty"`
}

// CredentialPath returns the path to the credentials file (~/.leetnotes/credentials.json).
func CredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".leetnotes", "credentials.json"), nil
}

// Load reads credentials from ~/.leetnotes/credentials.json.
// Returns empty credentials if the file doesn't exist.
func Load() (*Credentials, error) {
	path, err := CredentialPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return &creds, nil
}

// Save writes credentials to ~/.leetnotes/credentials.json with restricted permissions.
func Save(creds *Credentials) error {
	path, err := CredentialPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling credentials: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// GetAPIKey returns the API key for the given provider.
// It checks the environment variable first, then falls back to stored credentials.
func GetAPIKey(provider string) string {
	// Priority 1: Environment variable.
	switch provider {
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
	}

	// Priority 2: Stored credentials.
	creds, err := Load()
	if err != nil {
		return ""
	}

	switch provider {
	case "gemini":
		if creds.Gemini != nil {
			return creds.Gemini.APIKey
		}
	case "openai":
		if creds.OpenAI != nil {
			return creds.OpenAI.APIKey
		}
	}

	return ""
}

// HasGoogleOAuth returns true if Google OAuth credentials are stored.
func HasGoogleOAuth() bool {
	creds, err := Load()
	if err != nil {
		return false
	}
	return creds.Google != nil && creds.Google.RefreshToken != ""
}
