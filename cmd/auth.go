package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rehneet11/LeetNotes/internal/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google and LLM provider credentials",
	Long: `Store and manage credentials for Google Drive/Docs access and for
the note-generating LLM provider.

Credentials are stored in ~/.leetnotes/credentials.json and used
as a fallback when environment variables are not set.`,
}

var authGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Connect a Google account via OAuth2",
	Long: `Opens your browser for Google OAuth2 authorization.

This grants leetnotes access to documents it creates in Drive and to
the Docs editing API. You need a Google Cloud OAuth2 Client ID and
Secret, created at https://console.cloud.google.com/apis/credentials`,
	RunE: runAuthGoogle,
}

var authGeminiCmd = &cobra.Command{
	Use:   "gemini",
	Short: "Store Gemini API key",
	Long: `Store your Gemini API key for persistent use.

Get your API key at https://aistudio.google.com/apikey`,
	RunE: runAuthGemini,
}

var authOpenAICmd = &cobra.Command{
	Use:   "openai",
	Short: "Store OpenAI API key",
	Long: `Store your OpenAI API key for persistent use.

Get your API key at https://platform.openai.com/api-keys`,
	RunE: runAuthOpenAI,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which services have stored credentials",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout [service]",
	Short: "Remove stored credentials",
	Long: `Remove stored credentials for a service.

If no service is specified, removes all stored credentials.
Valid services: google, gemini, openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthLogout,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authGoogleCmd)
	authCmd.AddCommand(authGeminiCmd)
	authCmd.AddCommand(authOpenAICmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
}

func runAuthGoogle(cmd *cobra.Command, args []string) error {
	// Get Client ID and Secret from env or prompt.
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	reader := bufio.NewReader(os.Stdin)

	if clientID == "" {
		fmt.Print("Google OAuth2 Client ID: ")
		input, _ := reader.ReadString('\n')
		clientID = strings.TrimSpace(input)
		if clientID == "" {
			return fmt.Errorf("client ID is required")
		}
	}

	if clientSecret == "" {
		fmt.Print("Google OAuth2 Client Secret: ")
		input, _ := reader.ReadString('\n')
		clientSecret = strings.TrimSpace(input)
		if clientSecret == "" {
			return fmt.Errorf("client secret is required")
		}
	}

	token, err := auth.RunGoogleOAuth(clientID, clientSecret)
	if err != nil {
		return fmt.Errorf("OAuth flow failed: %w", err)
	}

	// Store the credentials.
	creds, err := auth.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	creds.Google = &auth.GoogleCredentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenExpiry:  token.Expiry.Format(time.RFC3339),
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	if err := auth.Save(creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	fmt.Println("Google credentials stored successfully!")
	return nil
}

func runAuthGemini(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Gemini API key: ")
	input, _ := reader.ReadString('\n')
	apiKey := strings.TrimSpace(input)
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	// Verify the key with a lightweight API call.
	fmt.Print("Verifying API key... ")
	if err := verifyGeminiKey(apiKey); err != nil {
		fmt.Println("failed!")
		return fmt.Errorf("key verification failed: %w", err)
	}
	fmt.Println("valid!")

	creds, err := auth.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	creds.Gemini = &auth.APIKeyCredentials{APIKey: apiKey}

	if err := auth.Save(creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	fmt.Println("Gemini credentials stored successfully!")
	return nil
}

func runAuthOpenAI(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("OpenAI API key: ")
	input, _ := reader.ReadString('\n')
	apiKey := strings.TrimSpace(input)
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	creds, err := auth.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	creds.OpenAI = &auth.APIKeyCredentials{APIKey: apiKey}

	if err := auth.Save(creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	fmt.Println("OpenAI credentials stored successfully!")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	creds, err := auth.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	path, _ := auth.CredentialPath()
	fmt.Printf("Credentials file: %s\n\n", path)

	fmt.Println("Service      Status")
	fmt.Println("-------      ------")

	// Google
	if creds.Google != nil && creds.Google.RefreshToken != "" {
		fmt.Println("google       connected (OAuth2)")
	} else {
		fmt.Println("google       not connected")
	}

	// Gemini
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		fmt.Println("gemini       configured (env var)")
	} else if creds.Gemini != nil && creds.Gemini.APIKey != "" {
		fmt.Println("gemini       configured (stored)")
	} else {
		fmt.Println("gemini       not configured")
	}

	// OpenAI
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		fmt.Println("openai       configured (env var)")
	} else if creds.OpenAI != nil && creds.OpenAI.APIKey != "" {
		fmt.Println("openai       configured (stored)")
	} else {
		fmt.Println("openai       not configured")
	}

	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	creds, err := auth.Load()
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	if len(args) == 0 {
		// Remove all credentials.
		creds = &auth.Credentials{}
		fmt.Println("All stored credentials removed.")
	} else {
		switch args[0] {
		case "google":
			creds.Google = nil
			fmt.Println("Google credentials removed.")
		case "gemini":
			creds.Gemini = nil
			fmt.Println("Gemini credentials removed.")
		case "openai":
			creds.OpenAI = nil
			fmt.Println("OpenAI credentials removed.")
		default:
			return fmt.Errorf("unknown service %q (valid: google, gemini, openai)", args[0])
		}
	}

	return auth.Save(creds)
}

func verifyGeminiKey(apiKey string) error {
	// List models to check the key is valid.
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet,
		"https://generativelanguage.googleapis.com/v1beta/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("invalid API key (HTTP %d)", resp.StatusCode)
	}
	// Any other status (200, 429, etc.) means the key is valid.
	return nil
}
