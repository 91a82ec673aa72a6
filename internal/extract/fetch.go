package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// FetchPage retrieves the HTML of a problem page for the CLI path, where no
// browser is driving the extraction.
func FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating page request: %w", err)
	}
	req.Header.Set("User-Agent", "leetnotes/1.0")

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching page: HTTP error %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}
	return string(body), nil
}
