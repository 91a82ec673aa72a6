// Package apiclient provides a single authenticated JSON client shared by
// all Google REST surfaces (Drive listing, Docs editing). Authentication is
// pluggable so the same client works with OAuth bearer tokens and static
// header keys.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Authenticator attaches credentials to an outbound request.
type Authenticator interface {
	// Apply sets the authentication header(s) on the request.
	Apply(req *http.Request) error
	// Service names the service the credentials belong to, for error messages.
	Service() string
}

// TokenAuth authenticates with an OAuth2 bearer token.
type TokenAuth struct {
	Source      oauth2.TokenSource
	ServiceName string
}

func (a *TokenAuth) Apply(req *http.Request) error {
	tok, err := a.Source.Token()
	if err != nil {
		return &AuthError{Service: a.ServiceName, Err: err}
	}
	if tok.AccessToken == "" {
		return &AuthError{Service: a.ServiceName}
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	return nil
}

func (a *TokenAuth) Service() string { return a.ServiceName }

// KeyAuth authenticates with a static API key in a request header.
type KeyAuth struct {
	Header      string
	Key         string
	ServiceName string
}

func (a *KeyAuth) Apply(req *http.Request) error {
	if a.Key == "" {
		return &AuthError{Service: a.ServiceName}
	}
	req.Header.Set(a.Header, a.Key)
	return nil
}

func (a *KeyAuth) Service() string { return a.ServiceName }

// Client issues authenticated JSON requests against a single base URL.
// A request is attempted exactly once; there is no retry or backoff.
type Client struct {
	baseURL    string
	authn      Authenticator
	httpClient *http.Client
}

// New creates a client for the given base URL and authentication strategy.
func New(baseURL string, authn Authenticator) *Client {
	return &Client{
		baseURL:    baseURL,
		authn:      authn,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Do issues a request for the given relative path. A non-nil body is sent as
// JSON; a non-nil out receives the decoded JSON response. Non-2xx statuses
// are returned as *APIError carrying the status code and the server's error
// message when one is present.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.authn.Apply(req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.authn.Service(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshalling response: %w", err)
		}
	}
	return nil
}
