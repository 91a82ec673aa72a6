// Package drive locates or creates the notes document in Google Drive.
package drive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Rehneet11/LeetNotes/internal/apiclient"
)

// BaseURL is the Drive v3 REST endpoint.
const BaseURL = "https://www.googleapis.com/drive/v3"

const docMimeType = "application/vnd.google-apps.document"

// Resolver finds or creates the notes document.
type Resolver struct {
	client  *apiclient.Client
	docName string
}

// NewResolver creates a resolver that looks for a document with the given name.
func NewResolver(client *apiclient.Client, docName string) *Resolver {
	return &Resolver{client: client, docName: docName}
}

type fileResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fileList struct {
	Files []fileResource `json:"files"`
}

// Resolve returns the target document id. A non-empty preferredID is used
// directly. Otherwise the Drive listing is searched for a non-trashed Google
// Doc with the configured name; the first match wins, and a new document is
// created when there is none.
func (r *Resolver) Resolve(ctx context.Context, preferredID string) (string, error) {
	if preferredID != "" {
		return preferredID, nil
	}

	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", r.docName, docMimeType)
	path := "/files?q=" + url.QueryEscape(query) + "&fields=" + url.QueryEscape("files(id,name)")

	var list fileList
	if err := r.client.Do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return "", fmt.Errorf("searching for notes document: %w", err)
	}

	if len(list.Files) > 0 {
		return list.Files[0].ID, nil
	}

	return r.create(ctx)
}

func (r *Resolver) create(ctx context.Context) (string, error) {
	body := map[string]string{
		"name":     r.docName,
		"mimeType": docMimeType,
	}

	var created fileResource
	if err := r.client.Do(ctx, http.MethodPost, "/files", body, &created); err != nil {
		return "", fmt.Errorf("creating notes document: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("document creation returned no id")
	}
	return created.ID, nil
}
