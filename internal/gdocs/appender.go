// Package gdocs appends generated notes to a Google Doc.
package gdocs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Rehneet11/LeetNotes/internal/apiclient"
)

// BaseURL is the Docs v1 REST endpoint.
const BaseURL = "https://docs.googleapis.com/v1"

// separatorPrefix is inserted before every appended note.
const separatorPrefix = "\n\n---\n\n"

// Appender writes notes to the end of a document body.
type Appender struct {
	client *apiclient.Client
}

// NewAppender creates an appender using the given Docs API client.
func NewAppender(client *apiclient.Client) *Appender {
	return &Appender{client: client}
}

type document struct {
	Body struct {
		Content []struct {
			EndIndex int `json:"endIndex"`
		} `json:"content"`
	} `json:"body"`
}

type batchUpdateRequest struct {
	Requests []updateRequest `json:"requests"`
}

type updateRequest struct {
	InsertText *insertTextRequest `json:"insertText,omitempty"`
}

type insertTextRequest struct {
	Location location `json:"location"`
	Text     string   `json:"text"`
}

type location struct {
	Index int `json:"index"`
}

// Append fetches the document's content structure and inserts the notes just
// before the trailing sentinel newline.
func (a *Appender) Append(ctx context.Context, docID, notes string) error {
	var doc document
	if err := a.client.Do(ctx, http.MethodGet, "/documents/"+docID, nil, &doc); err != nil {
		return wrapDocError(docID, err)
	}

	index := insertionIndex(&doc)

	update := batchUpdateRequest{
		Requests: []updateRequest{
			{
				InsertText: &insertTextRequest{
					Location: location{Index: index},
					Text:     separatorPrefix + notes + "\n",
				},
			},
		},
	}

	path := "/documents/" + docID + ":batchUpdate"
	if err := a.client.Do(ctx, http.MethodPost, path, update, nil); err != nil {
		return wrapDocError(docID, err)
	}
	return nil
}

// insertionIndex computes the raw insertion offset: one before the last
// content element's end, since the document always terminates in a sentinel
// newline that insertions must precede. Empty documents insert at index 1.
func insertionIndex(doc *document) int {
	content := doc.Body.Content
	if len(content) == 0 {
		return 1
	}
	index := content[len(content)-1].EndIndex - 1
	if index <= 1 {
		return 1
	}
	return index
}

// wrapDocError adds document context to API failures and remaps permission
// denials to an actionable message.
func wrapDocError(docID string, err error) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		return fmt.Errorf("Permission denied for document %s: verify that your Google account has edit access", docID)
	}
	return fmt.Errorf("updating document %s: %w", docID, err)
}
