package gdocs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Rehneet11/LeetNotes/internal/apiclient"
)

func newTestAppender(srv *httptest.Server) *Appender {
	authn := &apiclient.TokenAuth{
		Source:      oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"}),
		ServiceName: "Google Docs",
	}
	return NewAppender(apiclient.New(srv.URL, authn))
}

// docServer serves a document with the given content end offsets and records
// the batch update it receives.
func docServer(t *testing.T, endOffsets []int, gotUpdate *batchUpdateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ":batchUpdate") {
			if err := json.NewDecoder(r.Body).Decode(gotUpdate); err != nil {
				t.Errorf("decoding batch update: %v", err)
			}
			w.Write([]byte(`{}`))
			return
		}
		var doc document
		for _, e := range endOffsets {
			doc.Body.Content = append(doc.Body.Content, struct {
				EndIndex int `json:"endIndex"`
			}{EndIndex: e})
		}
		json.NewEncoder(w).Encode(doc)
	}))
}

func TestAppendInsertsBeforeSentinel(t *testing.T) {
	var update batchUpdateRequest
	srv := docServer(t, []int{10, 50}, &update)
	defer srv.Close()

	a := newTestAppender(srv)
	if err := a.Append(context.Background(), "doc-1", "the notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(update.Requests) != 1 || update.Requests[0].InsertText == nil {
		t.Fatal("expected exactly one insertText request")
	}
	ins := update.Requests[0].InsertText
	if ins.Location.Index != 49 {
		t.Errorf("expected insertion at endIndex-1 = 49, got %d", ins.Location.Index)
	}
	if ins.Text != "\n\n---\n\nthe notes\n" {
		t.Errorf("unexpected inserted text: %q", ins.Text)
	}
}

func TestAppendEmptyDocumentDefaultsToOne(t *testing.T) {
	var update batchUpdateRequest
	srv := docServer(t, nil, &update)
	defer srv.Close()

	a := newTestAppender(srv)
	if err := a.Append(context.Background(), "doc-1", "notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.Requests[0].InsertText.Location.Index != 1 {
		t.Errorf("expected index 1 for empty document, got %d", update.Requests[0].InsertText.Location.Index)
	}
}

func TestAppendLowOffsetClampsToOne(t *testing.T) {
	var update batchUpdateRequest
	srv := docServer(t, []int{2}, &update)
	defer srv.Close()

	a := newTestAppender(srv)
	if err := a.Append(context.Background(), "doc-1", "notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.Requests[0].InsertText.Location.Index != 1 {
		t.Errorf("expected index clamped to 1, got %d", update.Requests[0].InsertText.Location.Index)
	}
}

func TestAppendPermissionDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"The caller does not have permission"}}`))
	}))
	defer srv.Close()

	a := newTestAppender(srv)
	err := a.Append(context.Background(), "doc-denied", "notes")
	if err == nil {
		t.Fatal("expected permission error")
	}
	if !strings.Contains(err.Error(), "Permission") {
		t.Errorf("expected 'Permission' in error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "doc-denied") {
		t.Errorf("expected document id in error, got: %v", err)
	}
}

func TestAppendOtherErrorsCarryDocID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"Requested entity was not found"}}`))
	}))
	defer srv.Close()

	a := newTestAppender(srv)
	err := a.Append(context.Background(), "doc-missing", "notes")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "doc-missing") {
		t.Errorf("expected document id in error, got: %v", err)
	}
}
