package drive

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

func newTestResolver(srv *httptest.Server) *Resolver {
	authn := &apiclient.TokenAuth{
		Source:      oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"}),
		ServiceName: "Google Drive",
	}
	return NewResolver(apiclient.New(srv.URL, authn), "LeetNotes")
}

func TestResolvePreferredIDSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	r := newTestResolver(srv)
	id, err := r.Resolve(context.Background(), "doc-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "doc-42" {
		t.Errorf("expected preferred id, got %q", id)
	}
	if called {
		t.Error("preferred id should not trigger any API call")
	}
}

func TestResolveReturnsFirstMatch(t *testing.T) {
	var creates int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			creates++
			w.Write([]byte(`{"id":"should-not-happen"}`))
			return
		}
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, "name='LeetNotes'") || !strings.Contains(q, "trashed=false") {
			t.Errorf("unexpected query: %q", q)
		}
		json.NewEncoder(w).Encode(fileList{Files: []fileResource{
			{ID: "first-id", Name: "LeetNotes"},
			{ID: "second-id", Name: "LeetNotes"},
		}})
	}))
	defer srv.Close()

	r := newTestResolver(srv)
	id, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "first-id" {
		t.Errorf("expected first match, got %q", id)
	}
	if creates != 0 {
		t.Errorf("create should not be called when a match exists, got %d calls", creates)
	}
}

func TestResolveCreatesWhenNoMatch(t *testing.T) {
	var creates int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			creates++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["name"] != "LeetNotes" {
				t.Errorf("expected document name LeetNotes, got %q", body["name"])
			}
			if body["mimeType"] != docMimeType {
				t.Errorf("expected docs mime type, got %q", body["mimeType"])
			}
			w.Write([]byte(`{"id":"new-doc-id"}`))
			return
		}
		w.Write([]byte(`{"files":[]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv)
	id, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "new-doc-id" {
		t.Errorf("expected created id, got %q", id)
	}
	if creates != 1 {
		t.Errorf("expected exactly one create call, got %d", creates)
	}
}

func TestResolveCreationWithoutIDFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`{"files":[]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv)
	_, err := r.Resolve(context.Background(), "")
	if err == nil {
		t.Fatal("expected error when creation returns no id")
	}
	if !strings.Contains(err.Error(), "no id") {
		t.Errorf("unexpected error: %v", err)
	}
}
