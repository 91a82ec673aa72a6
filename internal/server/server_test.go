package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rehneet11/LeetNotes/internal/notes"
)

// mockRunner implements Runner for testing.
type mockRunner struct {
	lastPayload notes.Payload
	result      notes.Result
}

func (m *mockRunner) Run(_ context.Context, payload notes.Payload) notes.Result {
	m.lastPayload = payload
	return m.result
}

func TestGenerateSuccess(t *testing.T) {
	mock := &mockRunner{result: notes.Result{Success: true}}
	s := New(Config{Port: 8787}, mock)

	body := `{"code":"print(1)","title":"Two Sum","language":"python","docId":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result notes.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success, got error %q", result.Error)
	}
	if mock.lastPayload.Title != "Two Sum" {
		t.Errorf("payload not forwarded, got title %q", mock.lastPayload.Title)
	}
	if mock.lastPayload.Code != "print(1)" {
		t.Errorf("payload not forwarded, got code %q", mock.lastPayload.Code)
	}
}

func TestGenerateFailureResult(t *testing.T) {
	mock := &mockRunner{result: notes.Result{Error: "missing required field(s): code"}}
	s := New(Config{Port: 8787}, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"title":"t","language":"go"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with failure result, got %d", w.Code)
	}
	var result notes.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if result.Success {
		t.Error("expected failure result")
	}
	if !strings.Contains(result.Error, "missing required field") {
		t.Errorf("unexpected error: %q", result.Error)
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	mock := &mockRunner{}
	s := New(Config{Port: 8787}, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if mock.lastPayload.Code != "" {
		t.Error("runner should not be invoked for invalid JSON")
	}
}

func TestHealthz(t *testing.T) {
	s := New(Config{Port: 8787}, &mockRunner{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
