package preview

import (
	"strings"
	"testing"
)

func TestRenderContainsTitleCodeAndNotes(t *testing.T) {
	out, err := Render("Two Sum", "python", "print(1)", "Problem Summary: find two indices.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := string(out)
	if !strings.Contains(page, "Two Sum") {
		t.Error("preview missing title")
	}
	if !strings.Contains(page, "print") {
		t.Error("preview missing code")
	}
	if !strings.Contains(page, "Problem Summary: find two indices.") {
		t.Error("preview missing notes text")
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	out, err := Render(`<script>alert(1)</script>`, "go", "x", "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Error("title was not escaped")
	}
}
