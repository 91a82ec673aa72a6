package extract

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Two Sum - LeetCode</title></head>
<body>
<h1>Accepted</h1>
<pre><code class="hljs language-python">def two_sum(nums, target):
    seen = {}
    for i, n in enumerate(nums):
        if target - n in seen:
            return [seen[target - n], i]
        seen[n] = i
</code></pre>
</body>
</html>`

func TestExtractSubmission(t *testing.T) {
	sub, err := PageExtractor{}.Extract(samplePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.Title != "Two Sum" {
		t.Errorf("expected title 'Two Sum', got %q", sub.Title)
	}
	if sub.Language != "python" {
		t.Errorf("expected language 'python', got %q", sub.Language)
	}
	if !strings.Contains(sub.Code, "def two_sum(nums, target):") {
		t.Errorf("code not extracted, got: %q", sub.Code)
	}
	if strings.HasSuffix(sub.Code, "\n") {
		t.Error("trailing newline should be trimmed")
	}
}

func TestExtractNoCodeElement(t *testing.T) {
	_, err := PageExtractor{}.Extract(`<html><head><title>Empty</title></head><body><p>nothing</p></body></html>`)
	if err == nil {
		t.Fatal("expected error for page without code element")
	}
	if !strings.Contains(err.Error(), "no code element") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExtractLanguageDefaultsToUnknown(t *testing.T) {
	page := `<html><head><title>Mystery Problem</title></head><body><pre><code>x = 1</code></pre></body></html>`
	sub, err := PageExtractor{}.Extract(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Language != "unknown" {
		t.Errorf("expected 'unknown', got %q", sub.Language)
	}
}

func TestExtractTitleWithoutSeparator(t *testing.T) {
	page := `<html><head><title>Plain Title</title></head><body><pre><code>x</code></pre></body></html>`
	sub, err := PageExtractor{}.Extract(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Title != "Plain Title" {
		t.Errorf("expected full title, got %q", sub.Title)
	}
}

func TestExtractBarePreFallback(t *testing.T) {
	page := `<html><head><title>Bare Pre - Site</title></head><body><pre>fmt.Println("hi")</pre></body></html>`
	sub, err := PageExtractor{}.Extract(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Code != `fmt.Println("hi")` {
		t.Errorf("expected code from bare pre, got %q", sub.Code)
	}
}
