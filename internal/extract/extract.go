// Package extract pulls a solved submission out of a problem page. Page
// structure is host-specific and brittle, so the extractor sits behind an
// interface the rest of the system doesn't see past.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Submission is the extracted problem content fed to note generation.
type Submission struct {
	Code     string
	Title    string
	Language string
}

// Extractor produces a submission from raw page HTML.
type Extractor interface {
	Extract(html string) (*Submission, error)
}

// PageExtractor reads the first <pre><code> block of a page, the document
// title up to the first " - " separator, and a language-<name> CSS class.
type PageExtractor struct{}

const languageClassPrefix = "language-"

func (PageExtractor) Extract(html string) (*Submission, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	code := doc.Find("pre code").First()
	if code.Length() == 0 {
		code = doc.Find("pre").First()
	}
	if code.Length() == 0 {
		return nil, fmt.Errorf("no code element found on the page")
	}

	sub := &Submission{
		Code:     strings.TrimRight(code.Text(), "\n"),
		Title:    pageTitle(doc),
		Language: codeLanguage(code),
	}
	if strings.TrimSpace(sub.Code) == "" {
		return nil, fmt.Errorf("code element on the page is empty")
	}
	return sub, nil
}

// pageTitle derives the problem title from <title>, truncated at the first
// " - " separator ("Two Sum - LeetCode" -> "Two Sum").
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if idx := strings.Index(title, " - "); idx >= 0 {
		title = title[:idx]
	}
	return title
}

// codeLanguage reads a language-<name> class from the code element,
// defaulting to "unknown".
func codeLanguage(code *goquery.Selection) string {
	class, _ := code.Attr("class")
	for _, c := range strings.Fields(class) {
		if name, ok := strings.CutPrefix(c, languageClassPrefix); ok && name != "" {
			return name
		}
	}
	return "unknown"
}
