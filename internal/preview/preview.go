// Package preview renders generated notes to a standalone HTML page for
// local review before they land in the shared document.
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} — LeetNotes preview</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; border-radius: 6px; }
hr { margin: 2rem 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Content}}
</body>
</html>
`

type pageData struct {
	Title   string
	Content template.HTML
}

// Render produces an HTML preview containing the highlighted solution code
// and the generated notes.
func Render(title, language, code, notesText string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	// Notes are plain text; the code block is the only markdown construct.
	source := fmt.Sprintf("```%s\n%s\n```\n\n---\n\n%s\n", language, code, notesText)

	var rendered bytes.Buffer
	if err := md.Convert([]byte(source), &rendered); err != nil {
		return nil, fmt.Errorf("rendering preview: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing preview template: %w", err)
	}

	var out bytes.Buffer
	err = tmpl.Execute(&out, pageData{
		Title:   title,
		Content: template.HTML(rendered.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("executing preview template: %w", err)
	}
	return out.Bytes(), nil
}
