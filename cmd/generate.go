package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rehneet11/LeetNotes/internal/config"
	"github.com/Rehneet11/LeetNotes/internal/extract"
	"github.com/Rehneet11/LeetNotes/internal/llm"
	"github.com/Rehneet11/LeetNotes/internal/notes"
	"github.com/Rehneet11/LeetNotes/internal/preview"
	"github.com/Rehneet11/LeetNotes/internal/progress"
)

var (
	generateDocID   string
	generatePreview string
)

var generateCmd = &cobra.Command{
	Use:   "generate <url-or-html-file>",
	Short: "Generate notes for a solved problem page and append them to the notes doc",
	Long: `Fetches a solved problem page (or reads a saved HTML file), extracts
the solution code, title, and language, generates revision notes, and
appends them to the configured Google Doc.

With --preview, the notes are written to a local HTML file instead of
being appended, so they can be reviewed first.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateDocID, "doc", "", "Google Doc id override")
	generateCmd.Flags().StringVar(&generatePreview, "preview", "", "write notes to this HTML file instead of appending")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	html, err := loadPage(ctx, args[0])
	if err != nil {
		return err
	}

	sub, err := extract.PageExtractor{}.Extract(html)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Extracted %q (%s), %d bytes of code\n", sub.Title, sub.Language, len(sub.Code))
	}

	if generatePreview != "" {
		return runPreview(ctx, cfg, sub)
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	reporter := progress.NewReporter()
	reporter.Start(4)
	pipeline.OnStep = func(step, total int, name string) {
		reporter.Update(step, name)
	}

	docID := generateDocID
	if docID == "" {
		docID = cfg.DocID
	}

	result := pipeline.Run(ctx, notes.Payload{
		Code:     sub.Code,
		Title:    sub.Title,
		Language: sub.Language,
		DocID:    docID,
	})
	reporter.Finish()

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	fmt.Printf("Notes for %q appended.\n", sub.Title)
	return nil
}

// runPreview generates notes without touching the document and writes a
// local HTML review page.
func runPreview(ctx context.Context, cfg *config.Config, sub *extract.Submission) error {
	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("API key is not configured; run `leetnotes auth %s` or set %s",
			cfg.Provider, config.APIKeyEnvVar(cfg.Provider))
	}

	text, err := provider.Generate(ctx, llm.BuildPrompt(sub.Code, sub.Title, sub.Language))
	if err != nil {
		return err
	}

	page, err := preview.Render(sub.Title, sub.Language, sub.Code, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(generatePreview, page, 0644); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}

	fmt.Printf("Preview written to %s\n", generatePreview)
	return nil
}

// loadPage reads page HTML from a local file when the argument names one,
// else fetches it over HTTP.
func loadPage(ctx context.Context, arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("reading page file: %w", err)
		}
		return string(data), nil
	}
	return extract.FetchPage(ctx, arg)
}
