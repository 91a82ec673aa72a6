package llm

import "fmt"

// noteSections are the required sections of every generated note, in order.
var noteSections = []string{
	"Problem Summary",
	"Core Idea",
	"Approach",
	"Step-by-Step Walkthrough",
	"Complexity Analysis",
	"Edge Cases",
	"Common Mistakes",
	"Related Problems",
}

const promptTemplate = `You are helping a student build a revision notebook of solved coding problems.

Problem: %s
Language: %s

Solution code:
` + "```%s\n%s\n```" + `

Write concise revision notes for this solution with exactly these eight sections, each as a short titled paragraph or list:
%s
Write plain text only. Do not use any markup format such as Markdown headings, asterisks, or backticks in the notes themselves.`

// BuildPrompt interpolates the extracted submission into the fixed note
// generation template.
func BuildPrompt(code, title, language string) string {
	sections := ""
	for i, s := range noteSections {
		sections += fmt.Sprintf("%d. %s\n", i+1, s)
	}
	return fmt.Sprintf(promptTemplate, title, language, language, code, sections)
}
