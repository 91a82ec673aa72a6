package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateNotesTool defines the generate_notes MCP tool.
var generateNotesTool = mcp.NewTool("generate_notes",
	mcp.WithDescription("Generate revision notes for a solved coding problem and append them to the configured Google Doc."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("The solution source code"),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("The problem title"),
	),
	mcp.WithString("language",
		mcp.Required(),
		mcp.Description("The programming language of the solution"),
	),
	mcp.WithString("doc_id",
		mcp.Description("Optional Google Doc id; the configured notes document is used when omitted"),
	),
)
