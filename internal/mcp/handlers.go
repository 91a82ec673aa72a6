package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rehneet11/LeetNotes/internal/notes"
)

// handleGenerateNotes runs the pipeline for the tool arguments.
func (s *Server) handleGenerateNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}
	language, err := request.RequireString("language")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: language"), nil
	}

	payload := notes.Payload{
		Code:     code,
		Title:    title,
		Language: language,
		DocID:    request.GetString("doc_id", ""),
	}

	result := s.runner.Run(ctx, payload)
	if !result.Success {
		return mcp.NewToolResultError(result.Error), nil
	}
	return mcp.NewToolResultText("Notes generated and appended to the notes document."), nil
}
