// Package mcp exposes note generation as a Model Context Protocol tool so
// AI agents can trigger it over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Rehneet11/LeetNotes/internal/notes"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Runner executes one note-generation invocation.
type Runner interface {
	Run(ctx context.Context, payload notes.Payload) notes.Result
}

// Server wraps an MCP server that exposes the note-generation pipeline.
type Server struct {
	runner Runner
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server around the given pipeline runner.
func NewServer(runner Runner) *Server {
	s := &Server{runner: runner}

	s.mcp = server.NewMCPServer(
		"leetnotes",
		Version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(generateNotesTool, s.handleGenerateNotes)

	return s
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
