// ABOUTME: MCP server for notebook integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts over the note repository.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/harper/notebook/internal/notes"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	repo   *notes.Repository

	// notify sends a resource-updated notification for uri.
	notify func(uri string)
	// seen maps note ids to the last fingerprint announced.
	seenMu      sync.Mutex
	seen        map[string]string
	unsubscribe func()
}

func NewServer(repo *notes.Repository, version string) *Server {
	s := &Server{repo: repo}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "notebook",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:           true,
			HasResources:       true,
			HasPrompts:         true,
			SubscribeHandler:   func(context.Context, *mcp.SubscribeRequest) error { return nil },
			UnsubscribeHandler: func(context.Context, *mcp.UnsubscribeRequest) error { return nil },
		},
	)
	s.notify = func(uri string) {
		_ = s.server.ResourceUpdated(context.Background(), &mcp.ResourceUpdatedNotificationParams{URI: uri})
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	s.watchNotes()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	defer s.Close()
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close stops forwarding repository changes.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("failed to encode result: %v", err)
	}
	return textResult(string(data))
}
