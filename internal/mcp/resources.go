// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Serves each note as markdown under the notebook://note/{id} URI.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/transcode"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "notebook://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := strings.CutPrefix(req.Params.URI, noteURIPrefix)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	note, err := s.repo.ResolvePrefix(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     transcode.ExportMarkdown(note),
			},
		},
	}, nil
}

// watchNotes announces notebook://note/{id} updates to subscribed clients
// whenever a note changes or leaves the collection.
func (s *Server) watchNotes() {
	s.seen = fingerprints(s.repo.Notes())
	s.unsubscribe = s.repo.Subscribe(s.announceChanges)
}

func (s *Server) announceChanges(notes []models.Note) {
	current := fingerprints(notes)

	s.seenMu.Lock()
	var changed []string
	for id, fp := range current {
		if s.seen[id] != fp {
			changed = append(changed, id)
		}
	}
	for id := range s.seen {
		if _, ok := current[id]; !ok {
			changed = append(changed, id)
		}
	}
	s.seen = current
	s.seenMu.Unlock()

	for _, id := range changed {
		s.notify(noteURIPrefix + id)
	}
}

func fingerprints(notes []models.Note) map[string]string {
	out := make(map[string]string, len(notes))
	for _, n := range notes {
		data, _ := json.Marshal(n)
		out[n.ID] = string(data)
	}
	return out
}
