// ABOUTME: MCP tools mapping repository operations to the tool interface.
// ABOUTME: Notes are addressed by full id or a unique prefix of 6+ characters.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/query"
	"github.com/harper/notebook/internal/transcode"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const idSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"}
	},
	"required": ["id"]
}`

type idParams struct {
	ID string `json:"id"`
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "create_note",
		Description: "Create a new note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"description": {"type": "string", "description": "Note body (HTML markup)"},
				"category": {"type": "string", "enum": ["Personal", "Work", "Study", "Ideas"], "default": "Personal"},
				"color": {"type": "string", "enum": ["yellow", "blue", "green", "pink", "purple"], "default": "yellow"},
				"priority": {"type": "string", "enum": ["low", "medium", "high"], "default": "medium"}
			},
			"required": ["title"]
		}`),
	}, s.handleCreateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes with optional filtering and sorting",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"search": {"type": "string", "description": "Case-insensitive text in title, body or category"},
				"category": {"type": "string", "description": "Category or 'all'"},
				"color": {"type": "string", "description": "Color or 'all'"},
				"priority": {"type": "string", "description": "Priority or 'all'"},
				"pinned_only": {"type": "boolean"},
				"favorites_only": {"type": "boolean"},
				"sort": {"type": "string", "enum": ["newest", "oldest", "alphabetical", "updated"], "default": "newest"},
				"trash": {"type": "boolean", "description": "List the trash instead of active notes"}
			}
		}`),
	}, s.handleListNotes)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID prefix",
		InputSchema: json.RawMessage(idSchema),
	}, s.handleGetNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update a note. Changing title or description records a version.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"title": {"type": "string"},
				"description": {"type": "string"},
				"category": {"type": "string"},
				"color": {"type": "string"},
				"priority": {"type": "string"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Move a note to the trash",
		InputSchema: json.RawMessage(idSchema),
	}, s.idHandler("Moved note %s to trash", s.repo.Delete))

	s.server.AddTool(&mcp.Tool{
		Name:        "restore_note",
		Description: "Restore a note from the trash",
		InputSchema: json.RawMessage(idSchema),
	}, s.idHandler("Restored note %s", s.repo.Restore))

	s.server.AddTool(&mcp.Tool{
		Name:        "purge_note",
		Description: "Permanently delete a note",
		InputSchema: json.RawMessage(idSchema),
	}, s.idHandler("Permanently deleted note %s", s.repo.Purge))

	s.server.AddTool(&mcp.Tool{
		Name:        "empty_trash",
		Description: "Permanently delete every note in the trash",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleEmptyTrash)

	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_pin",
		Description: "Pin or unpin a note",
		InputSchema: json.RawMessage(idSchema),
	}, s.idHandler("Toggled pin on note %s", s.repo.TogglePin))

	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Mark or unmark a note as favorite",
		InputSchema: json.RawMessage(idSchema),
	}, s.idHandler("Toggled favorite on note %s", s.repo.ToggleFavorite))

	s.server.AddTool(&mcp.Tool{
		Name:        "restore_version",
		Description: "Restore a previous version of a note's title and description",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"version_id": {"type": "string", "description": "Version ID or prefix"}
			},
			"required": ["id", "version_id"]
		}`),
	}, s.handleRestoreVersion)

	s.server.AddTool(&mcp.Tool{
		Name:        "export_note",
		Description: "Export a single note as plain text or markdown",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"format": {"type": "string", "enum": ["text", "markdown"], "default": "markdown"}
			},
			"required": ["id"]
		}`),
	}, s.handleExportNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "export_backup",
		Description: "Export all active notes as a JSON backup document",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleExportBackup)

	s.server.AddTool(&mcp.Tool{
		Name:        "import_backup",
		Description: "Merge notes from a JSON backup document",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"backup": {"type": "string", "description": "Backup document (JSON array of notes)"}
			},
			"required": ["backup"]
		}`),
	}, s.handleImportBackup)
}

func (s *Server) resolve(prefix string) (models.Note, *mcp.CallToolResult) {
	note, err := s.repo.ResolvePrefix(prefix)
	if err != nil {
		return models.Note{}, errorResult("failed to find note: %v", err)
	}
	return note, nil
}

// idHandler builds a handler for operations that take only a note id.
func (s *Server) idHandler(done string, op func(id string)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var params idParams
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return nil, err
		}
		note, res := s.resolve(params.ID)
		if res != nil {
			return res, nil
		}
		op(note.ID)
		return textResult(fmt.Sprintf(done, note.ID)), nil
	}
}

func (s *Server) handleCreateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Color       string `json:"color"`
		Priority    string `json:"priority"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	d := notes.DefaultDraft()
	d.Title = params.Title
	d.Description = params.Description
	update, err := parseSelectors(params.Category, params.Color, params.Priority)
	if err != nil {
		return errorResult("%v", err), nil
	}
	if update.Category != nil {
		d.Category = *update.Category
	}
	if update.Color != nil {
		d.Color = *update.Color
	}
	if update.Priority != nil {
		d.Priority = *update.Priority
	}

	note := s.repo.Create(d.Title, d.Description, d.Category, d.Color, d.Priority)
	return textResult(fmt.Sprintf("Created note %s", note.ID)), nil
}

// parseSelectors validates the optional enum arguments into an update.
func parseSelectors(category, color, priority string) (models.NoteUpdate, error) {
	var u models.NoteUpdate
	if category != "" {
		c, err := models.ParseCategory(category)
		if err != nil {
			return u, err
		}
		u.Category = &c
	}
	if color != "" {
		c, err := models.ParseColor(color)
		if err != nil {
			return u, err
		}
		u.Color = &c
	}
	if priority != "" {
		p, err := models.ParsePriority(priority)
		if err != nil {
			return u, err
		}
		u.Priority = &p
	}
	return u, nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Search        string `json:"search"`
		Category      string `json:"category"`
		Color         string `json:"color"`
		Priority      string `json:"priority"`
		PinnedOnly    bool   `json:"pinned_only"`
		FavoritesOnly bool   `json:"favorites_only"`
		Sort          string `json:"sort"`
		Trash         bool   `json:"trash"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	filter := query.DefaultFilter()
	filter.Search = params.Search
	filter.PinnedOnly = params.PinnedOnly
	filter.FavoritesOnly = params.FavoritesOnly
	u, err := parseSelectors(allAsEmpty(params.Category), allAsEmpty(params.Color), allAsEmpty(params.Priority))
	if err != nil {
		return errorResult("%v", err), nil
	}
	if u.Category != nil {
		filter.Category = *u.Category
	}
	if u.Color != nil {
		filter.Color = *u.Color
	}
	if u.Priority != nil {
		filter.Priority = *u.Priority
	}

	sort := query.SortNewest
	if params.Sort != "" {
		if sort, err = query.ParseSort(params.Sort); err != nil {
			return errorResult("%v", err), nil
		}
	}

	source := s.repo.Active()
	if params.Trash {
		source = s.repo.Trash()
	}
	return jsonResult(query.FilterAndSort(source, filter, sort)), nil
}

func allAsEmpty(s string) string {
	if s == query.All {
		return ""
	}
	return s
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params idParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	note, res := s.resolve(params.ID)
	if res != nil {
		return res, nil
	}
	return jsonResult(note), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID          string  `json:"id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    string  `json:"category"`
		Color       string  `json:"color"`
		Priority    string  `json:"priority"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, res := s.resolve(params.ID)
	if res != nil {
		return res, nil
	}

	update, err := parseSelectors(params.Category, params.Color, params.Priority)
	if err != nil {
		return errorResult("%v", err), nil
	}
	update.Title = params.Title
	update.Description = params.Description
	if update.IsEmpty() {
		return errorResult("nothing to update"), nil
	}

	s.repo.Update(note.ID, update)
	return textResult(fmt.Sprintf("Updated note %s", note.ID)), nil
}

func (s *Server) handleEmptyTrash(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := len(s.repo.Trash())
	s.repo.EmptyTrash()
	return textResult(fmt.Sprintf("Permanently deleted %d notes", count)), nil
}

func (s *Server) handleRestoreVersion(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID        string `json:"id"`
		VersionID string `json:"version_id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, res := s.resolve(params.ID)
	if res != nil {
		return res, nil
	}
	version, err := notes.ResolveVersion(note, params.VersionID)
	if err != nil {
		return errorResult("failed to find version: %v", err), nil
	}

	s.repo.RestoreVersion(note.ID, version.ID)
	return textResult(fmt.Sprintf("Restored note %s to version %s", note.ID, version.ID)), nil
}

func (s *Server) handleExportNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID     string `json:"id"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, res := s.resolve(params.ID)
	if res != nil {
		return res, nil
	}

	switch params.Format {
	case "text", "txt":
		return textResult(transcode.ExportText(note)), nil
	case "", "markdown", "md":
		return textResult(transcode.ExportMarkdown(note)), nil
	default:
		return errorResult("unknown format: %s", params.Format), nil
	}
}

func (s *Server) handleExportBackup(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := transcode.ExportBackup(s.repo.Active())
	if err != nil {
		return errorResult("%v", err), nil
	}
	return textResult(string(data)), nil
}

func (s *Server) handleImportBackup(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Backup string `json:"backup"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	incoming, err := transcode.ParseBackup([]byte(params.Backup))
	if err != nil {
		return errorResult("%v", err), nil
	}
	s.repo.Import(incoming)
	return textResult(fmt.Sprintf("Imported %d notes", len(incoming))), nil
}
