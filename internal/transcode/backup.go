// ABOUTME: Structured JSON backup export and import.
// ABOUTME: Import validates each candidate and rejects documents with none valid.

package transcode

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/notebook/internal/models"
)

// BackupFilename is the conventional name of a backup document.
const BackupFilename = "notes-backup.json"

// ExportBackup serializes the active notes as a pretty-printed JSON array.
// Trashed notes are left out.
func ExportBackup(notes []models.Note) ([]byte, error) {
	active := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !n.IsTrashed() {
			active = append(active, n)
		}
	}
	data, err := json.MarshalIndent(active, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// ParseBackup decodes a backup document into candidate notes. A candidate
// needs a non-empty id and present title and description fields; anything
// else is skipped. The whole document is rejected with a *FormatError when
// it is not an array or when no candidate survives.
func ParseBackup(data []byte) ([]models.Note, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("%w: %v", ErrNotArray, err)}
	}
	if raw == nil {
		return nil, &FormatError{Err: ErrNotArray}
	}

	notes := make([]models.Note, 0, len(raw))
	for _, entry := range raw {
		n, ok := parseCandidate(entry)
		if ok {
			notes = append(notes, n)
		}
	}
	if len(notes) == 0 {
		return nil, &FormatError{Err: ErrNoValidNotes}
	}
	return notes, nil
}

// parseCandidate keeps any entry with a non-empty string id and present title
// and description keys. Every other field is decoded on its own; a field of
// the wrong type is left at its zero value instead of dropping the note.
func parseCandidate(entry json.RawMessage) (models.Note, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return models.Note{}, false
	}
	for _, key := range []string{"title", "description"} {
		if _, ok := fields[key]; !ok {
			return models.Note{}, false
		}
	}

	var n models.Note
	if err := json.Unmarshal(fields["id"], &n.ID); err != nil || n.ID == "" {
		return models.Note{}, false
	}
	targets := map[string]any{
		"title":           &n.Title,
		"description":     &n.Description,
		"category":        &n.Category,
		"color":           &n.Color,
		"priority":        &n.Priority,
		"pinned":          &n.Pinned,
		"favorite":        &n.Favorite,
		"created_at":      &n.CreatedAt,
		"updated_at":      &n.UpdatedAt,
		"deleted_at":      &n.DeletedAt,
		"version_history": &n.VersionHistory,
	}
	for key, target := range targets {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			resetField(target)
		}
	}
	if n.VersionHistory == nil {
		n.VersionHistory = []models.NoteVersion{}
	}
	return n, true
}

// resetField zeroes a target that a failed decode may have partly filled.
func resetField(target any) {
	switch v := target.(type) {
	case *string:
		*v = ""
	case *bool:
		*v = false
	case *models.Category:
		*v = ""
	case *models.Color:
		*v = ""
	case *models.Priority:
		*v = ""
	case *time.Time:
		*v = time.Time{}
	case **time.Time:
		*v = nil
	case *[]models.NoteVersion:
		*v = nil
	}
}
