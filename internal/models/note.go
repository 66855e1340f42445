// ABOUTME: Note model with categorization, flags, soft-delete and version history.
// ABOUTME: Provides constructor, partial update contract, and deep copy helpers.

package models

import (
	"time"
)

// MaxVersions bounds the version history kept per note.
const MaxVersions = 3

// Note is a single note record. Field names match the persisted layout.
type Note struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       Category      `json:"category"`
	Color          Color         `json:"color"`
	Priority       Priority      `json:"priority"`
	Pinned         bool          `json:"pinned"`
	Favorite       bool          `json:"favorite"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at"`
	VersionHistory []NoteVersion `json:"version_history"`
}

// NoteVersion is an immutable snapshot of a note's content.
// Timestamp is the note's UpdatedAt at the moment the snapshot was superseded.
type NoteVersion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewNote builds an active note with empty history. Both timestamps are set to now.
func NewNote(id, title, description string, category Category, color Color, priority Priority, now time.Time) Note {
	return Note{
		ID:             id,
		Title:          title,
		Description:    description,
		Category:       category,
		Color:          color,
		Priority:       priority,
		CreatedAt:      now,
		UpdatedAt:      now,
		VersionHistory: []NoteVersion{},
	}
}

// IsTrashed reports whether the note is in the trash.
func (n *Note) IsTrashed() bool {
	return n.DeletedAt != nil
}

// Touch sets UpdatedAt.
func (n *Note) Touch(now time.Time) {
	n.UpdatedAt = now
}

// Snapshot captures the current title and description as a version.
func (n *Note) Snapshot(versionID string) NoteVersion {
	return NoteVersion{
		ID:          versionID,
		Title:       n.Title,
		Description: n.Description,
		Timestamp:   n.UpdatedAt,
	}
}

// FindVersion returns the index of the version with the given id, or -1.
func (n *Note) FindVersion(versionID string) int {
	for i, v := range n.VersionHistory {
		if v.ID == versionID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers cannot alias repository state.
func (n Note) Clone() Note {
	c := n
	if n.DeletedAt != nil {
		d := *n.DeletedAt
		c.DeletedAt = &d
	}
	c.VersionHistory = make([]NoteVersion, len(n.VersionHistory))
	copy(c.VersionHistory, n.VersionHistory)
	return c
}

// CloneAll deep copies a slice of notes.
func CloneAll(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i := range notes {
		out[i] = notes[i].Clone()
	}
	return out
}

// PushVersion prepends v to the history and drops entries beyond MaxVersions.
func PushVersion(history []NoteVersion, v NoteVersion) []NoteVersion {
	out := make([]NoteVersion, 0, len(history)+1)
	out = append(out, v)
	out = append(out, history...)
	if len(out) > MaxVersions {
		out = out[:MaxVersions]
	}
	return out
}

// NoteUpdate is a partial update. Nil fields are left unchanged.
// Identifier, creation time and history have no field here and cannot be set.
type NoteUpdate struct {
	Title       *string
	Description *string
	Category    *Category
	Color       *Color
	Priority    *Priority
	Pinned      *bool
	Favorite    *bool
}

// TouchesContent reports whether the update changes title or description,
// which requires a version snapshot first.
func (u NoteUpdate) TouchesContent() bool {
	return u.Title != nil || u.Description != nil
}

// IsEmpty reports whether no field is set.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Color == nil && u.Priority == nil && u.Pinned == nil && u.Favorite == nil
}

// Apply writes every set field onto n. Timestamps are the caller's concern.
func (u NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Description != nil {
		n.Description = *u.Description
	}
	if u.Category != nil {
		n.Category = *u.Category
	}
	if u.Color != nil {
		n.Color = *u.Color
	}
	if u.Priority != nil {
		n.Priority = *u.Priority
	}
	if u.Pinned != nil {
		n.Pinned = *u.Pinned
	}
	if u.Favorite != nil {
		n.Favorite = *u.Favorite
	}
}
