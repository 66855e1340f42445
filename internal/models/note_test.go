// ABOUTME: Tests for Note model constructor and helpers.
// ABOUTME: Validates history bounding, cloning and partial updates.

package models

import (
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	note := NewNote("n1", "Test Note", "<p>body</p>", CategoryWork, ColorBlue, PriorityHigh, now)

	if note.ID != "n1" {
		t.Errorf("expected id n1, got %q", note.ID)
	}
	if !note.CreatedAt.Equal(now) || !note.UpdatedAt.Equal(now) {
		t.Error("expected both timestamps to be set to now")
	}
	if note.IsTrashed() {
		t.Error("expected new note to be active")
	}
	if note.VersionHistory == nil || len(note.VersionHistory) != 0 {
		t.Error("expected empty, non-nil version history")
	}
	if note.Pinned || note.Favorite {
		t.Error("expected flags to default to false")
	}
}

func TestPushVersionBounded(t *testing.T) {
	var history []NoteVersion
	for i := 0; i < 10; i++ {
		history = PushVersion(history, NoteVersion{ID: string(rune('a' + i))})
		if len(history) > MaxVersions {
			t.Fatalf("history grew to %d", len(history))
		}
	}
	if history[0].ID != "j" || history[2].ID != "h" {
		t.Errorf("expected most recent first, got %v", history)
	}
}

func TestCloneIsDeep(t *testing.T) {
	deleted := time.Now()
	note := Note{ID: "x", DeletedAt: &deleted, VersionHistory: []NoteVersion{{ID: "v1"}}}

	c := note.Clone()
	c.VersionHistory[0].ID = "changed"
	*c.DeletedAt = deleted.Add(time.Hour)

	if note.VersionHistory[0].ID != "v1" {
		t.Error("clone shares version history")
	}
	if !note.DeletedAt.Equal(deleted) {
		t.Error("clone shares deleted_at")
	}
}

func TestNoteUpdateApply(t *testing.T) {
	note := Note{Title: "A", Category: CategoryPersonal}
	title := "B"
	cat := CategoryIdeas
	pinned := true

	u := NoteUpdate{Title: &title, Category: &cat, Pinned: &pinned}
	if !u.TouchesContent() {
		t.Error("expected title update to touch content")
	}
	u.Apply(&note)

	if note.Title != "B" || note.Category != CategoryIdeas || !note.Pinned {
		t.Errorf("unexpected note after apply: %+v", note)
	}

	meta := NoteUpdate{Pinned: &pinned}
	if meta.TouchesContent() {
		t.Error("expected pin-only update not to touch content")
	}
	if (NoteUpdate{}).IsEmpty() != true {
		t.Error("expected zero update to be empty")
	}
}

func TestFindVersion(t *testing.T) {
	note := Note{VersionHistory: []NoteVersion{{ID: "a"}, {ID: "b"}}}
	if note.FindVersion("b") != 1 {
		t.Error("expected to find version b at index 1")
	}
	if note.FindVersion("zzz") != -1 {
		t.Error("expected -1 for unknown version")
	}
}
