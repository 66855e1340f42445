// ABOUTME: Editing session with debounced autosave.
// ABOUTME: Each edit resets a cancellable timer; commit or close stops it for good.

package notes

import (
	"errors"
	"sync"
	"time"

	"github.com/harper/notebook/internal/models"
)

// ErrSessionClosed is returned when a committed or closed session is used.
var ErrSessionClosed = errors.New("editing session is closed")

// Draft is the editable part of a note.
type Draft struct {
	Title       string
	Description string
	Category    models.Category
	Color       models.Color
	Priority    models.Priority
}

// DraftOf returns the editable fields of n.
func DraftOf(n models.Note) Draft {
	return Draft{
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
		Color:       n.Color,
		Priority:    n.Priority,
	}
}

// DefaultDraft is the starting point for a new note.
func DefaultDraft() Draft {
	return Draft{
		Category: models.CategoryPersonal,
		Color:    models.ColorYellow,
		Priority: models.PriorityMedium,
	}
}

// diff builds an update holding only the fields that differ from base.
func (d Draft) diff(base Draft) models.NoteUpdate {
	var u models.NoteUpdate
	if d.Title != base.Title {
		u.Title = &d.Title
	}
	if d.Description != base.Description {
		u.Description = &d.Description
	}
	if d.Category != base.Category {
		u.Category = &d.Category
	}
	if d.Color != base.Color {
		u.Color = &d.Color
	}
	if d.Priority != base.Priority {
		u.Priority = &d.Priority
	}
	return u
}

// Session edits one note. Sessions on existing notes autosave after the
// repository's autosave delay; draft sessions for new notes only save on Commit.
type Session struct {
	mu     sync.Mutex
	repo   *Repository
	noteID string
	isNew  bool
	draft  Draft
	base   Draft
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	closed bool
	// inflight is set while an autosave is being written.
	inflight bool
	writes   sync.WaitGroup
}

// OpenSession starts editing an existing note.
func (r *Repository) OpenSession(id string) (*Session, error) {
	n, ok := r.Get(id)
	if !ok {
		return nil, ErrNoteNotFound
	}
	d := DraftOf(n)
	return &Session{repo: r, noteID: n.ID, draft: d, base: d, delay: r.autosaveDelay}, nil
}

// NewDraftSession starts editing a note that does not exist yet.
func (r *Repository) NewDraftSession(d Draft) *Session {
	return &Session{repo: r, isNew: true, draft: d, base: d, delay: r.autosaveDelay}
}

// NoteID returns the id being edited, empty for an uncommitted draft.
func (s *Session) NoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noteID
}

// Draft returns the current draft.
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Saving reports whether an autosave is pending or being written.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil || s.inflight
}

// Edit replaces the draft. For existing notes a dirty draft (re)arms the
// autosave timer and a clean one cancels it.
func (s *Session) Edit(d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.draft = d
	if s.isNew {
		return nil
	}

	s.cancelLocked()
	if d == s.base {
		return nil
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
	return nil
}

// fire runs on the timer goroutine. The repository is called without s.mu
// held so subscribers may query the session.
func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	id, u := s.takeLocked()
	if u.IsEmpty() {
		s.mu.Unlock()
		return
	}
	s.inflight = true
	s.writes.Add(1)
	s.mu.Unlock()

	s.repo.Update(id, u)

	s.mu.Lock()
	s.inflight = false
	s.mu.Unlock()
	s.writes.Done()
}

func (s *Session) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// takeLocked returns the pending changes and marks them as saved.
func (s *Session) takeLocked() (string, models.NoteUpdate) {
	u := s.draft.diff(s.base)
	s.base = s.draft
	return s.noteID, u
}

// Commit cancels any pending autosave and saves the draft now. Draft sessions
// create the note. The session is closed afterwards. Commit waits for an
// autosave already being written, so it must not be called from a subscriber.
func (s *Session) Commit() (models.Note, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.Note{}, ErrSessionClosed
	}
	s.cancelLocked()
	s.closed = true

	if s.isNew {
		d := s.draft
		s.mu.Unlock()
		n := s.repo.Create(d.Title, d.Description, d.Category, d.Color, d.Priority)
		s.mu.Lock()
		s.noteID = n.ID
		s.mu.Unlock()
		return n, nil
	}

	id, u := s.takeLocked()
	s.mu.Unlock()

	s.writes.Wait()
	if !u.IsEmpty() {
		s.repo.Update(id, u)
	}
	n, ok := s.repo.Get(id)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}
	return n, nil
}

// Close discards any pending autosave without saving. A write already in
// progress finishes before Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	s.cancelLocked()
	s.closed = true
	s.mu.Unlock()
	s.writes.Wait()
}
