// ABOUTME: Note repository owning the in-memory collection and its lifecycle.
// ABOUTME: Handles CRUD, trash with timed expiry, version history, and import merge.

package notes

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/notebook/internal/models"
)

const (
	// DefaultTrashExpiry is how long a trashed note survives before the load sweep drops it.
	DefaultTrashExpiry = 7 * 24 * time.Hour

	// DefaultAutosaveDelay is the debounce window of an editing session.
	DefaultAutosaveDelay = time.Second

	minPrefixLen = 6
)

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrPrefixTooShort  = errors.New("prefix must be at least 6 characters")
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")
	ErrVersionNotFound = errors.New("version not found")
)

// Store persists the whole collection. Implementations contain their own
// errors: Load returns an empty collection on failure and Save only logs.
type Store interface {
	Load() []models.Note
	Save(notes []models.Note)
}

// Repository owns the note collection. Every public method is atomic with
// respect to the others, and every mutation that changes state re-saves the
// whole collection and notifies subscribers.
type Repository struct {
	mu    sync.Mutex
	notes []models.Note
	store Store

	now           func() time.Time
	newID         func() string
	expiry        time.Duration
	autosaveDelay time.Duration
	logger        *log.Logger

	subs    map[int]func([]models.Note)
	nextSub int
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) {
		r.newID = gen
	}
}

// WithTrashExpiry sets the retention window for trashed notes.
func WithTrashExpiry(d time.Duration) Option {
	return func(r *Repository) {
		r.expiry = d
	}
}

// WithAutosaveDelay sets the debounce window used by editing sessions.
func WithAutosaveDelay(d time.Duration) Option {
	return func(r *Repository) {
		r.autosaveDelay = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Repository) {
		r.logger = l
	}
}

// Open loads the collection from s and runs the expiry sweep once.
// Notes dropped by the sweep are never re-persisted.
func Open(s Store, opts ...Option) *Repository {
	r := &Repository{
		store:         s,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
		expiry:        DefaultTrashExpiry,
		autosaveDelay: DefaultAutosaveDelay,
		logger:        log.Default(),
		subs:          make(map[int]func([]models.Note)),
	}
	for _, opt := range opts {
		opt(r)
	}

	loaded := s.Load()
	now := r.now()
	kept := make([]models.Note, 0, len(loaded))
	for _, n := range loaded {
		if n.DeletedAt != nil && now.Sub(*n.DeletedAt) >= r.expiry {
			continue
		}
		kept = append(kept, normalize(n))
	}
	r.notes = kept

	if dropped := len(loaded) - len(kept); dropped > 0 {
		r.logger.Info("expired notes removed from trash", "count", dropped)
		r.store.Save(r.notes)
	}
	return r
}

// normalize enforces model invariants on notes that came from outside.
func normalize(n models.Note) models.Note {
	n = n.Clone()
	if len(n.VersionHistory) > models.MaxVersions {
		n.VersionHistory = n.VersionHistory[:models.MaxVersions]
	}
	return n
}

// mutate runs fn under the lock. When fn reports a change the collection is
// saved and subscribers receive a snapshot after the lock is released.
func (r *Repository) mutate(fn func() bool) {
	r.mu.Lock()
	if !fn() {
		r.mu.Unlock()
		return
	}
	r.store.Save(r.notes)
	snapshot := models.CloneAll(r.notes)
	subs := make([]func([]models.Note), 0, len(r.subs))
	for _, s := range r.subs {
		subs = append(subs, s)
	}
	r.mu.Unlock()

	for _, s := range subs {
		s(models.CloneAll(snapshot))
	}
}

// index returns the position of id, or -1. Caller holds the lock.
func (r *Repository) index(id string) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers fn to receive the collection after every change.
// fn runs outside the repository lock. The returned func unsubscribes.
func (r *Repository) Subscribe(fn func(notes []models.Note)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Create prepends a new active note and returns it.
func (r *Repository) Create(title, description string, category models.Category, color models.Color, priority models.Priority) models.Note {
	var created models.Note
	r.mutate(func() bool {
		created = models.NewNote(r.newID(), title, description, category, color, priority, r.now())
		r.notes = append([]models.Note{created}, r.notes...)
		return true
	})
	return created.Clone()
}

// Update applies a partial update. A title or description change first pushes
// the pre-update content onto the version history. Unknown ids are ignored.
func (r *Repository) Update(id string, u models.NoteUpdate) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		n := &r.notes[i]
		if u.TouchesContent() {
			n.VersionHistory = models.PushVersion(n.VersionHistory, n.Snapshot(r.newID()))
		}
		u.Apply(n)
		n.Touch(r.now())
		return true
	})
}

// Delete moves a note to the trash. UpdatedAt is left alone.
func (r *Repository) Delete(id string) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 || r.notes[i].IsTrashed() {
			return false
		}
		now := r.now()
		r.notes[i].DeletedAt = &now
		return true
	})
}

// Restore takes a note out of the trash.
func (r *Repository) Restore(id string) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 || !r.notes[i].IsTrashed() {
			return false
		}
		r.notes[i].DeletedAt = nil
		return true
	})
}

// Purge removes a note permanently, trashed or not.
func (r *Repository) Purge(id string) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
		return true
	})
}

// EmptyTrash permanently removes every trashed note.
func (r *Repository) EmptyTrash() {
	r.mutate(func() bool {
		kept := make([]models.Note, 0, len(r.notes))
		for _, n := range r.notes {
			if !n.IsTrashed() {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(r.notes) {
			return false
		}
		r.notes = kept
		return true
	})
}

// TogglePin flips the pinned flag.
func (r *Repository) TogglePin(id string) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		r.notes[i].Pinned = !r.notes[i].Pinned
		r.notes[i].Touch(r.now())
		return true
	})
}

// ToggleFavorite flips the favorite flag.
func (r *Repository) ToggleFavorite(id string) {
	r.mutate(func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		r.notes[i].Favorite = !r.notes[i].Favorite
		r.notes[i].Touch(r.now())
		return true
	})
}

// RestoreVersion makes a historical version live again. The current content
// becomes the newest version and the restored entry leaves the history.
func (r *Repository) RestoreVersion(noteID, versionID string) {
	r.mutate(func() bool {
		i := r.index(noteID)
		if i < 0 {
			return false
		}
		n := &r.notes[i]
		vi := n.FindVersion(versionID)
		if vi < 0 {
			return false
		}
		target := n.VersionHistory[vi]

		rest := make([]models.NoteVersion, 0, len(n.VersionHistory)-1)
		rest = append(rest, n.VersionHistory[:vi]...)
		rest = append(rest, n.VersionHistory[vi+1:]...)
		n.VersionHistory = models.PushVersion(rest, n.Snapshot(r.newID()))

		n.Title = target.Title
		n.Description = target.Description
		n.Touch(r.now())
		return true
	})
}

// Import merges incoming notes. Unknown ids are prepended in the given
// order; known ids replace the existing note in place. Nothing is deleted.
// When an id repeats in incoming, its first occurrence wins.
func (r *Repository) Import(incoming []models.Note) {
	r.mutate(func() bool {
		existing := make(map[string]int, len(r.notes))
		for i, n := range r.notes {
			existing[n.ID] = i
		}

		seen := make(map[string]bool, len(incoming))
		changed := false
		var added []models.Note
		for _, n := range incoming {
			if n.ID == "" || seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			changed = true
			n = normalize(n)
			if i, ok := existing[n.ID]; ok {
				r.notes[i] = n
				continue
			}
			added = append(added, n)
		}

		r.notes = append(added, r.notes...)
		return changed
	})
}

// Notes returns a copy of the whole collection in order.
func (r *Repository) Notes() []models.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.notes)
}

// Active returns notes not in the trash, in collection order.
func (r *Repository) Active() []models.Note {
	return r.filter(func(n *models.Note) bool { return !n.IsTrashed() })
}

// Trash returns trashed notes, in collection order.
func (r *Repository) Trash() []models.Note {
	return r.filter(func(n *models.Note) bool { return n.IsTrashed() })
}

func (r *Repository) filter(keep func(*models.Note) bool) []models.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Note, 0, len(r.notes))
	for i := range r.notes {
		if keep(&r.notes[i]) {
			out = append(out, r.notes[i].Clone())
		}
	}
	return out
}

// Get returns the note with the given id.
func (r *Repository) Get(id string) (models.Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return models.Note{}, false
	}
	return r.notes[i].Clone(), true
}

// ResolvePrefix finds a note by full id or id prefix (minimum 6 chars).
func (r *Repository) ResolvePrefix(prefix string) (models.Note, error) {
	if n, ok := r.Get(prefix); ok {
		return n, nil
	}
	if len(prefix) < minPrefixLen {
		return models.Note{}, ErrPrefixTooShort
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []int
	for i := range r.notes {
		if strings.HasPrefix(r.notes[i].ID, prefix) {
			matches = append(matches, i)
		}
	}
	switch len(matches) {
	case 0:
		return models.Note{}, ErrNoteNotFound
	case 1:
		return r.notes[matches[0]].Clone(), nil
	default:
		return models.Note{}, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(matches))
	}
}

// ResolveVersion finds a version of n by full id or unique id prefix.
func ResolveVersion(n models.Note, prefix string) (models.NoteVersion, error) {
	if i := n.FindVersion(prefix); i >= 0 {
		return n.VersionHistory[i], nil
	}
	var found []models.NoteVersion
	if prefix != "" {
		for _, v := range n.VersionHistory {
			if strings.HasPrefix(v.ID, prefix) {
				found = append(found, v)
			}
		}
	}
	switch len(found) {
	case 0:
		return models.NoteVersion{}, ErrVersionNotFound
	case 1:
		return found[0], nil
	default:
		return models.NoteVersion{}, fmt.Errorf("%w: %d versions", ErrAmbiguousPrefix, len(found))
	}
}

// Now returns the repository's current time.
func (r *Repository) Now() time.Time {
	return r.now()
}

// TrashExpiry returns the configured retention window.
func (r *Repository) TrashExpiry() time.Duration {
	return r.expiry
}
