// ABOUTME: Persistent store adapter for the note collection.
// ABOUTME: Serializes the whole collection into one named slot and fails soft.

package store

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/harper/notebook/internal/models"
)

// ErrSlotNotFound is returned by a Backend when the slot has never been written.
var ErrSlotNotFound = errors.New("slot not found")

// Backend is a durable key-value slot store.
type Backend interface {
	Get(slot string) ([]byte, error)
	Set(slot string, value []byte) error
	Close() error
}

// Adapter reads and writes the full note collection to one slot.
// Load and Save never fail to the caller; errors are logged.
type Adapter struct {
	backend Backend
	slot    string
	logger  *log.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithSlot sets the slot name.
func WithSlot(slot string) Option {
	return func(a *Adapter) {
		a.slot = slot
	}
}

// WithLogger sets the logger used for contained storage errors.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) {
		a.logger = l
	}
}

// NewAdapter wraps a backend.
func NewAdapter(backend Backend, opts ...Option) *Adapter {
	a := &Adapter{
		backend: backend,
		slot:    DefaultSlot,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "notes-app-data"

// Slot returns the slot name.
func (a *Adapter) Slot() string {
	return a.slot
}

// Read returns the stored collection. A slot that was never written yields
// an empty collection and no error.
func (a *Adapter) Read() ([]models.Note, error) {
	data, err := a.backend.Get(a.slot)
	if errors.Is(err, ErrSlotNotFound) {
		return []models.Note{}, nil
	}
	if err != nil {
		return nil, &ReadError{Slot: a.slot, Err: err}
	}
	if len(data) == 0 {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, &ReadError{Slot: a.slot, Err: err}
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Write replaces the stored collection.
func (a *Adapter) Write(notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return &WriteError{Slot: a.slot, Err: err}
	}
	if err := a.backend.Set(a.slot, data); err != nil {
		return &WriteError{Slot: a.slot, Err: err}
	}
	return nil
}

// Load is Read with errors contained: a read failure logs and yields an
// empty collection.
func (a *Adapter) Load() []models.Note {
	notes, err := a.Read()
	if err != nil {
		a.logger.Error("failed to load notes", "slot", a.slot, "err", err)
		return []models.Note{}
	}
	return notes
}

// Save is Write with errors contained.
func (a *Adapter) Save(notes []models.Note) {
	if err := a.Write(notes); err != nil {
		a.logger.Error("failed to save notes", "slot", a.slot, "count", len(notes), "err", err)
	}
}

// Close closes the backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}
