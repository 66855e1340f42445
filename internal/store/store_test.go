// ABOUTME: Tests for the store adapter and badger backend.
// ABOUTME: Covers round trips, missing slots, and fail-soft error containment.

package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harper/notebook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend returns err from every call.
type failingBackend struct {
	data []byte
	err  error
}

func (f *failingBackend) Get(string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func (f *failingBackend) Set(string, []byte) error { return f.err }
func (f *failingBackend) Close() error             { return nil }

func sampleNotes() []models.Note {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	deleted := created.Add(time.Hour)
	return []models.Note{
		models.NewNote("a", "First", "<p>one</p>", models.CategoryWork, models.ColorBlue, models.PriorityHigh, created),
		{
			ID:             "b",
			Title:          "Second",
			Category:       models.CategoryIdeas,
			CreatedAt:      created,
			UpdatedAt:      created,
			DeletedAt:      &deleted,
			VersionHistory: []models.NoteVersion{{ID: "v1", Title: "old", Timestamp: created}},
		},
	}
}

func TestBadgerRoundTrip(t *testing.T) {
	backend, err := OpenBadgerInMemory()
	require.NoError(t, err)
	adapter := NewAdapter(backend, WithLogger(log.New(&bytes.Buffer{})))
	defer func() { _ = adapter.Close() }()

	notes := sampleNotes()
	require.NoError(t, adapter.Write(notes))

	loaded := adapter.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, "a", loaded[0].ID)
	assert.Equal(t, "First", loaded[0].Title)
	assert.Nil(t, loaded[0].DeletedAt)
	require.NotNil(t, loaded[1].DeletedAt)
	assert.True(t, loaded[1].DeletedAt.Equal(*notes[1].DeletedAt))
	assert.Equal(t, "old", loaded[1].VersionHistory[0].Title)
}

func TestBadgerOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	backend, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	adapter := NewAdapter(backend, WithSlot("custom"))
	adapter.Save(sampleNotes())
	require.NoError(t, adapter.Close())

	backend, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	reopened := NewAdapter(backend, WithSlot("custom"))
	defer func() { _ = reopened.Close() }()

	assert.Len(t, reopened.Load(), 2)
	assert.Equal(t, "custom", reopened.Slot())
}

func TestLoadMissingSlotIsEmpty(t *testing.T) {
	backend, err := OpenBadgerInMemory()
	require.NoError(t, err)
	adapter := NewAdapter(backend)
	defer func() { _ = adapter.Close() }()

	notes, err := adapter.Read()
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestLoadMalformedFailsSoft(t *testing.T) {
	var logs bytes.Buffer
	adapter := NewAdapter(&failingBackend{data: []byte("{not json")}, WithLogger(log.New(&logs)))

	_, err := adapter.Read()
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, DefaultSlot, readErr.Slot)

	notes := adapter.Load()
	assert.Empty(t, notes)
	assert.Contains(t, logs.String(), "failed to load notes")
}

func TestSaveFailureIsContained(t *testing.T) {
	var logs bytes.Buffer
	cause := errors.New("disk full")
	adapter := NewAdapter(&failingBackend{err: cause}, WithLogger(log.New(&logs)))

	err := adapter.Write(sampleNotes())
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, cause)

	assert.NotPanics(t, func() { adapter.Save(sampleNotes()) })
	assert.Contains(t, logs.String(), "failed to save notes")
}

func TestReadBackendFailure(t *testing.T) {
	adapter := NewAdapter(&failingBackend{err: errors.New("io")}, WithLogger(log.New(&bytes.Buffer{})))
	_, err := adapter.Read()
	assert.Error(t, err)
	assert.Empty(t, adapter.Load())
}
