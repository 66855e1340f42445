// ABOUTME: Tests for the SQLite slot store.
// ABOUTME: Covers schema creation, upsert semantics and missing keys.

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *SlotStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := openTest(t)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, store.ErrSlotNotFound)

	_, err = s.UpdatedAt("nope")
	assert.ErrorIs(t, err, store.ErrSlotNotFound)
}

func TestSetOverwrites(t *testing.T) {
	s := openTest(t)

	require.NoError(t, s.Set("slot", []byte(`[1]`)))
	require.NoError(t, s.Set("slot", []byte(`[2]`)))

	got, err := s.Get("slot")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(got))

	ts, err := s.UpdatedAt("slot")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestAdapterOverSQLite(t *testing.T) {
	s := openTest(t)
	adapter := store.NewAdapter(s)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	adapter.Save([]models.Note{
		models.NewNote("id-1", "Groceries", "<p>milk</p>", models.CategoryPersonal, models.ColorGreen, models.PriorityLow, now),
	})

	loaded := adapter.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "Groceries", loaded[0].Title)
	assert.True(t, loaded[0].CreatedAt.Equal(now))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "notebook.db"), DefaultPath("/data"))
}
