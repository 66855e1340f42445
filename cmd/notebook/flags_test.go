// ABOUTME: Tests for flag parsing helpers and backend selection.
// ABOUTME: Commands are built fresh so no global state leaks between tests.

package main

import (
	"testing"

	"github.com/harper/notebook/internal/config"
	"github.com/harper/notebook/internal/logging"
	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/query"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "list"}
	cmd.Flags().StringP("search", "s", "", "")
	cmd.Flags().StringP("category", "c", query.All, "")
	cmd.Flags().String("color", query.All, "")
	cmd.Flags().StringP("priority", "p", query.All, "")
	cmd.Flags().Bool("pinned", false, "")
	cmd.Flags().Bool("favorites", false, "")
	cmd.Flags().String("sort", string(query.SortNewest), "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestBuildFilterDefaults(t *testing.T) {
	f, s, err := buildFilter(newListFlags(t))
	require.NoError(t, err)
	assert.Equal(t, query.DefaultFilter(), f)
	assert.Equal(t, query.SortNewest, s)
}

func TestBuildFilterFromFlags(t *testing.T) {
	cmd := newListFlags(t, "-s", "plan", "-c", "work", "--color", "Blue", "--pinned", "--sort", "alphabetical")

	f, s, err := buildFilter(cmd)
	require.NoError(t, err)
	assert.Equal(t, "plan", f.Search)
	assert.Equal(t, models.CategoryWork, f.Category)
	assert.Equal(t, models.ColorBlue, f.Color)
	assert.Equal(t, models.Priority(query.All), f.Priority)
	assert.True(t, f.PinnedOnly)
	assert.False(t, f.FavoritesOnly)
	assert.Equal(t, query.SortAlphabetical, s)
}

func TestBuildFilterRejectsUnknownValues(t *testing.T) {
	_, _, err := buildFilter(newListFlags(t, "-c", "chores"))
	assert.ErrorIs(t, err, models.ErrInvalidCategory)

	_, _, err = buildFilter(newListFlags(t, "--sort", "random"))
	assert.Error(t, err)
}

func TestApplyMetadataFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	addMetadataFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--priority", "high", "--color", "pink"}))

	d := notes.DefaultDraft()
	require.NoError(t, applyMetadataFlags(cmd, &d))
	assert.Equal(t, models.CategoryPersonal, d.Category)
	assert.Equal(t, models.ColorPink, d.Color)
	assert.Equal(t, models.PriorityHigh, d.Priority)

	bad := &cobra.Command{Use: "add"}
	addMetadataFlags(bad)
	require.NoError(t, bad.ParseFlags([]string{"--color", "orange"}))
	assert.ErrorIs(t, applyMetadataFlags(bad, &d), models.ErrInvalidColor)
}

func TestOpenBackendLocalStores(t *testing.T) {
	for _, backend := range []string{config.BackendBadger, config.BackendSQLite, config.BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			c := config.DefaultConfig()
			c.Backend = backend
			c.DataDir = t.TempDir()

			b, err := openBackend(c, logging.Discard())
			require.NoError(t, err)
			defer func() { _ = b.Close() }()

			require.NoError(t, b.Set("slot", []byte(`[]`)))
			got, err := b.Get("slot")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestLastLocalSave(t *testing.T) {
	c := config.DefaultConfig()
	c.Backend = config.BackendSQLite
	c.DataDir = t.TempDir()

	_, ok := lastLocalSave(c)
	assert.False(t, ok, "no database yet")

	b, err := openBackend(c, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, b.Set(c.Slot, []byte(`[]`)))
	require.NoError(t, b.Close())

	ts, ok := lastLocalSave(c)
	require.True(t, ok)
	assert.False(t, ts.IsZero())

	c.Backend = config.BackendBadger
	_, ok = lastLocalSave(c)
	assert.False(t, ok)
}
