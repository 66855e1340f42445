// ABOUTME: Tests for filtering, sorting and collection summaries.
// ABOUTME: Covers filter composition, sort order and trash countdown.

package query

import (
	"testing"
	"time"

	"github.com/harper/notebook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

func note(id, title string, mutate func(*models.Note)) models.Note {
	n := models.NewNote(id, title, "", models.CategoryPersonal, models.ColorYellow, models.PriorityMedium, base)
	if mutate != nil {
		mutate(&n)
	}
	return n
}

func ids(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestFilterComposition(t *testing.T) {
	notes := []models.Note{
		note("A", "a", func(n *models.Note) { n.Category = models.CategoryWork; n.Pinned = true }),
		note("B", "b", func(n *models.Note) { n.Category = models.CategoryWork }),
		note("C", "c", func(n *models.Note) { n.Category = models.CategoryStudy; n.Pinned = true }),
	}
	f := DefaultFilter()
	f.Category = models.CategoryWork
	f.PinnedOnly = true

	got := FilterAndSort(notes, f, SortNewest)
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestFilterSelectors(t *testing.T) {
	notes := []models.Note{
		note("1", "one", func(n *models.Note) { n.Color = models.ColorBlue; n.Priority = models.PriorityHigh }),
		note("2", "two", func(n *models.Note) { n.Color = models.ColorBlue; n.Favorite = true }),
		note("3", "three", func(n *models.Note) { n.Color = models.ColorPink; n.Priority = models.PriorityHigh; n.Favorite = true }),
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"default matches all", DefaultFilter(), []string{"1", "2", "3"}},
		{"zero value matches all", Filter{}, []string{"1", "2", "3"}},
		{"color", Filter{Color: models.ColorBlue}, []string{"1", "2"}},
		{"priority", Filter{Priority: models.PriorityHigh}, []string{"1", "3"}},
		{"favorites", Filter{FavoritesOnly: true}, []string{"2", "3"}},
		{"color and favorites", Filter{Color: models.ColorBlue, FavoritesOnly: true}, []string{"2"}},
		{"no match", Filter{Category: models.CategoryIdeas}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(notes, tt.filter, "")
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch(t *testing.T) {
	notes := []models.Note{
		note("title", "Quarterly PLAN", nil),
		note("body", "misc", func(n *models.Note) { n.Description = "<p>the <strong>plan</strong> is</p>" }),
		note("category", "misc", func(n *models.Note) { n.Category = models.CategoryIdeas }),
		note("markup-only", "misc", func(n *models.Note) { n.Description = `<p class="plan">text</p>` }),
	}

	got := FilterAndSort(notes, Filter{Search: "Plan"}, "")
	assert.Equal(t, []string{"title", "body"}, ids(got), "tag attributes are not searchable")

	got = FilterAndSort(notes, Filter{Search: "idea"}, "")
	assert.Equal(t, []string{"category"}, ids(got))
}

func TestSortNewestOldestUpdated(t *testing.T) {
	t1, t2, t3 := base, base.Add(time.Hour), base.Add(2*time.Hour)
	notes := []models.Note{
		note("t2", "b", func(n *models.Note) { n.CreatedAt = t2; n.UpdatedAt = t2 }),
		note("t1", "a", func(n *models.Note) { n.CreatedAt = t1; n.UpdatedAt = t3.Add(time.Hour) }),
		note("t3", "c", func(n *models.Note) { n.CreatedAt = t3; n.UpdatedAt = t3 }),
	}

	assert.Equal(t, []string{"t3", "t2", "t1"}, ids(FilterAndSort(notes, Filter{}, SortNewest)))
	assert.Equal(t, []string{"t1", "t2", "t3"}, ids(FilterAndSort(notes, Filter{}, SortOldest)))
	assert.Equal(t, []string{"t1", "t3", "t2"}, ids(FilterAndSort(notes, Filter{}, SortUpdated)))
	assert.Equal(t, "t2", notes[0].ID, "input slice is not reordered")
}

func TestSortAlphabeticalIsLocaleAware(t *testing.T) {
	notes := []models.Note{
		note("1", "Banana", nil),
		note("2", "apple", nil),
		note("3", "Cherry", nil),
	}

	got := FilterAndSort(notes, Filter{}, SortAlphabetical)
	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, titles)
}

func TestSortIsStable(t *testing.T) {
	notes := []models.Note{note("x", "same", nil), note("y", "same", nil), note("z", "same", nil)}
	assert.Equal(t, []string{"x", "y", "z"}, ids(FilterAndSort(notes, Filter{}, SortNewest)))
	assert.Equal(t, []string{"x", "y", "z"}, ids(FilterAndSort(notes, Filter{}, SortAlphabetical)))
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("Alphabetical")
	require.NoError(t, err)
	assert.Equal(t, SortAlphabetical, s)

	_, err = ParseSort("random")
	assert.Error(t, err)
}

func TestSplitPinned(t *testing.T) {
	notes := []models.Note{
		note("1", "a", func(n *models.Note) { n.Pinned = true }),
		note("2", "b", nil),
		note("3", "c", func(n *models.Note) { n.Pinned = true }),
	}
	pinned, unpinned := SplitPinned(notes)
	assert.Equal(t, []string{"1", "3"}, ids(pinned))
	assert.Equal(t, []string{"2"}, ids(unpinned))
}

func TestSummarize(t *testing.T) {
	deleted := base
	notes := []models.Note{
		note("1", "a", func(n *models.Note) { n.Pinned = true; n.Favorite = true }),
		note("2", "b", func(n *models.Note) { n.Favorite = true }),
		note("3", "c", func(n *models.Note) { n.Pinned = true; n.DeletedAt = &deleted }),
	}
	assert.Equal(t, Stats{Total: 3, Active: 2, Pinned: 1, Favorites: 2, Trashed: 1}, Summarize(notes))
}

func TestDaysLeft(t *testing.T) {
	week := 7 * 24 * time.Hour
	deleted := base
	n := note("t", "t", func(n *models.Note) { n.DeletedAt = &deleted })

	assert.Equal(t, 7, DaysLeft(&n, base, week))
	assert.Equal(t, 7, DaysLeft(&n, base.Add(time.Hour), week))
	assert.Equal(t, 1, DaysLeft(&n, base.Add(6*24*time.Hour+time.Hour), week))
	assert.Equal(t, 0, DaysLeft(&n, base.Add(week), week))

	active := note("a", "a", nil)
	assert.Equal(t, -1, DaysLeft(&active, base, week))
}
