// ABOUTME: Query engine deriving filtered and sorted views of notes.
// ABOUTME: Pure functions over a note slice; no repository state is touched.

package query

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/harper/notebook/internal/markup"
	"github.com/harper/notebook/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All disables a selector.
const All = "all"

// Filter narrows a note list. Every active criterion must match.
// Empty selectors behave like All.
type Filter struct {
	Search        string
	Category      models.Category
	Color         models.Color
	Priority      models.Priority
	PinnedOnly    bool
	FavoritesOnly bool
}

// DefaultFilter matches every note.
func DefaultFilter() Filter {
	return Filter{Category: All, Color: All, Priority: All}
}

type Sort string

const (
	SortNewest       Sort = "newest"
	SortOldest       Sort = "oldest"
	SortAlphabetical Sort = "alphabetical"
	SortUpdated      Sort = "updated"
)

var Sorts = []Sort{SortNewest, SortOldest, SortAlphabetical, SortUpdated}

func ParseSort(s string) (Sort, error) {
	for _, so := range Sorts {
		if strings.EqualFold(string(so), strings.TrimSpace(s)) {
			return so, nil
		}
	}
	return "", fmt.Errorf("invalid sort %q (want newest, oldest, alphabetical or updated)", s)
}

func selected[T ~string](sel, v T) bool {
	return sel == "" || sel == All || sel == v
}

// Match reports whether n passes every criterion of f.
func (f Filter) Match(n *models.Note) bool {
	if !selected(f.Category, n.Category) || !selected(f.Color, n.Color) || !selected(f.Priority, n.Priority) {
		return false
	}
	if f.PinnedOnly && !n.Pinned {
		return false
	}
	if f.FavoritesOnly && !n.Favorite {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(n.Title), needle) ||
		strings.Contains(strings.ToLower(markup.PlainText(n.Description)), needle) ||
		strings.Contains(strings.ToLower(string(n.Category)), needle)
}

// FilterAndSort returns the notes passing f ordered by s. Callers pass the
// active subset. The input is not modified; ties keep input order.
func FilterAndSort(notes []models.Note, f Filter, s Sort) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for i := range notes {
		if f.Match(&notes[i]) {
			out = append(out, notes[i])
		}
	}
	SortNotes(out, s)
	return out
}

// SortNotes stably sorts notes in place. Unknown sorts keep input order.
func SortNotes(notes []models.Note, s Sort) {
	switch s {
	case SortNewest:
		sort.SliceStable(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	case SortUpdated:
		sort.SliceStable(notes, func(i, j int) bool { return notes[i].UpdatedAt.After(notes[j].UpdatedAt) })
	case SortAlphabetical:
		// Collators keep scratch buffers; one per call.
		c := collate.New(language.Und)
		sort.SliceStable(notes, func(i, j int) bool { return c.CompareString(notes[i].Title, notes[j].Title) < 0 })
	}
}

// SplitPinned separates pinned notes from the rest, keeping order.
func SplitPinned(notes []models.Note) (pinned, unpinned []models.Note) {
	for _, n := range notes {
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}
	return pinned, unpinned
}

// Stats summarizes a whole collection.
type Stats struct {
	Total     int
	Active    int
	Pinned    int
	Favorites int
	Trashed   int
}

// Summarize counts notes. Pinned and favorite counts cover active notes only.
func Summarize(notes []models.Note) Stats {
	var s Stats
	for _, n := range notes {
		s.Total++
		if n.IsTrashed() {
			s.Trashed++
			continue
		}
		s.Active++
		if n.Pinned {
			s.Pinned++
		}
		if n.Favorite {
			s.Favorites++
		}
	}
	return s
}

// DaysLeft is the number of whole days, rounded up, before a trashed note
// expires. Active notes return -1.
func DaysLeft(n *models.Note, now time.Time, expiry time.Duration) int {
	if n.DeletedAt == nil {
		return -1
	}
	remaining := n.DeletedAt.Add(expiry).Sub(now)
	return int(math.Ceil(remaining.Hours() / 24))
}
