// ABOUTME: Terminal UI formatting for notebook output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/query"
)

const timeLayout = "2006-01-02 15:04"

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var noteColors = map[models.Color]*color.Color{
	models.ColorYellow: color.New(color.FgYellow),
	models.ColorBlue:   color.New(color.FgBlue),
	models.ColorGreen:  color.New(color.FgGreen),
	models.ColorPink:   color.New(color.FgHiMagenta),
	models.ColorPurple: color.New(color.FgMagenta),
}

// ShortID is the display prefix of a note id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func swatch(c models.Color) string {
	if cc, ok := noteColors[c]; ok {
		return cc.Sprint("●")
	}
	return "●"
}

func markers(note *models.Note) string {
	var m []string
	if note.Pinned {
		m = append(m, yellow("pinned"))
	}
	if note.Favorite {
		m = append(m, red("♥"))
	}
	return strings.Join(m, " ")
}

func priorityLabel(p models.Priority) string {
	if p == models.PriorityHigh {
		return red(string(p))
	}
	return faint(string(p))
}

func FormatNoteListItem(note *models.Note) string {
	var sb strings.Builder

	title := note.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("  %s %s  %s", swatch(note.Color), faint(ShortID(note.ID)), bold(title)))
	if m := markers(note); m != "" {
		sb.WriteString("  " + m)
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("             %s %s  %s\n",
		cyan(string(note.Category)),
		priorityLabel(note.Priority),
		faint("updated "+note.UpdatedAt.Format(timeLayout))))

	return sb.String()
}

// FormatTrashItem shows a trashed note with its remaining days.
func FormatTrashItem(note *models.Note, daysLeft int) string {
	unit := "days"
	if daysLeft == 1 {
		unit = "day"
	}
	return fmt.Sprintf("  %s  %s  %s\n",
		faint(ShortID(note.ID)),
		bold(note.Title),
		yellow(fmt.Sprintf("%d %s left", daysLeft, unit)))
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s", swatch(note.Color), bold(note.Title)))
	if m := markers(note); m != "" {
		sb.WriteString("  " + m)
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID)))
	sb.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		faint("Category:"), cyan(string(note.Category)),
		faint("Priority:"), priorityLabel(note.Priority)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Format(timeLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.UpdatedAt.Format(timeLayout))))
	if n := len(note.VersionHistory); n > 0 {
		sb.WriteString(fmt.Sprintf("%s %d\n", faint("Versions:"), n))
	}

	sb.WriteString(Separator())
	return sb.String()
}

// FormatVersionList lists versions most recent first.
func FormatVersionList(versions []models.NoteVersion) string {
	var sb strings.Builder
	for _, v := range versions {
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			faint(ShortID(v.ID)),
			faint(v.Timestamp.Format(timeLayout)),
			bold(v.Title)))
	}
	return sb.String()
}

func FormatStats(s query.Stats) string {
	return faint(fmt.Sprintf("%d notes, %d pinned, %d favorites, %d in trash",
		s.Active, s.Pinned, s.Favorites, s.Trashed)) + "\n"
}

func FormatSectionHeader(name string) string {
	return fmt.Sprintf("\n%s\n", bold(name))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
