// ABOUTME: Single-note plain text and markdown renderings.
// ABOUTME: Also derives filesystem-safe filenames from note titles.

package transcode

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harper/notebook/internal/markup"
	"github.com/harper/notebook/internal/models"
)

// TimeLayout formats timestamps in exported documents.
const TimeLayout = "2006-01-02 15:04"

func stamp(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// ExportText renders a note as plain text with all markup stripped.
func ExportText(n models.Note) string {
	width := utf8.RuneCountInString(n.Title)
	if width == 0 {
		width = 8
	}

	var sb strings.Builder
	sb.WriteString(n.Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", width))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Category: %s\n", n.Category)
	fmt.Fprintf(&sb, "Priority: %s\n", n.Priority)
	fmt.Fprintf(&sb, "Created: %s\n", stamp(n.CreatedAt))
	fmt.Fprintf(&sb, "Updated: %s\n", stamp(n.UpdatedAt))
	sb.WriteString("\n")
	sb.WriteString(markup.PlainText(n.Description))
	return sb.String()
}

// ExportMarkdown renders a note as markdown: a metadata block followed by
// the converted description.
func ExportMarkdown(n models.Note) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", n.Title)
	fmt.Fprintf(&sb, "**Category:** %s  \n", n.Category)
	fmt.Fprintf(&sb, "**Priority:** %s  \n", n.Priority)
	fmt.Fprintf(&sb, "**Created:** %s  \n", stamp(n.CreatedAt))
	fmt.Fprintf(&sb, "**Updated:** %s\n\n", stamp(n.UpdatedAt))
	sb.WriteString("---\n\n")
	sb.WriteString(markup.ToMarkdown(n.Description))
	return sb.String()
}

// Filename returns "<title>.<ext>" with path-hostile characters replaced,
// or "note.<ext>" for an untitled note.
func Filename(n models.Note, ext string) string {
	name := SanitizeFilename(strings.TrimSpace(n.Title))
	if name == "" {
		name = "note"
	}
	return name + "." + ext
}

// SanitizeFilename replaces characters that are unsafe in file names and
// caps the result at 100 bytes without splitting a rune.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		cut := 100
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}
