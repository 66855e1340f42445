// ABOUTME: Bundle export writing one markdown file per note.
// ABOUTME: Each file starts with YAML frontmatter carrying the note metadata.

package transcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/notebook/internal/markup"
	"github.com/harper/notebook/internal/models"
	"gopkg.in/yaml.v3"
)

type frontmatter struct {
	ID       string          `yaml:"id"`
	Title    string          `yaml:"title"`
	Category models.Category `yaml:"category"`
	Color    models.Color    `yaml:"color"`
	Priority models.Priority `yaml:"priority"`
	Pinned   bool            `yaml:"pinned"`
	Favorite bool            `yaml:"favorite"`
	Created  time.Time       `yaml:"created"`
	Updated  time.Time       `yaml:"updated"`
}

// BundleDocument renders a single note as frontmatter plus markdown body.
func BundleDocument(n models.Note) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		ID:       n.ID,
		Title:    n.Title,
		Category: n.Category,
		Color:    n.Color,
		Priority: n.Priority,
		Pinned:   n.Pinned,
		Favorite: n.Favorite,
		Created:  n.CreatedAt,
		Updated:  n.UpdatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(fm)
	sb.WriteString("---\n\n")
	sb.WriteString(markup.ToMarkdown(n.Description))
	sb.WriteString("\n")
	return sb.String(), nil
}

// ExportBundle writes every active note to dir and returns the paths written.
// Titles that collide get the first eight characters of the note id appended.
func ExportBundle(notes []models.Note, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	used := make(map[string]bool)
	var written []string
	for _, n := range notes {
		if n.IsTrashed() {
			continue
		}
		doc, err := BundleDocument(n)
		if err != nil {
			return written, err
		}

		name := Filename(n, "md")
		if used[name] {
			short := n.ID
			if len(short) > 8 {
				short = short[:8]
			}
			name = strings.TrimSuffix(name, ".md") + "-" + SanitizeFilename(short) + ".md"
		}
		used[name] = true

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
