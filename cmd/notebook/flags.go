// ABOUTME: Shared flag parsing for note metadata and list filters.
// ABOUTME: Converts raw flag strings into model enums and query filters.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/query"
	"github.com/spf13/cobra"
)

func addMetadataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "category (Personal|Work|Study|Ideas)")
	cmd.Flags().String("color", "", "color (yellow|blue|green|pink|purple)")
	cmd.Flags().StringP("priority", "p", "", "priority (low|medium|high)")
}

// applyMetadataFlags overwrites draft fields for every metadata flag that was set.
func applyMetadataFlags(cmd *cobra.Command, d *notes.Draft) error {
	if cmd.Flags().Changed("category") {
		raw, _ := cmd.Flags().GetString("category")
		c, err := models.ParseCategory(raw)
		if err != nil {
			return err
		}
		d.Category = c
	}
	if cmd.Flags().Changed("color") {
		raw, _ := cmd.Flags().GetString("color")
		c, err := models.ParseColor(raw)
		if err != nil {
			return err
		}
		d.Color = c
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		p, err := models.ParsePriority(raw)
		if err != nil {
			return err
		}
		d.Priority = p
	}
	return nil
}

// buildFilter reads list flags into a filter and sort order.
func buildFilter(cmd *cobra.Command) (query.Filter, query.Sort, error) {
	f := query.DefaultFilter()
	f.Search, _ = cmd.Flags().GetString("search")
	f.PinnedOnly, _ = cmd.Flags().GetBool("pinned")
	f.FavoritesOnly, _ = cmd.Flags().GetBool("favorites")

	if raw, _ := cmd.Flags().GetString("category"); raw != "" && raw != query.All {
		c, err := models.ParseCategory(raw)
		if err != nil {
			return f, "", err
		}
		f.Category = c
	}
	if raw, _ := cmd.Flags().GetString("color"); raw != "" && raw != query.All {
		c, err := models.ParseColor(raw)
		if err != nil {
			return f, "", err
		}
		f.Color = c
	}
	if raw, _ := cmd.Flags().GetString("priority"); raw != "" && raw != query.All {
		p, err := models.ParsePriority(raw)
		if err != nil {
			return f, "", err
		}
		f.Priority = p
	}

	rawSort, _ := cmd.Flags().GetString("sort")
	s, err := query.ParseSort(rawSort)
	if err != nil {
		return f, "", err
	}
	return f, s, nil
}

// confirm asks a yes/no question on stdin. Anything but y/yes is no.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
