// ABOUTME: List command for displaying active notes.
// ABOUTME: Supports search, category/color/priority filters and sort orders.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/query"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long:    `List active notes. Pinned notes are shown in their own section above the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, sort, err := buildFilter(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		found := query.FilterAndSort(repo.Active(), filter, sort)
		if len(found) == 0 {
			fmt.Println("No notes found.")
			return nil
		}
		if limit > 0 && len(found) > limit {
			found = found[:limit]
		}

		pinned, others := query.SplitPinned(found)
		printSection("Pinned", pinned, len(others) > 0)
		printSection("Notes", others, len(pinned) > 0)

		fmt.Print("\n" + ui.FormatStats(query.Summarize(repo.Notes())))
		return nil
	},
}

func printSection(name string, notes []models.Note, withHeader bool) {
	if len(notes) == 0 {
		return
	}
	if withHeader {
		fmt.Print(ui.FormatSectionHeader(name))
	}
	for i := range notes {
		fmt.Print(ui.FormatNoteListItem(&notes[i]))
	}
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "search title, description and category")
	listCmd.Flags().StringP("category", "c", query.All, "filter by category")
	listCmd.Flags().String("color", query.All, "filter by color")
	listCmd.Flags().StringP("priority", "p", query.All, "filter by priority")
	listCmd.Flags().Bool("pinned", false, "only pinned notes")
	listCmd.Flags().Bool("favorites", false, "only favorite notes")
	listCmd.Flags().String("sort", string(query.SortNewest), "sort order (newest|oldest|alphabetical|updated)")
	listCmd.Flags().IntP("limit", "n", 0, "maximum number of notes (0 for all)")
	rootCmd.AddCommand(listCmd)
}
