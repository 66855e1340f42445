// ABOUTME: Pin and favorite toggle commands.
// ABOUTME: Both flip the flag and report its new state.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

func toggleCommand(use, short string, toggle func(id string), state func(n models.Note) bool, on, off string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id-prefix>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := resolve(args[0])
			if err != nil {
				return err
			}
			toggle(note.ID)

			updated, _ := repo.Get(note.ID)
			verb := off
			if state(updated) {
				verb = on
			}
			fmt.Println(ui.Success(fmt.Sprintf("%s note %s", verb, ui.ShortID(note.ID))))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(
		toggleCommand("pin", "Pin or unpin a note",
			func(id string) { repo.TogglePin(id) },
			func(n models.Note) bool { return n.Pinned },
			"Pinned", "Unpinned"),
		toggleCommand("fav", "Mark or unmark a note as favorite",
			func(id string) { repo.ToggleFavorite(id) },
			func(n models.Note) bool { return n.Favorite },
			"Favorited", "Unfavorited"),
	)
}
