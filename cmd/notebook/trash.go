// ABOUTME: Trash commands for listing, restoring and purging trashed notes.
// ABOUTME: Listing shows how many days each note has before it expires.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/query"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "List trashed notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		trashed := repo.Trash()
		if len(trashed) == 0 {
			fmt.Println("Trash is empty.")
			return nil
		}
		now := repo.Now()
		for i := range trashed {
			fmt.Print(ui.FormatTrashItem(&trashed[i], query.DaysLeft(&trashed[i], now, repo.TrashExpiry())))
		}
		return nil
	},
}

var trashRestoreCmd = &cobra.Command{
	Use:   "restore <id-prefix>",
	Short: "Restore a note from the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}
		if !note.IsTrashed() {
			fmt.Println("Note is not in the trash.")
			return nil
		}
		repo.Restore(note.ID)
		fmt.Println(ui.Success(fmt.Sprintf("Restored note %s", ui.ShortID(note.ID))))
		return nil
	},
}

var trashPurgeCmd = &cobra.Command{
	Use:   "purge <id-prefix>",
	Short: "Permanently delete a trashed note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}
		repo.Purge(note.ID)
		fmt.Println(ui.Success(fmt.Sprintf("Deleted note %s", ui.ShortID(note.ID))))
		return nil
	},
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently delete everything in the trash",
	RunE: func(cmd *cobra.Command, args []string) error {
		count := len(repo.Trash())
		if count == 0 {
			fmt.Println("Trash is empty.")
			return nil
		}
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm(fmt.Sprintf("Permanently delete %d notes? [y/N] ", count)) {
			fmt.Println("Cancelled.")
			return nil
		}
		repo.EmptyTrash()
		fmt.Println(ui.Success(fmt.Sprintf("Deleted %d notes", count)))
		return nil
	},
}

func init() {
	trashEmptyCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	trashCmd.AddCommand(trashRestoreCmd, trashPurgeCmd, trashEmptyCmd)
	rootCmd.AddCommand(trashCmd)
}
