// ABOUTME: Remove command for trashing notes.
// ABOUTME: Notes go to the trash unless --purge deletes them for good.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Move a note to the trash",
	Long: `Move a note to the trash. Trashed notes are removed automatically after
the retention window (7 days by default). Use --purge to delete immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}
		purge, _ := cmd.Flags().GetBool("purge")
		force, _ := cmd.Flags().GetBool("force")

		if !purge {
			repo.Delete(note.ID)
			fmt.Println(ui.Success(fmt.Sprintf("Moved note %s to trash", ui.ShortID(note.ID))))
			return nil
		}

		if !force && !confirm(fmt.Sprintf("Permanently delete note %q (%s)? [y/N] ", note.Title, ui.ShortID(note.ID))) {
			fmt.Println("Cancelled.")
			return nil
		}
		repo.Purge(note.ID)
		fmt.Println(ui.Success(fmt.Sprintf("Deleted note %s", ui.ShortID(note.ID))))
		return nil
	},
}

func init() {
	rmCmd.Flags().Bool("purge", false, "delete permanently instead of trashing")
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
