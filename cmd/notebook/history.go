// ABOUTME: History command for listing and restoring note versions.
// ABOUTME: Restoring keeps the current text as a new version.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <id-prefix>",
	Short: "Show or restore previous versions of a note",
	Long: `List the saved versions of a note, most recent first. With --restore,
bring back a version's title and description; the current text becomes a version.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}

		versionPrefix, _ := cmd.Flags().GetString("restore")
		if versionPrefix == "" {
			if len(note.VersionHistory) == 0 {
				fmt.Println("No previous versions.")
				return nil
			}
			fmt.Print(ui.FormatVersionList(note.VersionHistory))
			return nil
		}

		version, err := notes.ResolveVersion(note, versionPrefix)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		repo.RestoreVersion(note.ID, version.ID)
		fmt.Println(ui.Success(fmt.Sprintf("Restored note %s to version %s", ui.ShortID(note.ID), ui.ShortID(version.ID))))
		return nil
	},
}

func init() {
	historyCmd.Flags().StringP("restore", "r", "", "version ID or prefix to restore")
	rootCmd.AddCommand(historyCmd)
}
