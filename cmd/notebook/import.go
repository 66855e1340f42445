// ABOUTME: Import command for restoring notes from a JSON backup.
// ABOUTME: Known ids are overwritten in place; new ids are added on top.

package main

import (
	"fmt"
	"os"

	"github.com/harper/notebook/internal/transcode"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Import notes",
	Long: `Merge notes from a JSON backup. Notes with an id that already exists
replace the stored note; other notes are added. Nothing is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0]) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return err
		}

		incoming, err := transcode.ParseBackup(data)
		if err != nil {
			return err
		}

		before := len(repo.Notes())
		repo.Import(incoming)
		added := len(repo.Notes()) - before

		fmt.Println(ui.Success(fmt.Sprintf("Imported %d notes (%d new, %d updated)",
			len(incoming), added, len(incoming)-added)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
