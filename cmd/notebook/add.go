// ABOUTME: Add command for creating new notes.
// ABOUTME: Description comes from --description, --file, or $EDITOR.

package main

import (
	"fmt"
	"os"

	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new note",
	Long:  `Create a new note with the given title. The description (HTML markup) can be provided via --description, --file, or $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := notes.DefaultDraft()
		draft.Title = args[0]
		if err := applyMetadataFlags(cmd, &draft); err != nil {
			return err
		}

		descFlag, _ := cmd.Flags().GetString("description")
		fileFlag, _ := cmd.Flags().GetString("file")

		switch {
		case cmd.Flags().Changed("description"):
			draft.Description = descFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			draft.Description = string(data)
		default:
			content, err := openEditor("")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			draft.Description = content
		}

		session := repo.NewDraftSession(draft)
		note, err := session.Commit()
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		if pin, _ := cmd.Flags().GetBool("pin"); pin {
			repo.TogglePin(note.ID)
		}
		if fav, _ := cmd.Flags().GetBool("favorite"); fav {
			repo.ToggleFavorite(note.ID)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created note %s", ui.ShortID(note.ID))))
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "note description (inline)")
	addCmd.Flags().String("file", "", "read description from file")
	addCmd.Flags().Bool("pin", false, "pin the new note")
	addCmd.Flags().Bool("favorite", false, "mark the new note as favorite")
	addMetadataFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
