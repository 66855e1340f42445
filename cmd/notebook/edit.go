// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Metadata comes from flags; the description opens in $EDITOR unless given.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix>",
	Short: "Edit a note",
	Long: `Edit a note. Title and metadata are set with flags. Without --title,
--description or a metadata flag the description opens in $EDITOR.
Changing the title or description keeps the previous text as a version.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}

		session, err := repo.OpenSession(note.ID)
		if err != nil {
			return err
		}
		defer session.Close()

		draft := session.Draft()
		if err := applyMetadataFlags(cmd, &draft); err != nil {
			return err
		}
		if cmd.Flags().Changed("title") {
			draft.Title, _ = cmd.Flags().GetString("title")
		}

		flagsSet := false
		for _, name := range []string{"title", "description", "category", "color", "priority"} {
			flagsSet = flagsSet || cmd.Flags().Changed(name)
		}
		switch {
		case cmd.Flags().Changed("description"):
			draft.Description, _ = cmd.Flags().GetString("description")
		case !flagsSet:
			content, err := openEditor(draft.Description)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			draft.Description = content
		}

		if draft == session.Draft() {
			fmt.Println("No changes made.")
			return nil
		}
		if err := session.Edit(draft); err != nil {
			return err
		}
		updated, err := session.Commit()
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated note %s", ui.ShortID(updated.ID))))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "new title")
	editCmd.Flags().StringP("description", "d", "", "new description")
	addMetadataFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}
