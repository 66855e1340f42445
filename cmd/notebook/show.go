// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders the description as markdown in the terminal.

package main

import (
	"fmt"

	"github.com/harper/notebook/internal/markup"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a note",
	Long:  `Display a note's metadata and description.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolve(args[0])
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")

		fmt.Print(ui.FormatNoteHeader(&note))
		if raw {
			fmt.Println(note.Description)
			return nil
		}

		rendered, err := ui.FormatNoteContent(markup.ToMarkdown(note.Description))
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print the stored markup unrendered")
	rootCmd.AddCommand(showCmd)
}
