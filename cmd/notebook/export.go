// ABOUTME: Export command for backing up or sharing notes.
// ABOUTME: Supports JSON backup, plain text, markdown and a frontmatter bundle.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/harper/notebook/internal/transcode"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long: `Export notes.

Formats:
  backup    JSON array of all active notes (re-importable)
  text      one note as plain text (requires --note)
  markdown  one note as markdown (requires --note)
  bundle    one markdown file with YAML frontmatter per active note

With no --output, backup, text and markdown print to stdout. Use --output with
a directory to write the conventional filename there, or --clipboard to copy
a single note instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		notePrefix, _ := cmd.Flags().GetString("note")

		switch format {
		case "backup", "json":
			data, err := transcode.ExportBackup(repo.Active())
			if err != nil {
				return err
			}
			return writeOutput(outputPath, transcode.BackupFilename, data)
		case "text", "txt", "markdown", "md":
			if notePrefix == "" {
				return fmt.Errorf("--note is required for %s export", format)
			}
			note, err := resolve(notePrefix)
			if err != nil {
				return err
			}
			name, body := transcode.Filename(note, "md"), transcode.ExportMarkdown(note)
			if format == "text" || format == "txt" {
				name, body = transcode.Filename(note, "txt"), transcode.ExportText(note)
			}
			if toClipboard, _ := cmd.Flags().GetBool("clipboard"); toClipboard {
				if err := clipboard.WriteAll(body); err != nil {
					return fmt.Errorf("copy failed: %w", err)
				}
				fmt.Println(ui.Success(fmt.Sprintf("Copied note %s", ui.ShortID(note.ID))))
				return nil
			}
			return writeOutput(outputPath, name, []byte(body))
		case "bundle":
			if outputPath == "" {
				outputPath = "export"
			}
			written, err := transcode.ExportBundle(repo.Active(), outputPath)
			if err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", len(written), outputPath)))
			return nil
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

// writeOutput prints to stdout, writes to a file, or writes name inside a directory.
func writeOutput(outputPath, name string, data []byte) error {
	if outputPath == "" || outputPath == "-" {
		fmt.Println(string(data))
		return nil
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, name)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, ui.Success(fmt.Sprintf("Wrote %s", outputPath)))
	return nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "backup", "export format (backup|text|markdown|bundle)")
	exportCmd.Flags().StringP("output", "o", "", "output file or directory")
	exportCmd.Flags().StringP("note", "n", "", "note ID prefix for single-note formats")
	exportCmd.Flags().Bool("clipboard", false, "copy a single-note export to the clipboard")
	rootCmd.AddCommand(exportCmd)
}
