// ABOUTME: New command for creating notes.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"fmt"
	"os"

	"github.com/samk106/SimpleNotesMD/internal/models"
	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new note",
	Long:  `Create a new note. Content can be provided via --content, --file, or $EDITOR; the title comes from the note's front matter.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		folderFlag, _ := cmd.Flags().GetString("folder")

		var content string
		switch {
		case contentFlag != "":
			content = contentFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		default:
			var err error
			content, err = openEditor(models.NewNoteTemplate)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		note, err := noteStore.Create(content)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		if folderFlag != "" && folderFlag != note.Folder {
			note.Folder = folderFlag
			if err := noteStore.Put(note); err != nil {
				return fmt.Errorf("failed to set folder: %w", err)
			}
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created note %d (%s)", note.ID, note.Title)))
		return nil
	},
}

func init() {
	newCmd.Flags().String("content", "", "note content (inline)")
	newCmd.Flags().String("file", "", "read content from file")
	newCmd.Flags().String("folder", "", "folder to file the note under")
	rootCmd.AddCommand(newCmd)
}
