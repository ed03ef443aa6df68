// ABOUTME: Edit command for modifying an existing note.
// ABOUTME: Opens the note in $EDITOR and persists the result.

package main

import (
	"fmt"
	"strconv"

	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long:  `Open a note's content in $EDITOR. Title, tags, and summary are re-derived from the edited content on save.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		note, err := noteStore.Get(id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		edited, err := openEditor(note.Content)
		if err != nil {
			return fmt.Errorf("failed to open editor: %w", err)
		}
		if edited == note.Content {
			fmt.Println("No changes.")
			return nil
		}

		note.Content = edited
		if err := noteStore.Put(note); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated note %d (%s)", note.ID, note.Title)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
