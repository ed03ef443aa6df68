// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders the note body as terminal markdown via glamour.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samk106/SimpleNotesMD/internal/meta"
	"github.com/samk106/SimpleNotesMD/internal/models"
	"github.com/samk106/SimpleNotesMD/internal/store"
	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Display a note by id. Without an id, shows the most recently created note.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawFlag, _ := cmd.Flags().GetBool("raw")

		var note *models.Note
		var err error
		if len(args) == 0 {
			note, err = noteStore.Latest()
			if errors.Is(err, store.ErrNoteNotFound) {
				return fmt.Errorf("no notes yet")
			}
		} else {
			var id int64
			id, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}
			note, err = noteStore.Get(id)
		}
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		if rawFlag {
			fmt.Print(note.Content)
			return nil
		}

		fmt.Print(ui.FormatNoteHeader(note))
		fmt.Println()
		fmt.Print(ui.RenderMarkdown(meta.Body(note.Content)))
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print raw content including front matter")
	rootCmd.AddCommand(showCmd)
}
