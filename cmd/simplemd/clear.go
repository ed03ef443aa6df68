// ABOUTME: Clear command for deleting every note.
// ABOUTME: Destructive; requires confirmation unless --force is given.

package main

import (
	"fmt"

	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notes",
	Long:  `Delete every note in the store. Sync configuration is kept.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		forceFlag, _ := cmd.Flags().GetBool("force")

		count, err := noteStore.Count()
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Println("Nothing to delete.")
			return nil
		}

		if !forceFlag && !confirm(fmt.Sprintf("Delete ALL %d notes? This cannot be undone!", count)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := noteStore.DeleteAll(); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}

		fmt.Println(ui.Success("All notes have been deleted."))
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("force", false, "skip confirmation")
	rootCmd.AddCommand(clearCmd)
}
