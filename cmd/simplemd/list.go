// ABOUTME: List command for displaying notes.
// ABOUTME: Groups notes by folder, with title-search and folder filters.

package main

import (
	"fmt"

	"github.com/samk106/SimpleNotesMD/internal/models"
	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes in creation order, grouped by folder. --search filters by title substring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchFlag, _ := cmd.Flags().GetString("search")
		folderFlag, _ := cmd.Flags().GetString("folder")

		notes, err := noteStore.List(searchFlag)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		if folderFlag != "" {
			filtered := notes[:0]
			for _, n := range notes {
				if n.Folder == folderFlag {
					filtered = append(filtered, n)
				}
			}
			notes = filtered
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		// Preserve creation order inside each folder group.
		byFolder := make(map[string][]*models.Note)
		var folders []string
		for _, n := range notes {
			if _, seen := byFolder[n.Folder]; !seen {
				folders = append(folders, n.Folder)
			}
			byFolder[n.Folder] = append(byFolder[n.Folder], n)
		}

		for _, folder := range folders {
			fmt.Print(ui.FormatFolderHeader(folder))
			for _, n := range byFolder[folder] {
				fmt.Print(ui.FormatNoteListItem(n))
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "filter by title substring")
	listCmd.Flags().String("folder", "", "only show notes in this folder")
	rootCmd.AddCommand(listCmd)
}
