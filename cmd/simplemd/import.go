// ABOUTME: Import command for restoring notes from a zip backup.
// ABOUTME: Every markdown entry in the archive becomes a new note.

package main

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <backup.zip>",
	Short: "Import notes from a zip backup",
	Long:  `Create a new note from every .md file in the archive. Titles, tags, and summaries are re-derived from each file's front matter.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := zip.OpenReader(args[0])
		if err != nil {
			return fmt.Errorf("failed to open backup: %w", err)
		}
		defer r.Close()

		imported := 0
		for _, entry := range r.File {
			if !strings.HasSuffix(entry.Name, ".md") {
				continue
			}

			rc, err := entry.Open()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", entry.Name, err)
			}
			content, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", entry.Name, err)
			}

			if _, err := noteStore.Create(string(content)); err != nil {
				return fmt.Errorf("failed to import %s: %w", entry.Name, err)
			}
			imported++
		}

		if imported == 0 {
			return fmt.Errorf("no markdown files found in %s", args[0])
		}

		fmt.Println(ui.Success(fmt.Sprintf("Imported %d notes", imported)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
