// ABOUTME: Export command for backing up notes as a zip archive.
// ABOUTME: One markdown file per note plus a YAML manifest of metadata.

package main

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/samk106/SimpleNotesMD/internal/models"
	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultBackupName = "SimpleMD_Backup.zip"

type manifestEntry struct {
	ID      int64    `yaml:"id"`
	Title   string   `yaml:"title"`
	Tags    []string `yaml:"tags,omitempty"`
	Folder  string   `yaml:"folder"`
	Updated int64    `yaml:"updated"`
	File    string   `yaml:"file"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes to a zip backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = defaultBackupName
		}

		notes, err := noteStore.List("")
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		if len(notes) == 0 {
			return fmt.Errorf("nothing to export")
		}

		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		defer f.Close()

		zw := zip.NewWriter(f)

		var manifest []manifestEntry
		used := make(map[string]bool)
		for _, note := range notes {
			name := exportFilename(note, used)

			w, err := zw.Create(name)
			if err != nil {
				return fmt.Errorf("failed to add %s: %w", name, err)
			}
			if _, err := w.Write([]byte(note.Content)); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}

			manifest = append(manifest, manifestEntry{
				ID:      note.ID,
				Title:   note.Title,
				Tags:    note.Tags,
				Folder:  note.Folder,
				Updated: note.Updated,
				File:    name,
			})
		}

		mw, err := zw.Create("manifest.yaml")
		if err != nil {
			return fmt.Errorf("failed to add manifest: %w", err)
		}
		encoded, err := yaml.Marshal(manifest)
		if err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
		if _, err := mw.Write(encoded); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}

		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finalize backup: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputPath)))
		return nil
	},
}

// exportFilename derives a safe, unique archive name from the note title.
func exportFilename(note *models.Note, used map[string]bool) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	base := replacer.Replace(note.Title)
	if len(base) > 100 {
		base = base[:100]
	}

	name := base + ".md"
	if used[name] {
		name = fmt.Sprintf("%s-%d.md", base, note.ID)
	}
	used[name] = true
	return name
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "backup file path (default "+defaultBackupName+")")
	rootCmd.AddCommand(exportCmd)
}
