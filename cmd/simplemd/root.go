// ABOUTME: Root command wiring for the simplemd CLI.
// ABOUTME: Owns the store handle and sync engine for the process lifetime.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/samk106/SimpleNotesMD/internal/store"
	"github.com/samk106/SimpleNotesMD/internal/sync"
	"github.com/spf13/cobra"
)

// The root command owns these for the process lifetime; subcommands never
// open their own handles.
var (
	noteStore  *store.Store
	syncEngine *sync.Engine
)

const welcomeContent = `---
title: Welcome to SimpleMD
tags: welcome, getting-started
---

# Welcome to SimpleMD! 👋

This is your markdown notebook. Start writing your notes here.

## Features
- **Markdown Support**: Write in markdown with front matter metadata
- **Multiple Notes**: Create and organize multiple notes
- **GitHub Sync**: Mirror your notes to a private repository
- **Export/Import**: Backup your notes as ZIP files

## Quick Tips
- Put a front matter block at the top of a note to set its title and tags
- Run "simplemd new" to create a note
- Run "simplemd sync connect" to set up GitHub sync

Happy writing! ✨`

var rootCmd = &cobra.Command{
	Use:           "simplemd",
	Short:         "Markdown notes with front matter and one-way GitHub sync",
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		if dataDir == "" {
			dataDir = store.DefaultPath()
		}

		var err error
		noteStore, err = store.Open(dataDir)
		if err != nil {
			return fmt.Errorf("open note store: %w", err)
		}
		syncEngine = sync.NewEngine(noteStore)

		return seedWelcomeNote()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if noteStore != nil {
			_ = noteStore.Close()
		}
	},
}

// seedWelcomeNote creates the welcome note the first time the store is
// opened empty.
func seedWelcomeNote() error {
	count, err := noteStore.Count()
	if err != nil || count > 0 {
		return err
	}
	_, err = noteStore.Create(welcomeContent)
	return err
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "note store directory (default: XDG data dir)")
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "simplemd-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}
