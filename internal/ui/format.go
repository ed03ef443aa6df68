// ABOUTME: Terminal output formatting for simplemd.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/samk106/SimpleNotesMD/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatNoteListItem(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(fmt.Sprintf("%d", note.ID)), bold(note.Title)))

	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("      %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(note.Tags, ", "))))
	}

	if note.Summary != "" {
		sb.WriteString(fmt.Sprintf("      %s\n", faint(note.Summary)))
	}

	sb.WriteString(fmt.Sprintf("      %s %s\n",
		faint("Updated:"),
		faint(FormatTimestamp(note.Updated))))

	return sb.String()
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(note.Title)))
	sb.WriteString(fmt.Sprintf("%s %d\n", faint("ID:"), note.ID))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Folder:"), note.Folder))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(FormatTimestamp(note.Updated))))

	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tags:"), cyan(strings.Join(note.Tags, ", "))))
	}

	return sb.String()
}

// FormatTimestamp renders a millisecond timestamp for display.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// RenderMarkdown renders note content for the terminal. Falls back to the
// raw text when the renderer is unavailable.
func RenderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func Separator() string {
	return faint(strings.Repeat("─", 40))
}

func FormatFolderHeader(folder string) string {
	return fmt.Sprintf("\n%s\n", bold(folder))
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
