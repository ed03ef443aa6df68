// ABOUTME: Note model representing a markdown note with derived metadata.
// ABOUTME: Content is the source of truth; title, tags and summary follow it.

package models

// DefaultFolder is assigned to notes that were never filed anywhere.
const DefaultFolder = "General"

type Note struct {
	ID      int64    `json:"id"`
	Content string   `json:"content"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Summary string   `json:"summary"`
	Folder  string   `json:"folder,omitempty"`
	Updated int64    `json:"updated"`
}

// NewNoteTemplate is the front-matter skeleton seeded into fresh notes.
const NewNoteTemplate = "---\ntitle: New Note\ntags: \n---\n"
