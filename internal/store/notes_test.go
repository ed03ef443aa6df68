// ABOUTME: Tests for note store operations.
// ABOUTME: Covers CRUD, ordering, metadata derivation, and id allocation.

package store

import (
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t)

	note, err := s.Create("---\ntitle: First\ntags: a, b\n---\nbody")
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("failed to get note: %v", err)
	}
	if got.Title != "First" {
		t.Errorf("expected title %q, got %q", "First", got.Title)
	}
	if len(got.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", got.Tags)
	}
	if got.Summary != "body" {
		t.Errorf("expected summary %q, got %q", "body", got.Summary)
	}
	if got.Folder != "General" {
		t.Errorf("expected default folder, got %q", got.Folder)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(12345)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestPutRederivesMetadata(t *testing.T) {
	s := openTestStore(t)

	note, err := s.Create("---\ntitle: Before\n---\nx")
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	note.Content = "---\ntitle: After\ntags: new\n---\nchanged body"
	note.Title = "stale value that must be overwritten"
	if err := s.Put(note); err != nil {
		t.Fatalf("failed to put note: %v", err)
	}

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("failed to get note: %v", err)
	}
	if got.Title != "After" {
		t.Errorf("expected re-derived title %q, got %q", "After", got.Title)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "new" {
		t.Errorf("expected re-derived tags, got %v", got.Tags)
	}
	if got.Summary != "changed body" {
		t.Errorf("expected re-derived summary, got %q", got.Summary)
	}
}

func TestPutIdempotent(t *testing.T) {
	s := openTestStore(t)

	note, err := s.Create("content")
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	if err := s.Put(note); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := s.Put(note); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	notes, err := s.List("")
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("expected 1 note after repeated puts, got %d", len(notes))
	}
	got, _ := s.Get(note.ID)
	if got.Content != "content" {
		t.Errorf("expected content unchanged, got %q", got.Content)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	note, _ := s.Create("to delete")
	if err := s.Delete(note.ID); err != nil {
		t.Fatalf("failed to delete note: %v", err)
	}

	if _, err := s.Get(note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound after delete, got %v", err)
	}

	notes, _ := s.List("")
	for _, n := range notes {
		if n.ID == note.ID {
			t.Error("deleted note still present in list")
		}
	}

	// Deleting again is not an error.
	if err := s.Delete(note.ID); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}

func TestDeleteAllKeepsConfig(t *testing.T) {
	s := openTestStore(t)

	s.Create("one")
	s.Create("two")
	if err := s.SaveConfig("github", []byte(`{"connected":true}`)); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if err := s.DeleteAll(); err != nil {
		t.Fatalf("failed to delete all: %v", err)
	}

	count, _ := s.Count()
	if count != 0 {
		t.Errorf("expected empty store, got %d notes", count)
	}
	if _, err := s.LoadConfig("github"); err != nil {
		t.Errorf("expected config to survive DeleteAll, got %v", err)
	}
}

func TestListFilter(t *testing.T) {
	s := openTestStore(t)

	s.Create("---\ntitle: Shopping List\n---\nx")
	s.Create("---\ntitle: Meeting Notes\n---\nx")
	s.Create("---\ntitle: Another list\n---\nx")

	notes, err := s.List("list")
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("expected 2 filtered notes, got %d", len(notes))
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := openTestStore(t)

	a, _ := s.Create("---\ntitle: A\n---\nx")
	b, _ := s.Create("---\ntitle: B\n---\nx")
	c, _ := s.Create("---\ntitle: C\n---\nx")

	notes, err := s.List("")
	if err != nil {
		t.Fatalf("failed to list notes: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	for i, want := range []int64{a.ID, b.ID, c.ID} {
		if notes[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, notes[i].ID)
		}
	}
}

func TestLatestIsInsertionOrder(t *testing.T) {
	s := openTestStore(t)

	a, _ := s.Create("---\ntitle: A\n---\nx")
	b, _ := s.Create("---\ntitle: B\n---\nx")

	// Re-writing A gives it a newer updated timestamp than B, but B is
	// still the latest by insertion order.
	if err := s.Put(a); err != nil {
		t.Fatalf("failed to put note: %v", err)
	}

	latest, err := s.Latest()
	if err != nil {
		t.Fatalf("failed to get latest: %v", err)
	}
	if latest.ID != b.ID {
		t.Errorf("expected latest to be %d (insertion order), got %d", b.ID, latest.ID)
	}

	gotA, _ := s.Get(a.ID)
	if gotA.Updated < b.Updated {
		t.Error("test premise broken: rewritten note should have newer updated stamp")
	}
}

func TestLatestEmpty(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Latest(); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound on empty store, got %v", err)
	}
}

func TestMonotonicIDs(t *testing.T) {
	s := openTestStore(t)

	var prev int64
	for i := 0; i < 50; i++ {
		note, err := s.Create("x")
		if err != nil {
			t.Fatalf("failed to create note: %v", err)
		}
		if note.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", note.ID, prev)
		}
		prev = note.ID
	}
}

func TestConfigRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadConfig("github"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}

	raw := []byte(`{"connected":true,"repo":"notes"}`)
	if err := s.SaveConfig("github", raw); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	got, err := s.LoadConfig("github")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("expected %s, got %s", raw, got)
	}

	if err := s.DeleteConfig("github"); err != nil {
		t.Fatalf("failed to delete config: %v", err)
	}
	if _, err := s.LoadConfig("github"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound after delete, got %v", err)
	}
}

func TestClosedStore(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	if _, err := s.Create("x"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed from Create, got %v", err)
	}
	if _, err := s.Get(1); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed from Get, got %v", err)
	}
	if _, err := s.List(""); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed from List, got %v", err)
	}
}

func TestReopenContinuesIDs(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	first, _ := s.Create("x")
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s.Close()

	second, err := s.Create("y")
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("expected id after reopen (%d) to exceed %d", second.ID, first.ID)
	}
}
