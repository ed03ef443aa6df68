// ABOUTME: Note CRUD and ordered retrieval against the badger store.
// ABOUTME: Derived metadata is re-computed from content on every write.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/samk106/SimpleNotesMD/internal/meta"
	"github.com/samk106/SimpleNotesMD/internal/models"
)

func noteKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", notePrefix, id))
}

// applyMeta overwrites the derived fields from the note's content. This runs
// on every write so the stored fields never diverge from the extractor.
func applyMeta(note *models.Note) {
	m := meta.Parse(note.Content)
	note.Title = m.Title
	note.Tags = m.Tags
	note.Summary = m.Summary
}

// Create allocates a new id from the wall clock and persists a note with
// metadata derived from content. Ids are bumped past the previous allocation
// when the clock has not advanced, so they stay unique and monotonic.
func (s *Store) Create(content string) (*models.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.mu.Unlock()

	note := &models.Note{
		ID:      id,
		Content: content,
		Folder:  models.DefaultFolder,
		Updated: id,
	}
	applyMeta(note)

	if err := s.write(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Get retrieves a note by id.
func (s *Store) Get(id int64) (*models.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var note models.Note
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(noteKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &note)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Put upserts a note by id. The derived fields are overwritten from the
// note's current content and the updated timestamp is set to now.
func (s *Store) Put(note *models.Note) error {
	if err := s.ready(); err != nil {
		return err
	}
	if note.Folder == "" {
		note.Folder = models.DefaultFolder
	}
	applyMeta(note)
	note.Updated = time.Now().UnixMilli()
	return s.write(note)
}

func (s *Store) write(note *models.Note) error {
	encoded, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(noteKey(note.ID), encoded)
	})
}

// Delete removes a note. Deleting a non-existent id is not an error.
func (s *Store) Delete(id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(noteKey(id))
	})
}

// DeleteAll clears every note record. Config records are untouched.
func (s *Store) DeleteAll() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.DropPrefix([]byte(notePrefix))
}

// List returns all notes in insertion order. A non-empty titleFilter keeps
// only notes whose title contains it, case-insensitively.
func (s *Store) List(titleFilter string) ([]*models.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	filter := strings.ToLower(titleFilter)
	var notes []*models.Note

	prefix := []byte(notePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var note models.Note
				if err := json.Unmarshal(val, &note); err != nil {
					return err
				}
				if filter != "" && !strings.Contains(strings.ToLower(note.Title), filter) {
					return nil
				}
				notes = append(notes, &note)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Latest returns the note at the end of the store's key order. Because ids
// are allocated monotonically this is the most recently created note, not
// necessarily the one with the highest updated timestamp.
func (s *Store) Latest() (*models.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var note *models.Note
	prefix := []byte(notePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the end of the note keyspace and step back into it.
		seek := append([]byte(notePrefix), 0xFF)
		it.Seek(seek)
		if !it.ValidForPrefix(prefix) {
			return badger.ErrKeyNotFound
		}
		return it.Item().Value(func(val []byte) error {
			var n models.Note
			if err := json.Unmarshal(val, &n); err != nil {
				return err
			}
			note = &n
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Count returns the number of stored notes.
func (s *Store) Count() (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	count := 0
	prefix := []byte(notePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
