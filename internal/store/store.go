// ABOUTME: Badger-backed persistent store for notes and config records.
// ABOUTME: Notes live under note:<id> keys, config under config:<name> keys.

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrConfigNotFound = errors.New("config not found")
	ErrStoreClosed    = errors.New("store is closed")
)

const (
	notePrefix   = "note:"
	configPrefix = "config:"
)

// Store is the system of record for notes. Keys are zero-padded decimal ids
// so badger's lexicographic key order matches insertion order.
type Store struct {
	db *badger.DB

	// mu serializes id allocation; lastID keeps ids monotonic even when
	// several notes are created within the same millisecond.
	mu     sync.Mutex
	lastID int64
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Store{db: db}
	if last, err := s.Latest(); err == nil {
		s.lastID = last.ID
	} else if !errors.Is(err, ErrNoteNotFound) {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database. Operations after Close return
// ErrStoreClosed.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ready() error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	return nil
}

// DefaultPath returns the XDG data location for the store.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "simplemd", "notes")
}

func configKey(name string) []byte {
	return []byte(configPrefix + name)
}

// SaveConfig stores a raw config record under config:<name>.
func (s *Store) SaveConfig(name string, raw []byte) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(configKey(name), raw)
	})
}

// LoadConfig reads a raw config record, ErrConfigNotFound when absent.
func (s *Store) LoadConfig(name string) ([]byte, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(configKey(name))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DeleteConfig removes a config record; deleting an absent record is not an
// error.
func (s *Store) DeleteConfig(name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(configKey(name))
	})
}
