// Package storage persists one JSON document per collection in a flat
// directory, written atomically via a temp file and rename. A single
// process owns the directory; concurrent processes are not coordinated
// and the last writer wins.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrCorruptFile is returned when a collection file exists but does
	// not contain valid JSON. The caller must not replace it with a
	// default document; that would destroy data.
	ErrCorruptFile = errors.New("collection file is corrupt")

	// ErrUnknownCollection is returned for collection names with no
	// registered default.
	ErrUnknownCollection = errors.New("unknown collection")
)

// DefaultFunc produces the initial document for a collection whose file
// does not exist yet.
type DefaultFunc func() (json.RawMessage, error)

// FileStore reads and writes collection documents under a single
// directory, one <name>.json file per collection. Writes to the same
// collection are serialized by a per-collection lock.
type FileStore struct {
	dir      string
	defaults map[string]DefaultFunc

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory if needed and returns a store for it.
// defaults maps collection names to their first-run document; only
// registered collections can be loaded or saved.
func New(dir string, defaults map[string]DefaultFunc) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		dir:      dir,
		defaults: defaults,
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

// Known reports whether the collection name has a registered default.
func (s *FileStore) Known(name string) bool {
	_, ok := s.defaults[name]
	return ok
}

func (s *FileStore) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load returns the collection's wrapper document. If the file is
// missing it seeds the registered default and persists it before
// returning, so a second Load reads the same document back from disk.
// Seeding happens under the collection lock, so concurrent first loads
// produce exactly one default.
func (s *FileStore) Load(name string) (json.RawMessage, error) {
	def, ok := s.defaults[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}

	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		doc, derr := def()
		if derr != nil {
			return nil, fmt.Errorf("build default for %q: %w", name, derr)
		}
		if werr := s.write(name, doc); werr != nil {
			return nil, werr
		}
		log.WithField("collection", name).Info("seeded default collection file")
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %q: %w", name, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrCorruptFile, s.path(name))
	}
	return data, nil
}

// Save overwrites the collection's file with the given document. The
// document replaces the file atomically: a crash mid-save leaves either
// the old document or the new one, never a partial write.
func (s *FileStore) Save(name string, doc json.RawMessage) error {
	if _, ok := s.defaults[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	if !json.Valid(doc) {
		return fmt.Errorf("refusing to save invalid JSON for %q", name)
	}

	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return s.write(name, doc)
}

// write assumes the collection lock is held. The temp file lives in the
// same directory so the rename stays on one filesystem.
func (s *FileStore) write(name string, doc json.RawMessage) error {
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %q: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync collection %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %q: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %q: %w", name, err)
	}
	return nil
}
