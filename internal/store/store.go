// Package store persists the whole application state as a single JSON
// document. All access goes through View/Update so readers see a
// consistent document and every mutation is written back before the
// request completes.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

type Store struct {
	mu   sync.RWMutex
	path string
	doc  *Document
}

// Open loads the document at path. A missing file seeds the initial
// document and writes it; a present but unreadable file is logged and
// replaced in memory by the seed document, matching the previous
// backend's recovery behavior.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: seedDocument()}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := s.persistLocked(); err != nil {
			return nil, fmt.Errorf("failed to write seed document: %w", err)
		}
	case err != nil:
		slog.Error("Failed to read data file, using defaults", "path", path, "error", err)
	default:
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			slog.Error("Failed to parse data file, using defaults", "path", path, "error", err)
		} else {
			doc.reconcileSequences()
			s.doc = &doc
		}
	}

	return s, nil
}

// View runs fn with read access to the document. fn must not retain or
// mutate the document.
func (s *Store) View(fn func(d *Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Update runs fn with write access to the document and persists the
// result. If fn returns an error the document may have been partially
// mutated but is not persisted, so the error should only be returned
// before mutation or when the mutation is aborted whole. Persistence
// failures are logged, not returned: the in-memory mutation stands and
// the caller's response is unaffected.
func (s *Store) Update(fn func(d *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}

	if err := s.persistLocked(); err != nil {
		slog.Error("Failed to persist data file", "path", s.path, "error", err)
	}
	return nil
}

// persistLocked writes the document atomically: marshal to a unique
// temp file in the same directory, then rename over the target. The
// caller must hold the write lock (or have exclusive access).
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf("%s.tmp-%s", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}
