// Package store provides a JSON-file store implementation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"caselight-agent/src/contracts"
)

// FileStore persists saved candidates as a JSON array on disk. The file is
// created on demand; a corrupt or unreadable file is treated as empty rather
// than an error, so a damaged store degrades to a fresh one.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file store at path, creating parent directories as
// needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// List returns every well-formed saved candidate. Entries without an id are
// skipped.
func (s *FileStore) List(ctx context.Context) ([]contracts.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.load()
	out := make([]contracts.Candidate, 0, len(saved))
	for _, c := range saved {
		if c.ID == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Save appends a candidate unless an equivalent entry already exists.
func (s *FileStore) Save(ctx context.Context, candidate contracts.Candidate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.load()
	for _, existing := range saved {
		if isDuplicate(existing, candidate) {
			return contracts.StatusDuplicate, nil
		}
	}

	saved = append(saved, candidate)
	if err := s.write(saved); err != nil {
		return "", err
	}
	return contracts.StatusOK, nil
}

// Delete removes a candidate by id, rewriting the file without the entry.
func (s *FileStore) Delete(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.load()
	kept := make([]contracts.Candidate, 0, len(saved))
	removed := false
	for _, existing := range saved {
		if existing.ID == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		return contracts.StatusNotFound, nil
	}
	if err := s.write(kept); err != nil {
		return "", err
	}
	return contracts.StatusOK, nil
}

// Close is a no-op: every operation opens and closes the file itself.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() []contracts.Candidate {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var saved []contracts.Candidate
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil
	}
	return saved
}

func (s *FileStore) write(saved []contracts.Candidate) error {
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal saved candidates: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
