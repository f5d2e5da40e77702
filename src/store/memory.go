// Package store provides an in-memory store implementation.
package store

import (
	"context"
	"sync"

	"caselight-agent/src/contracts"
)

// MemoryStore is an in-memory implementation of SavedStore.
// Useful for testing and throwaway sessions.
type MemoryStore struct {
	mu         sync.RWMutex
	candidates []contracts.Candidate
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns a copy of every saved candidate.
func (s *MemoryStore) List(ctx context.Context) ([]contracts.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contracts.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out, nil
}

// Save stores a candidate unless an equivalent entry already exists.
func (s *MemoryStore) Save(ctx context.Context, candidate contracts.Candidate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.candidates {
		if isDuplicate(existing, candidate) {
			return contracts.StatusDuplicate, nil
		}
	}
	s.candidates = append(s.candidates, candidate)
	return contracts.StatusOK, nil
}

// Delete removes a candidate by id.
func (s *MemoryStore) Delete(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.candidates {
		if existing.ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			return contracts.StatusOK, nil
		}
	}
	return contracts.StatusNotFound, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
