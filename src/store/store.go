// Package store defines the interface for the saved-witness store and
// provides its implementations.
package store

import (
	"context"

	"caselight-agent/src/contracts"
)

// SavedStore is the persistence contract behind the save/delete workflow.
// The remote backend is the usual source of truth; the file and postgres
// implementations give the client a saved list when no backend is configured.
type SavedStore interface {
	// List returns every saved candidate. An empty store yields an empty
	// slice, not an error.
	List(ctx context.Context) ([]contracts.Candidate, error)

	// Save stores a candidate and returns "ok", or "duplicate" when an entry
	// with the same identity already exists. Duplicate is success: the store
	// is unchanged and no error is returned.
	Save(ctx context.Context, candidate contracts.Candidate) (string, error)

	// Delete removes a candidate by id, returning "ok" when an entry was
	// removed and "not_found" when nothing matched.
	Delete(ctx context.Context, id string) (string, error)

	// Close releases any underlying resources.
	Close() error
}

// isDuplicate reports whether an existing entry matches the candidate being
// saved: same id, or same name and organization. The name/organization rule
// catches re-saves of a candidate whose id was re-derived between searches.
func isDuplicate(existing, incoming contracts.Candidate) bool {
	if existing.ID == incoming.ID {
		return true
	}
	return existing.Name == incoming.Name && existing.Organization == incoming.Organization
}
