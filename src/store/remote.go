// Package store provides the remote backend adapter.
package store

import (
	"context"

	"caselight-agent/src/api"
	"caselight-agent/src/contracts"
)

// RemoteStore adapts the backend HTTP API to the SavedStore interface.
// The backend is the source of truth; callers hold only an advisory cache.
type RemoteStore struct {
	client *api.Client
}

// NewRemoteStore wraps a backend API client.
func NewRemoteStore(client *api.Client) *RemoteStore {
	return &RemoteStore{client: client}
}

func (s *RemoteStore) List(ctx context.Context) ([]contracts.Candidate, error) {
	return s.client.SavedWitnesses(ctx)
}

func (s *RemoteStore) Save(ctx context.Context, candidate contracts.Candidate) (string, error) {
	return s.client.SaveWitness(ctx, candidate)
}

func (s *RemoteStore) Delete(ctx context.Context, id string) (string, error) {
	return s.client.DeleteSaved(ctx, id)
}

// Close is a no-op; the HTTP client owns no persistent resources.
func (s *RemoteStore) Close() error {
	return nil
}
