// Package saved maintains the local cache of saved witness candidates and
// reconciles it against the saved store through an explicit per-candidate
// state machine:
//
//	unsaved -> saving -> saved
//	saved -> deleting -> unsaved
//
// Transitions are split into Begin/Complete pairs so the network call can run
// between them: the caller begins a transition, performs the store call, and
// completes the transition with the outcome. All mutation happens on the
// caller's single event loop, so the reconciler needs no locking. The cache
// is advisory: it reflects the most recent locally-resolved outcome, not
// necessarily the store's current truth.
package saved

import (
	"github.com/google/uuid"

	"caselight-agent/src/contracts"
	"caselight-agent/src/logger"
)

// State is the reconciliation state of one candidate.
type State int

const (
	StateUnsaved State = iota
	StateSaving
	StateSaved
	StateDeleting
)

// Outcome classifies a completed transition for user feedback.
type Outcome int

const (
	OutcomeSaved Outcome = iota
	OutcomeAlreadySaved
	OutcomeSaveFailed
	OutcomeDeleted
	OutcomeDeleteFailed
)

// Reconciler owns the local saved-candidate cache.
type Reconciler struct {
	log    logger.Logger
	cache  map[string]contracts.Candidate
	order  []string
	states map[string]State
}

// New creates an empty reconciler.
func New(log logger.Logger) *Reconciler {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Reconciler{
		log:    log,
		cache:  make(map[string]contracts.Candidate),
		states: make(map[string]State),
	}
}

// Prime populates the cache from the store's saved list, fetched once at
// startup. Entries without an id are skipped. Calling Prime after a fetch
// failure with an empty list is valid: the UI degrades to saving without
// prior history.
func (r *Reconciler) Prime(saved []contracts.Candidate) {
	for _, c := range saved {
		if c.ID == "" {
			continue
		}
		if _, ok := r.cache[c.ID]; ok {
			continue
		}
		r.cache[c.ID] = c
		r.order = append(r.order, c.ID)
		r.states[c.ID] = StateSaved
	}
}

// State returns the current state for a candidate id.
func (r *Reconciler) State(id string) State {
	return r.states[id]
}

// IsSaved reports whether the candidate is present in the local cache.
func (r *Reconciler) IsSaved(id string) bool {
	_, ok := r.cache[id]
	return ok
}

// Busy reports whether a network-bound transition is pending for the
// candidate; the corresponding action control must be disabled.
func (r *Reconciler) Busy(id string) bool {
	s := r.states[id]
	return s == StateSaving || s == StateDeleting
}

// candidateNamespace seeds the derived ids for candidates the backend sent
// without one.
var candidateNamespace = uuid.MustParse("6f1c24c8-9f57-4a6e-b1d0-3e8a5c7f2d91")

// EnsureID returns the candidate with a stable id: the backend's when
// present, otherwise one derived from name and organization. Repeated calls
// for the same candidate yield the same id, so the per-candidate state
// machine keys correctly even for id-less candidates.
func EnsureID(c contracts.Candidate) contracts.Candidate {
	if c.ID == "" {
		c.ID = uuid.NewSHA1(candidateNamespace, []byte(c.Name+"\x00"+c.Organization)).String()
	}
	return c
}

// BeginSave moves a candidate into the saving state. It returns the
// candidate to send (with a derived id when the backend supplied none) and
// false when the transition is rejected: a save already pending, or the
// candidate already saved. A rejected begin must not produce a request.
func (r *Reconciler) BeginSave(c contracts.Candidate) (contracts.Candidate, bool) {
	c = EnsureID(c)
	if r.states[c.ID] != StateUnsaved {
		return c, false
	}
	r.states[c.ID] = StateSaving
	return c, true
}

// CompleteSave resolves a pending save with the store's response. Duplicate
// status is success with distinct feedback. On failure the cache is left
// untouched and the candidate returns to unsaved so the action re-enables.
func (r *Reconciler) CompleteSave(c contracts.Candidate, status string, err error) Outcome {
	if err != nil {
		r.log.Error("save failed for candidate %s: %v", c.ID, err)
		r.states[c.ID] = StateUnsaved
		return OutcomeSaveFailed
	}

	if _, ok := r.cache[c.ID]; !ok {
		r.cache[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	r.states[c.ID] = StateSaved

	if status == contracts.StatusDuplicate {
		return OutcomeAlreadySaved
	}
	return OutcomeSaved
}

// BeginDelete moves a saved candidate into the deleting state. Only a
// candidate currently in the saved state may be deleted.
func (r *Reconciler) BeginDelete(id string) bool {
	if r.states[id] != StateSaved {
		return false
	}
	r.states[id] = StateDeleting
	return true
}

// CompleteDelete resolves a pending delete. Only an explicit "ok" status
// removes the cache entry; any other status or an error leaves the cache
// untouched and the entry saved.
func (r *Reconciler) CompleteDelete(id, status string, err error) Outcome {
	if err != nil {
		r.log.Error("delete failed for candidate %s: %v", id, err)
		r.states[id] = StateSaved
		return OutcomeDeleteFailed
	}
	if status != contracts.StatusOK {
		r.log.Info("delete of candidate %s returned status %q, keeping local entry", id, status)
		r.states[id] = StateSaved
		return OutcomeDeleteFailed
	}

	delete(r.cache, id)
	delete(r.states, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return OutcomeDeleted
}

// Saved returns the cached candidates in insertion order.
func (r *Reconciler) Saved() []contracts.Candidate {
	out := make([]contracts.Candidate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cache[id])
	}
	return out
}

// Len returns the number of cached candidates.
func (r *Reconciler) Len() int {
	return len(r.cache)
}
