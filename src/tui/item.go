package tui

import "caselight-agent/src/contracts"

// Item wraps a candidate for display in the result list. It implements
// bubbles/list.Item.
type Item struct {
	Candidate contracts.Candidate
	Saved     bool
}

// FilterValue is the value used for fuzzy filtering.
func (i Item) FilterValue() string {
	return i.Candidate.Name + " " + i.Candidate.Organization
}

// Title returns the primary text for the item (required by list.Item).
func (i Item) Title() string { return i.Candidate.Name }

// Description returns the secondary text for the item (required by list.Item).
func (i Item) Description() string { return i.Candidate.Organization }
