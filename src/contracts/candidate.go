// Package contracts defines the data types exchanged with the legal-analysis backend.
package contracts

// Source is a citation record attached to a candidate.
type Source struct {
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Candidate represents a single witness-search result.
// ID is the primary key for save/delete and deduplication; it is stable
// across fetches within a session and within the saved store.
type Candidate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title,omitempty"`
	Organization    string   `json:"organization,omitempty"`
	Sector          string   `json:"sector,omitempty"`
	Location        string   `json:"location,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Emails          []string `json:"emails,omitempty"`
	Links           []string `json:"links,omitempty"`
	Sources         []Source `json:"sources,omitempty"`
	// SimilarityScore is the server-computed relevance rank in [0, 100].
	SimilarityScore int `json:"similarity_score"`
	// Confidence is the backend's self-assessment: "low", "medium" or "high".
	Confidence string `json:"confidence,omitempty"`
}

// SearchRequest is the body for POST /api/witness_finder/search.
type SearchRequest struct {
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Name        string `json:"name,omitempty"`
	Limit       int    `json:"limit"`
}

// SearchResponse is the response for a witness search. Candidates may be
// absent or null; callers must treat that as an empty result set.
type SearchResponse struct {
	Query      map[string]any `json:"query,omitempty"`
	Candidates []Candidate    `json:"candidates"`
}

// SaveRequest is the body for POST /api/witness_finder/save.
type SaveRequest struct {
	Candidate Candidate `json:"candidate"`
}

// Save/delete status values reported by the saved-witness store.
const (
	StatusOK        = "ok"
	StatusDuplicate = "duplicate"
	StatusNotFound  = "not_found"
)

// SaveResponse reports the outcome of saving a candidate. A duplicate is
// not an error: the candidate was already present under the returned ID.
type SaveResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

// DeleteResponse reports the outcome of deleting a saved candidate.
// Only StatusOK means the entry was removed.
type DeleteResponse struct {
	Status string `json:"status"`
}
