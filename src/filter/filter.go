// Package filter applies client-side predicate filters over a witness search
// result set. Filtering is a pure function of the result set and the
// parameters: the input is never mutated and repeated calls with identical
// inputs produce identical output.
package filter

import (
	"strings"

	"caselight-agent/src/contracts"
)

// Params holds the active filter parameters. The zero value matches every
// candidate.
type Params struct {
	// MinSimilarity is the inclusive lower bound on similarity_score.
	MinSimilarity int
	// MinExperience is the inclusive lower bound on years_experience.
	// Candidates without an experience value are treated as 0 years.
	MinExperience int
	// Sector, when non-empty, must be a case-insensitive substring of the
	// candidate's sector.
	Sector string
	// Location, when non-empty, must be a case-insensitive substring of the
	// candidate's location.
	Location string
}

// IsZero reports whether no filter is active.
func (p Params) IsZero() bool {
	return p == Params{}
}

// Matches reports whether a single candidate passes all four predicates.
func Matches(c contracts.Candidate, p Params) bool {
	if c.SimilarityScore < p.MinSimilarity {
		return false
	}
	if c.YearsExperience < p.MinExperience {
		return false
	}
	if p.Sector != "" && !containsFold(c.Sector, p.Sector) {
		return false
	}
	if p.Location != "" && !containsFold(c.Location, p.Location) {
		return false
	}
	return true
}

// Apply returns the order-preserving subset of results passing p. The result
// is always a fresh slice; results itself is left untouched.
func Apply(results []contracts.Candidate, p Params) []contracts.Candidate {
	filtered := make([]contracts.Candidate, 0, len(results))
	for _, c := range results {
		if Matches(c, p) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
