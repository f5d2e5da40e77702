package filter

import (
	"reflect"
	"testing"

	"caselight-agent/src/contracts"
)

func sampleResults() []contracts.Candidate {
	return []contracts.Candidate{
		{ID: "a", Name: "A", SimilarityScore: 90, YearsExperience: 5, Sector: "Pharma", Location: "NY"},
		{ID: "b", Name: "B", SimilarityScore: 40, YearsExperience: 1, Sector: "Tech", Location: "CA"},
	}
}

func TestApply_SimilarityThreshold(t *testing.T) {
	// Scenario from the search contract: minSimilarity=50 keeps only "a".
	got := Apply(sampleResults(), Params{MinSimilarity: 50})

	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("Apply() = %v, want only candidate a", got)
	}
}

func TestApply_ZeroParamsMatchAll(t *testing.T) {
	results := sampleResults()
	got := Apply(results, Params{})

	if !reflect.DeepEqual(got, results) {
		t.Errorf("zero params should match everything, got %v", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	results := sampleResults()
	snapshot := make([]contracts.Candidate, len(results))
	copy(snapshot, results)

	Apply(results, Params{MinSimilarity: 50, Sector: "pharma"})

	if !reflect.DeepEqual(results, snapshot) {
		t.Error("Apply() mutated its input")
	}
}

func TestApply_SubsetAndPredicates(t *testing.T) {
	results := []contracts.Candidate{
		{ID: "1", SimilarityScore: 95, YearsExperience: 10, Sector: "Pharmaceuticals", Location: "New York"},
		{ID: "2", SimilarityScore: 80, YearsExperience: 2, Sector: "Pharma", Location: "Boston"},
		{ID: "3", SimilarityScore: 55, YearsExperience: 20, Sector: "Construction", Location: "New Orleans"},
		{ID: "4", SimilarityScore: 30, YearsExperience: 0, Sector: "", Location: ""},
	}

	params := []Params{
		{},
		{MinSimilarity: 50},
		{MinExperience: 5},
		{Sector: "pharma"},
		{Location: "new"},
		{MinSimilarity: 60, MinExperience: 5, Sector: "Pharma", Location: "york"},
	}

	byID := make(map[string]contracts.Candidate, len(results))
	for _, c := range results {
		byID[c.ID] = c
	}

	for _, p := range params {
		filtered := Apply(results, p)

		// Every member is drawn from the input set...
		for _, c := range filtered {
			if _, ok := byID[c.ID]; !ok {
				t.Fatalf("params %+v produced candidate %q not in input", p, c.ID)
			}
			// ...and satisfies all four predicates simultaneously.
			if !Matches(c, p) {
				t.Errorf("params %+v let through non-matching candidate %q", p, c.ID)
			}
		}

		// Nothing that matches was dropped.
		wantLen := 0
		for _, c := range results {
			if Matches(c, p) {
				wantLen++
			}
		}
		if len(filtered) != wantLen {
			t.Errorf("params %+v: got %d results, want %d", p, len(filtered), wantLen)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		candidate contracts.Candidate
		params    Params
		want      bool
	}{
		{
			name:      "boundary similarity passes",
			candidate: contracts.Candidate{SimilarityScore: 50},
			params:    Params{MinSimilarity: 50},
			want:      true,
		},
		{
			name:      "below similarity fails",
			candidate: contracts.Candidate{SimilarityScore: 49},
			params:    Params{MinSimilarity: 50},
			want:      false,
		},
		{
			name:      "missing experience treated as zero",
			candidate: contracts.Candidate{SimilarityScore: 90},
			params:    Params{MinExperience: 1},
			want:      false,
		},
		{
			name:      "sector substring case-insensitive",
			candidate: contracts.Candidate{Sector: "Pharmaceuticals"},
			params:    Params{Sector: "PHARMA"},
			want:      true,
		},
		{
			name:      "location mismatch fails",
			candidate: contracts.Candidate{Location: "Chicago"},
			params:    Params{Location: "NY"},
			want:      false,
		},
		{
			name:      "empty substring filters match everything",
			candidate: contracts.Candidate{},
			params:    Params{Sector: "", Location: ""},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.candidate, tt.params); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_EmptyViewIsNotNil(t *testing.T) {
	// A non-empty result set with no matches must be distinguishable from
	// "no search run yet" (a nil result set): the filtered view is an empty,
	// non-nil slice.
	got := Apply(sampleResults(), Params{MinSimilarity: 99})
	if got == nil {
		t.Fatal("Apply() returned nil for an empty filtered view")
	}
	if len(got) != 0 {
		t.Fatalf("Apply() = %v, want empty", got)
	}
}
