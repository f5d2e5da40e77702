package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"caselight-agent/src/contracts"
	"caselight-agent/src/sanitize"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCandidateTable writes candidates as an aligned table.
func printCandidateTable(w io.Writer, candidates []contracts.Candidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No candidates.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSIM\tEXP\tSECTOR\tNAME\tORGANIZATION\tLOCATION")
	for _, c := range candidates {
		exp := "—"
		if c.YearsExperience > 0 {
			exp = fmt.Sprintf("%d", c.YearsExperience)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.SimilarityScore,
			exp,
			sanitize.Field(c.Sector),
			sanitize.Field(c.Name),
			sanitize.Field(c.Organization),
			sanitize.Field(c.Location),
		)
	}
	tw.Flush()
}

// printAnalysis writes an issue-spotting result as readable text.
func printAnalysis(w io.Writer, r *contracts.AnalysisResult) {
	if r == nil {
		fmt.Fprintln(w, "No result.")
		return
	}

	if r.Summary != "" {
		fmt.Fprintf(w, "Summary: %s\n", sanitize.Text(r.Summary))
	}
	for i, f := range r.Findings {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, sanitize.Text(f.Issue))
		if f.Risk != "" {
			fmt.Fprintf(w, "   Risk: %s\n", sanitize.Field(f.Risk))
		}
		if f.Suggestion != "" {
			fmt.Fprintf(w, "   Suggestion: %s\n", sanitize.Text(f.Suggestion))
		}
		if f.Span != nil {
			fmt.Fprintf(w, "   Where: page %d, chars %d-%d\n", f.Span.Page, f.Span.Start, f.Span.End)
		}
	}
	if len(r.Citations) > 0 {
		fmt.Fprintln(w, "\nCitations:")
		for _, c := range r.Citations {
			fmt.Fprintf(w, "  p.%d: %s\n", c.Page, sanitize.Field(c.Snippet))
		}
	}
	if r.Summary == "" && len(r.Findings) == 0 {
		raw := strings.TrimSpace(r.RawJSON)
		if raw == "" {
			fmt.Fprintln(w, "The analysis returned no usable result.")
			return
		}
		fmt.Fprintln(w, sanitize.Text(raw))
	}
}
