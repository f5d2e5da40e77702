// Package render produces plain-text representations of candidates for
// actions that leave the TUI: clipboard export and browser handoff.
package render

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"caselight-agent/src/contracts"
	"caselight-agent/src/sanitize"
)

// maxSummarySkills caps the skills line, matching the on-screen badge limit.
const maxSummarySkills = 8

// Summary formats a candidate as a fixed-format plaintext block. Fields are
// emitted in a stable order (name, title, organization, sector, location,
// years experience, similarity, summary, skills, links) and any empty or
// absent field is omitted entirely.
func Summary(c contracts.Candidate) string {
	var lines []string

	add := func(label, value string) {
		if v := sanitize.Field(value); v != "" {
			lines = append(lines, label+": "+v)
		}
	}

	add("Name", c.Name)
	add("Title", c.Title)
	add("Organization", c.Organization)
	add("Sector", c.Sector)
	add("Location", c.Location)
	if c.YearsExperience > 0 {
		lines = append(lines, fmt.Sprintf("Experience: %d years", c.YearsExperience))
	}
	lines = append(lines, fmt.Sprintf("Similarity: %d/100", c.SimilarityScore))
	add("Summary", c.Summary)

	if len(c.Skills) > 0 {
		skills := c.Skills
		if len(skills) > maxSummarySkills {
			skills = skills[:maxSummarySkills]
		}
		lines = append(lines, "Skills: "+strings.Join(sanitize.Fields(skills), ", "))
	}

	if len(c.Links) > 0 {
		lines = append(lines, "Links:")
		for _, link := range c.Links {
			if l := sanitize.Field(link); l != "" {
				lines = append(lines, "  "+l)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// CopySummary writes the candidate's plaintext summary to the system
// clipboard.
func CopySummary(c contracts.Candidate) error {
	if err := clipboard.WriteAll(Summary(c)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
