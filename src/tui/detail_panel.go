package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caselight-agent/src/contracts"
	"caselight-agent/src/sanitize"
)

// maxDetailSkills caps the skill badges shown in the detail panel.
const maxDetailSkills = 8

// setDetailContent fills the detail viewport for the given item.
func (m *MainModel) setDetailContent(item Item) {
	maxWidth := m.detailView.Width - 2
	m.detailView.SetContent(m.renderCandidateDetail(item, maxWidth))
	m.detailView.GotoTop()
}

// renderCandidateDetail renders the full candidate card.
func (m MainModel) renderCandidateDetail(item Item, maxWidth int) string {
	c := item.Candidate
	content := strings.Builder{}

	labelStyle := lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(m.styles.TextPrimary)
	faintStyle := lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Faint(true)

	field := func(label, value string) {
		if v := sanitize.Field(value); v != "" {
			fmt.Fprintf(&content, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(v))
		}
	}

	field("Title", c.Title)
	field("Organization", c.Organization)
	field("Sector", c.Sector)
	field("Location", c.Location)
	if c.YearsExperience > 0 {
		field("Experience", fmt.Sprintf("%d years", c.YearsExperience))
	}

	scoreStyle := valueStyle
	switch {
	case c.SimilarityScore >= 80:
		scoreStyle = lipgloss.NewStyle().Foreground(m.styles.SavedGreen).Bold(true)
	case c.SimilarityScore >= 50:
		scoreStyle = lipgloss.NewStyle().Foreground(m.styles.WarnYellow)
	}
	fmt.Fprintf(&content, "%s %s\n", labelStyle.Render("Similarity:"),
		scoreStyle.Render(fmt.Sprintf("%d/100", c.SimilarityScore)))
	field("Confidence", c.Confidence)

	if item.Saved {
		fmt.Fprintf(&content, "%s\n", lipgloss.NewStyle().Foreground(m.styles.SavedGreen).Render("★ Saved"))
	}

	if summary := sanitize.Text(c.Summary); summary != "" {
		fmt.Fprintf(&content, "\n%s\n%s\n", labelStyle.Render("Summary"), Wrap(summary, maxWidth))
	}

	if len(c.Skills) > 0 {
		skills := sanitize.Fields(c.Skills)
		extra := 0
		if len(skills) > maxDetailSkills {
			extra = len(skills) - maxDetailSkills
			skills = skills[:maxDetailSkills]
		}
		line := strings.Join(skills, ", ")
		if extra > 0 {
			line += faintStyle.Render(fmt.Sprintf(" +%d more", extra))
		}
		fmt.Fprintf(&content, "\n%s\n%s\n", labelStyle.Render("Skills"), Wrap(line, maxWidth))
	}

	if len(c.Emails) > 0 {
		fmt.Fprintf(&content, "\n%s\n", labelStyle.Render("Emails"))
		for _, e := range sanitize.Fields(c.Emails) {
			fmt.Fprintf(&content, "  %s\n", e)
		}
	}

	if len(c.Links) > 0 {
		fmt.Fprintf(&content, "\n%s\n", labelStyle.Render("Links"))
		for _, l := range sanitize.Fields(c.Links) {
			fmt.Fprintf(&content, "  %s\n", l)
		}
	}

	if len(c.Sources) > 0 {
		fmt.Fprintf(&content, "\n%s\n", labelStyle.Render("Sources"))
		for i, s := range c.Sources {
			fmt.Fprintf(&content, "  %d. %s\n", i+1, sanitize.Field(s.URL))
			if snippet := sanitize.Field(s.Snippet); snippet != "" {
				for _, line := range strings.Split(Wrap(snippet, maxWidth-5), "\n") {
					fmt.Fprintf(&content, "     %s\n", faintStyle.Render(line))
				}
			}
		}
	}

	return content.String()
}

// renderAnalysis renders an issue-spotting result: summary, findings, and
// citations. A result the backend could not structure still shows whatever
// raw text came back.
func (m MainModel) renderAnalysis(r *contracts.AnalysisResult, maxWidth int) string {
	content := strings.Builder{}

	labelStyle := lipgloss.NewStyle().Foreground(m.styles.PrimaryBlue).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Faint(true)

	if r == nil || (r.Summary == "" && len(r.Findings) == 0 && r.RawJSON == "") {
		return faintStyle.Render("The analysis returned no usable result.")
	}

	if summary := sanitize.Text(r.Summary); summary != "" {
		fmt.Fprintf(&content, "%s\n%s\n", labelStyle.Render("Summary"), Wrap(summary, maxWidth))
	}

	for i, f := range r.Findings {
		fmt.Fprintf(&content, "\n%s\n", labelStyle.Render(fmt.Sprintf("Finding %d", i+1)))
		if issue := sanitize.Text(f.Issue); issue != "" {
			fmt.Fprintf(&content, "%s\n", Wrap(issue, maxWidth))
		}
		if f.Risk != "" {
			riskStyle := lipgloss.NewStyle().Foreground(m.styles.WarnYellow)
			if strings.EqualFold(f.Risk, "high") {
				riskStyle = lipgloss.NewStyle().Foreground(m.styles.ErrorRed).Bold(true)
			}
			fmt.Fprintf(&content, "Risk: %s\n", riskStyle.Render(sanitize.Field(f.Risk)))
		}
		if suggestion := sanitize.Text(f.Suggestion); suggestion != "" {
			fmt.Fprintf(&content, "Suggestion: %s\n", Wrap(suggestion, maxWidth))
		}
		if f.Span != nil {
			fmt.Fprintf(&content, "%s\n", faintStyle.Render(
				fmt.Sprintf("page %d, chars %d-%d", f.Span.Page, f.Span.Start, f.Span.End)))
		}
	}

	if len(r.Citations) > 0 {
		fmt.Fprintf(&content, "\n%s\n", labelStyle.Render("Citations"))
		for _, cit := range r.Citations {
			fmt.Fprintf(&content, "  p.%d: %s\n", cit.Page, sanitize.Field(cit.Snippet))
		}
	}

	// Structured parse failed but the backend returned something; show it
	// raw rather than nothing.
	if r.Summary == "" && len(r.Findings) == 0 && r.RawJSON != "" {
		fmt.Fprintf(&content, "%s\n%s\n", faintStyle.Render("Unstructured result:"),
			Wrap(sanitize.Text(r.RawJSON), maxWidth))
	}

	return content.String()
}
