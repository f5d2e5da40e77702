package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"caselight-agent/src/filter"
)

// Header represents the top bar: tab strip, active filter summary, and the
// saved-candidate count.
type Header struct {
	filter     filter.Params
	savedCount int
	styles     *StyleConfig
}

// NewHeader creates a new header.
func NewHeader(styles *StyleConfig) Header {
	if styles == nil {
		styles = DefaultStyles()
	}
	return Header{styles: styles}
}

// SetFilter updates the filter summary shown in the header.
func (h *Header) SetFilter(p filter.Params) {
	h.filter = p
}

// SetSavedCount updates the saved-candidate count.
func (h *Header) SetSavedCount(n int) {
	h.savedCount = n
}

// filterSummary renders the active filter as a compact string, or a hint
// when no filter is set.
func (h Header) filterSummary() string {
	if h.filter.IsZero() {
		return "[f] filter"
	}
	var parts []string
	if h.filter.MinSimilarity > 0 {
		parts = append(parts, fmt.Sprintf("sim≥%d", h.filter.MinSimilarity))
	}
	if h.filter.MinExperience > 0 {
		parts = append(parts, fmt.Sprintf("exp≥%d", h.filter.MinExperience))
	}
	if h.filter.Sector != "" {
		parts = append(parts, "sector:"+h.filter.Sector)
	}
	if h.filter.Location != "" {
		parts = append(parts, "loc:"+h.filter.Location)
	}
	return strings.Join(parts, " ")
}

// Render renders the header
func (h Header) Render(width int, tabs TabGroup) string {
	activeTabStyle := lipgloss.NewStyle().
		Foreground(h.styles.PrimaryBlue).
		Bold(true).
		Padding(0, 2)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(h.styles.TextSecondary).
		Padding(0, 2)

	var tabCells []string
	for _, id := range tabs.IDs() {
		label := tabs.Label(id)
		if id == TabSaved && h.savedCount > 0 {
			label = fmt.Sprintf("%s (%d)", label, h.savedCount)
		}
		if id == tabs.Active() {
			tabCells = append(tabCells, activeTabStyle.Render("● "+label))
		} else {
			tabCells = append(tabCells, inactiveTabStyle.Render(label))
		}
	}

	filterStyle := lipgloss.NewStyle().
		Foreground(h.styles.TextSecondary).
		Padding(0, 2)
	if !h.filter.IsZero() {
		filterStyle = filterStyle.Foreground(h.styles.WarnYellow)
	}

	leftSection := lipgloss.JoinHorizontal(lipgloss.Left, tabCells...)
	rightSection := filterStyle.Render(h.filterSummary())

	gap := width - lipgloss.Width(leftSection) - lipgloss.Width(rightSection)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(h.styles.BorderColor).
		Width(width)

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSection, spacer, rightSection))
}
