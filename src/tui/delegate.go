package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caselight-agent/src/sanitize"
)

const (
	// listRenderingOverhead accounts for padding added by bubbles/list and
	// the panel border around it.
	listRenderingOverhead = 10

	scoreWidth  = 3
	expWidth    = 3
	sectorWidth = 14
	savedWidth  = 1
)

// Delegate renders candidate items as table rows: saved marker, similarity
// score, years of experience, sector, then name and organization in the
// remaining width.
type Delegate struct {
	styles *StyleConfig
}

// NewDelegate creates a new candidate table delegate with default styles
func NewDelegate() Delegate {
	return Delegate{styles: DefaultStyles()}
}

// NewDelegateWithStyles creates a new delegate with custom styles
func NewDelegateWithStyles(styles *StyleConfig) Delegate {
	return Delegate{styles: styles}
}

// Height returns the height of a list item
func (d Delegate) Height() int { return 1 }

// Spacing returns spacing between items
func (d Delegate) Spacing() int { return 0 }

// Update handles item updates
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render renders a list item
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(Item)
	if !ok {
		return
	}

	c := entry.Candidate
	isSelected := index == m.Index()

	saved := " "
	if entry.Saved {
		saved = "★"
	}

	expCol := fmt.Sprintf("%*s", expWidth, "—")
	if c.YearsExperience > 0 {
		expCol = fmt.Sprintf("%*d", expWidth, c.YearsExperience)
	}

	scoreCol := fmt.Sprintf("%*d", scoreWidth, c.SimilarityScore)
	sectorCol := TruncateAndPad(sanitize.Field(c.Sector), sectorWidth, true)

	// Fixed columns plus separators.
	fixedWidth := savedWidth + scoreWidth + expWidth + sectorWidth + 12
	nameWidth := m.Width() - fixedWidth - listRenderingOverhead

	var nameCol string
	if nameWidth > 0 {
		name := sanitize.Field(c.Name)
		if org := sanitize.Field(c.Organization); org != "" {
			name += " · " + org
		}
		nameCol = TruncateAndPad(name, nameWidth, true)
	}

	line := fmt.Sprintf("%s │ %s │ %s │ %s │ %s",
		saved, scoreCol, expCol, sectorCol, nameCol)

	style := lipgloss.NewStyle().Foreground(d.styles.TextSecondary)
	if entry.Saved {
		style = style.Foreground(d.styles.SavedGreen)
	}
	if isSelected {
		style = style.Bold(true).Foreground(d.styles.PrimaryBlue).Background(d.styles.SelectedColor)
	}

	fmt.Fprint(w, style.Render(line))
}
