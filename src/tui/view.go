package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// panelDimensions holds calculated layout dimensions
type panelDimensions struct {
	availableHeight int
	leftPanelWidth  int
	rightPanelWidth int
}

// calculateDimensions computes panel sizes based on terminal dimensions.
func (m MainModel) calculateDimensions() panelDimensions {
	headerHeight := lipgloss.Height(m.header.Render(m.width, *m.tabs.Group(GroupMain)))
	// header + footer line (1) + panel column header row (1) + panel borders (2)
	availableHeight := m.height - headerHeight - 1 - 1 - 2
	if availableHeight < 4 {
		availableHeight = 4
	}

	// Result list (40%) | candidate detail (60%)
	leftPanelWidth := int(float64(m.width) * 0.4)
	rightPanelWidth := m.width - leftPanelWidth

	return panelDimensions{
		availableHeight: availableHeight,
		leftPanelWidth:  leftPanelWidth,
		rightPanelWidth: rightPanelWidth,
	}
}

// resizeComponents handles window resize events
func (m *MainModel) resizeComponents() {
	dims := m.calculateDimensions()

	m.listView.SetSize(dims.leftPanelWidth-2, dims.availableHeight)
	m.savedList.SetSize(m.width-2, dims.availableHeight)

	m.detailView.Width = dims.rightPanelWidth - 2
	m.detailView.Height = dims.availableHeight

	m.issueView.Width = m.width - 2
	m.issueView.Height = dims.availableHeight
	m.issueForm.SetSize(m.width-4, dims.availableHeight-4)

	if item, ok := m.listView.GetSelectedItem(); ok {
		m.setDetailContent(item)
	}
}

// View renders the complete layout.
func (m MainModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.header.Render(m.width, *m.tabs.Group(GroupMain))

	var body string
	switch m.tabs.Active(GroupMain) {
	case TabWitness:
		body = m.renderWitnessTab()
	case TabIssues:
		body = m.renderIssueTab()
	case TabSaved:
		body = m.renderSavedTab()
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderWitnessTab renders the search form, the progress screen, or the
// result panels depending on where the search lifecycle is.
func (m MainModel) renderWitnessTab() string {
	if m.progress.Active() {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Render(m.progress.View())
	}

	if m.filterPaneOpen() {
		title := m.styles.TitleStyle().Render("Filter results")
		hint := m.styles.HelpStyle().Render("Enter: apply • Esc: cancel")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.filterForm.View(m.width-4), "", hint)
	}

	if m.searchStatus != StatusReady {
		title := m.styles.TitleStyle().Render("Find expert witnesses")
		parts := []string{title, "", m.searchForm.View(m.width - 4)}
		if m.searchStatus == StatusFailed && m.searchErr != "" {
			errStyle := lipgloss.NewStyle().Foreground(m.styles.ErrorRed).Padding(0, 1)
			parts = append(parts, "", errStyle.Render(m.searchErr))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if m.listView.Len() == 0 {
		empty := "No candidates found."
		if len(m.results) > 0 {
			empty = "No candidates match the current filter."
		}
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Foreground(m.styles.TextSecondary).
			Render(empty)
	}

	dims := m.calculateDimensions()
	left := m.renderListPanel(dims.leftPanelWidth, dims.availableHeight)
	right := m.renderDetailPanel(dims.rightPanelWidth, dims.availableHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderListPanel renders the left panel with the candidate list.
func (m MainModel) renderListPanel(width, height int) string {
	listPanel := m.styles.PanelStyle().
		Width(width - 2).
		Height(height).
		Render(m.listView.Render())

	headerText := fmt.Sprintf("%s │ %3s │ %3s │ %-14s │ Candidate", " ", "Sim", "Exp", "Sector")
	headerRow := lipgloss.NewStyle().
		Foreground(m.styles.PrimaryBlue).
		Bold(true).
		Width(width-2).
		Padding(0, 1).
		Render(Truncate(headerText, width-4, true))

	return lipgloss.JoinVertical(lipgloss.Left, headerRow, listPanel)
}

// renderDetailPanel renders the right panel with the selected candidate.
func (m MainModel) renderDetailPanel(width, height int) string {
	item, ok := m.listView.GetSelectedItem()
	if !ok {
		empty := m.styles.PanelStyle().
			Width(width).
			Height(height+1).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(m.styles.TextSecondary).
			Faint(true)
		return empty.Render("← Select a candidate")
	}

	headerRow := lipgloss.NewStyle().
		Foreground(m.styles.PrimaryBlue).
		Bold(true).
		Padding(0, 1).
		Render(Truncate(item.Candidate.Name, width-2, true))

	borderColor := m.styles.BorderColor
	if m.detailOpen {
		borderColor = m.styles.AccentBlue
	}

	panel := m.styles.PanelStyle().
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		Render(m.detailView.View())

	return lipgloss.JoinVertical(lipgloss.Left, headerRow, panel)
}

// renderIssueTab renders the issue spotter form or its analysis result.
func (m MainModel) renderIssueTab() string {
	switch m.issueStatus {
	case StatusReady:
		panel := m.styles.PanelStyle().
			Width(m.width - 2).
			Render(m.issueView.View())
		return panel
	case StatusLoading:
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Foreground(m.styles.TextSecondary).
			Render("Analyzing...")
	default:
		title := m.styles.TitleStyle().Render("Spot issues in legal text")
		parts := []string{title, "", m.issueForm.View(m.width - 4)}
		if m.issueStatus == StatusFailed && m.issueErr != "" {
			errStyle := lipgloss.NewStyle().Foreground(m.styles.ErrorRed).Padding(0, 1)
			parts = append(parts, "", errStyle.Render(m.issueErr))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}

// renderSavedTab renders the saved-witness list.
func (m MainModel) renderSavedTab() string {
	if m.savedErr != "" {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Foreground(m.styles.ErrorRed).
			Render(m.savedErr)
	}
	if m.savedList.Len() == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Foreground(m.styles.TextSecondary).
			Render("No saved witnesses yet.")
	}

	dims := m.calculateDimensions()
	panel := m.styles.PanelStyle().
		Width(m.width - 2).
		Height(dims.availableHeight).
		Render(m.savedList.Render())
	return panel
}

// renderFooter shows the toast when one is active, otherwise key help.
func (m MainModel) renderFooter() string {
	if m.toast.Visible() {
		return m.styles.ToastStyle(m.toast.Kind()).Render(m.toast.Text())
	}

	keyStyle := lipgloss.NewStyle().Foreground(m.styles.PrimaryBlue).Bold(true)
	sepStyle := lipgloss.NewStyle().Foreground(m.styles.TextSecondary)
	sep := sepStyle.Render("•")

	var helpText string
	switch m.tabs.Active(GroupMain) {
	case TabWitness:
		if m.focus() == focusResults || m.focus() == focusDetail {
			helpText = fmt.Sprintf("%s: Nav %s %s: Detail %s %s: Save %s %s: Unsave %s %s: Copy %s %s: Sources %s %s: Filter %s %s: Tab %s %s: Quit",
				keyStyle.Render("j/k"), sep,
				keyStyle.Render("Enter"), sep,
				keyStyle.Render("s"), sep,
				keyStyle.Render("x"), sep,
				keyStyle.Render("c"), sep,
				keyStyle.Render("o"), sep,
				keyStyle.Render("f"), sep,
				keyStyle.Render("^n"), sep,
				keyStyle.Render("q"))
		} else {
			helpText = fmt.Sprintf("%s: Next field %s %s: Submit %s %s: Tab %s %s: Quit",
				keyStyle.Render("Tab"), sep,
				keyStyle.Render("Enter"), sep,
				keyStyle.Render("^n"), sep,
				keyStyle.Render("^c"))
		}
	case TabIssues:
		if m.issueStatus == StatusReady {
			helpText = fmt.Sprintf("%s: Scroll %s %s: New analysis %s %s: Tab %s %s: Quit",
				keyStyle.Render("j/k"), sep,
				keyStyle.Render("Esc"), sep,
				keyStyle.Render("^n"), sep,
				keyStyle.Render("q"))
		} else {
			helpText = fmt.Sprintf("%s: Text/Instructions %s %s: Analyze %s %s: Tab %s %s: Quit",
				keyStyle.Render("Tab"), sep,
				keyStyle.Render("^s"), sep,
				keyStyle.Render("^n"), sep,
				keyStyle.Render("^c"))
		}
	case TabSaved:
		helpText = fmt.Sprintf("%s: Nav %s %s: Remove %s %s: Copy %s %s: Sources %s %s: Tab %s %s: Quit",
			keyStyle.Render("j/k"), sep,
			keyStyle.Render("x"), sep,
			keyStyle.Render("c"), sep,
			keyStyle.Render("o"), sep,
			keyStyle.Render("^n"), sep,
			keyStyle.Render("q"))
	}

	return m.styles.HelpStyle().Render(helpText)
}
