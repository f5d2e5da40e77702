package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"caselight-agent/src/api"
	"caselight-agent/src/filter"
	"caselight-agent/src/saved"
)

// focusArea tracks which part of the Witness Finder tab owns the keyboard.
type focusArea int

const (
	focusForm focusArea = iota
	focusResults
	focusFilter
	focusDetail
)

// filterPaneOpen reports whether the Filters pane is the active sub-tab of
// the Witness Finder.
func (m MainModel) filterPaneOpen() bool {
	return m.tabs.Active(GroupWitnessPane) == PaneFilters
}

// focus derives the current focus area from model state.
func (m MainModel) focus() focusArea {
	if m.filterPaneOpen() {
		return focusFilter
	}
	if m.detailOpen {
		return focusDetail
	}
	if m.searchStatus == StatusReady {
		return focusResults
	}
	return focusForm
}

// Update is the single state-transition function. Every message, whether a
// keypress, a timer, or a completed network call, passes through here.
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeComponents()
		return m, nil

	case ProgressTickMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd

	case ToastExpireMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case searchResultMsg:
		return m.onSearchResult(msg)

	case savedFetchedMsg:
		return m.onSavedFetched(msg)

	case saveDoneMsg:
		return m.onSaveDone(msg)

	case deleteDoneMsg:
		return m.onDeleteDone(msg)

	case analyzeDoneMsg:
		return m.onAnalyzeDone(msg)

	case copyDoneMsg:
		if msg.err != nil {
			return m.showToast("Could not copy to clipboard.", ToastError)
		}
		return m.showToast("Summary copied.", ToastSuccess)

	case sourcesOpenedMsg:
		if msg.count == 0 {
			return m.showToast("No sources to open.", ToastWarn)
		}
		return m.showToast(fmt.Sprintf("Opened %d source(s).", msg.count), ToastSuccess)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m.updateFocused(msg)
}

// onKey routes a keypress: global chords first, then the active tab.
func (m MainModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+n":
		m.tabs.Group(GroupMain).Next()
		return m, nil
	case "ctrl+p":
		m.tabs.Group(GroupMain).Prev()
		return m, nil
	}

	switch m.tabs.Active(GroupMain) {
	case TabWitness:
		return m.onWitnessKey(msg)
	case TabIssues:
		return m.onIssueKey(msg)
	case TabSaved:
		return m.onSavedKey(msg)
	}
	return m, nil
}

// onWitnessKey handles keys on the Witness Finder tab, dispatched by focus.
func (m MainModel) onWitnessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus() {
	case focusFilter:
		switch msg.String() {
		case "enter":
			m.filterParams = m.filterForm.Params()
			m.tabs.Activate(GroupWitnessPane, PaneResults)
			m.header.SetFilter(m.filterParams)
			m.refreshResultList()
			return m, nil
		case "esc":
			m.tabs.Activate(GroupWitnessPane, PaneResults)
			return m, nil
		}
		var cmd tea.Cmd
		m.filterForm, cmd = m.filterForm.Update(msg)
		return m, cmd

	case focusDetail:
		switch msg.String() {
		case "esc", "q":
			m.detailOpen = false
			return m, nil
		case "s":
			return m.saveSelected(m.listView)
		case "c":
			return m.copySelected(m.listView)
		case "o":
			return m.openSelected(m.listView)
		}
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd

	case focusResults:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.listView.GetSelectedItem(); ok {
				m.detailOpen = true
				m.setDetailContent(item)
			}
			return m, nil
		case "s":
			return m.saveSelected(m.listView)
		case "x":
			return m.deleteSelected(m.listView)
		case "c":
			return m.copySelected(m.listView)
		case "o":
			return m.openSelected(m.listView)
		case "f":
			m.tabs.Activate(GroupWitnessPane, PaneFilters)
			return m, nil
		case "ctrl+r":
			m.filterParams = filter.Params{}
			m.filterForm.Reset()
			m.header.SetFilter(m.filterParams)
			m.refreshResultList()
			return m, nil
		case "/", "esc":
			// Back to the search form; results stay cached.
			m.searchStatus = StatusIdle
			return m, m.searchForm.inputs[searchFieldIndustry].Focus()
		}
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		if item, ok := m.listView.GetSelectedItem(); ok && m.detailOpen {
			m.setDetailContent(item)
		}
		return m, cmd

	default: // focusForm
		switch msg.String() {
		case "enter":
			return m.submitSearch()
		case "esc":
			if len(m.results) > 0 {
				m.searchStatus = StatusReady
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.searchForm, cmd = m.searchForm.Update(msg)
		return m, cmd
	}
}

// onIssueKey handles keys on the Issue Spotter tab.
func (m MainModel) onIssueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.issueStatus == StatusReady {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "/":
			m.issueStatus = StatusIdle
			return m, m.issueForm.text.Focus()
		}
		var cmd tea.Cmd
		m.issueView, cmd = m.issueView.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+s":
		return m.submitAnalysis()
	}
	var cmd tea.Cmd
	m.issueForm, cmd = m.issueForm.Update(msg)
	return m, cmd
}

// onSavedKey handles keys on the Saved tab.
func (m MainModel) onSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "x":
		return m.deleteSelected(m.savedList)
	case "c":
		return m.copySelected(m.savedList)
	case "o":
		return m.openSelected(m.savedList)
	}
	var cmd tea.Cmd
	m.savedList, cmd = m.savedList.Update(msg)
	return m, cmd
}

// updateFocused forwards non-key messages (cursor blinks) to the inputs.
func (m MainModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.searchForm, cmd = m.searchForm.Update(msg)
	cmds = append(cmds, cmd)
	m.filterForm, cmd = m.filterForm.Update(msg)
	cmds = append(cmds, cmd)
	m.issueForm, cmd = m.issueForm.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submitSearch validates the form and launches the search. A submit while a
// search is already in flight is ignored.
func (m MainModel) submitSearch() (tea.Model, tea.Cmd) {
	if m.searchStatus == StatusLoading {
		return m, nil
	}
	req, ok := m.searchForm.Validate()
	if !ok {
		return m, nil
	}
	req.Limit = m.searchLimit

	m.searchStatus = StatusLoading
	m.searchErr = ""
	var progressCmd tea.Cmd
	m.progress, progressCmd = m.progress.Start("Searching", time.Now())
	return m, tea.Batch(progressCmd, m.searchCmd(req))
}

// submitAnalysis validates the issue form and launches the analysis.
func (m MainModel) submitAnalysis() (tea.Model, tea.Cmd) {
	if m.issueStatus == StatusLoading {
		return m, nil
	}
	req, ok := m.issueForm.Validate()
	if !ok {
		return m, nil
	}
	m.issueStatus = StatusLoading
	m.issueErr = ""
	return m, m.analyzeCmd(req)
}

// onSearchResult finishes the search lifecycle. Completion always forces the
// progress bar to 100% first; failure hides it immediately.
func (m MainModel) onSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if m.searchStatus != StatusLoading {
		return m, nil
	}
	if msg.err != nil {
		m.searchStatus = StatusFailed
		m.searchErr = api.UserMessage(msg.err)
		m.progress = m.progress.Stop()
		m.log.Error("search failed: %v", msg.err)
		// The restored form starts over from its first input.
		return m, m.searchForm.focusField(searchFieldIndustry)
	}

	m.searchStatus = StatusReady
	m.results = msg.candidates
	// Candidates the backend sent without an id get a stable derived one,
	// so saved markers and the save state machine key correctly.
	for i := range m.results {
		m.results[i] = saved.EnsureID(m.results[i])
	}
	m.progress = m.progress.ForceComplete(time.Now())
	m.refreshResultList()
	return m, nil
}

// onSavedFetched primes the reconciler with the backend's saved list.
func (m MainModel) onSavedFetched(msg savedFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.savedErr = api.UserMessage(msg.err)
		m.log.Error("fetching saved witnesses failed: %v", msg.err)
		return m, nil
	}
	m.savedErr = ""
	m.recon.Prime(msg.candidates)
	m.refreshSaved()
	m.refreshResultList()
	return m, nil
}

// onSaveDone completes a save begun by saveSelected.
func (m MainModel) onSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	outcome := m.recon.CompleteSave(msg.candidate, msg.status, msg.err)
	m.refreshSaved()
	m.listView.MarkSaved(msg.candidate.ID, m.recon.IsSaved(msg.candidate.ID))

	switch outcome {
	case saved.OutcomeSaved:
		return m.showToast("Candidate saved.", ToastSuccess)
	case saved.OutcomeAlreadySaved:
		return m.showToast("Already saved.", ToastInfo)
	default:
		return m.showToast("Save failed. "+api.UserMessage(msg.err), ToastError)
	}
}

// onDeleteDone completes a delete begun by deleteSelected.
func (m MainModel) onDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	outcome := m.recon.CompleteDelete(msg.id, msg.status, msg.err)
	m.refreshSaved()
	m.listView.MarkSaved(msg.id, m.recon.IsSaved(msg.id))

	switch outcome {
	case saved.OutcomeDeleted:
		return m.showToast("Removed from saved.", ToastSuccess)
	default:
		return m.showToast("Delete failed. "+api.UserMessage(msg.err), ToastError)
	}
}

// onAnalyzeDone finishes the issue-spotting lifecycle.
func (m MainModel) onAnalyzeDone(msg analyzeDoneMsg) (tea.Model, tea.Cmd) {
	if m.issueStatus != StatusLoading {
		return m, nil
	}
	if msg.err != nil {
		m.issueStatus = StatusFailed
		m.issueErr = api.UserMessage(msg.err)
		m.log.Error("analysis failed: %v", msg.err)
		return m, nil
	}
	m.issueStatus = StatusReady
	m.issueResult = msg.result
	m.issueView.SetContent(m.renderAnalysis(msg.result, m.issueView.Width-2))
	m.issueView.GotoTop()
	return m, nil
}

// saveSelected begins saving the selected candidate. Duplicate and in-flight
// saves are rejected by the reconciler, not here.
func (m MainModel) saveSelected(v View) (tea.Model, tea.Cmd) {
	item, ok := v.GetSelectedItem()
	if !ok {
		return m, nil
	}
	c, ok := m.recon.BeginSave(item.Candidate)
	if !ok {
		if m.recon.IsSaved(item.Candidate.ID) {
			return m.showToast("Already saved.", ToastInfo)
		}
		return m, nil
	}
	return m, m.saveCmd(c)
}

// deleteSelected begins deleting the selected candidate from saved.
func (m MainModel) deleteSelected(v View) (tea.Model, tea.Cmd) {
	item, ok := v.GetSelectedItem()
	if !ok {
		return m, nil
	}
	if !m.recon.BeginDelete(item.Candidate.ID) {
		return m, nil
	}
	return m, m.deleteCmd(item.Candidate.ID)
}

// copySelected copies the selected candidate's summary to the clipboard.
func (m MainModel) copySelected(v View) (tea.Model, tea.Cmd) {
	item, ok := v.GetSelectedItem()
	if !ok {
		return m, nil
	}
	return m, copyCmd(item.Candidate)
}

// openSelected opens the selected candidate's sources in the browser.
func (m MainModel) openSelected(v View) (tea.Model, tea.Cmd) {
	item, ok := v.GetSelectedItem()
	if !ok {
		return m, nil
	}
	return m, openSourcesCmd(item.Candidate)
}

// refreshResultList re-derives the visible result list from the unfiltered
// results and the current filter. The raw results are never mutated.
func (m *MainModel) refreshResultList() {
	view := filter.Apply(m.results, m.filterParams)
	items := make([]Item, len(view))
	for i, c := range view {
		items[i] = Item{Candidate: c, Saved: m.recon.IsSaved(c.ID)}
	}
	m.listView.SetItems(items)
}

// refreshSaved rebuilds the Saved tab list and the header count.
func (m *MainModel) refreshSaved() {
	candidates := m.recon.Saved()
	items := make([]Item, len(candidates))
	for i, c := range candidates {
		items[i] = Item{Candidate: c, Saved: true}
	}
	m.savedList.SetItems(items)
	m.header.SetSavedCount(len(candidates))
}

// showToast displays a transient footer message.
func (m MainModel) showToast(text string, kind ToastKind) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(text, kind, time.Now())
	return m, cmd
}
