package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"caselight-agent/src/api"
	"caselight-agent/src/contracts"
	"caselight-agent/src/saved"
)

func testModel(t *testing.T) MainModel {
	t.Helper()
	m := NewMainModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(MainModel)
}

func sampleCandidates() []contracts.Candidate {
	return []contracts.Candidate{
		{ID: "a", Name: "Dr. A", SimilarityScore: 90, YearsExperience: 5, Sector: "Pharmaceuticals", Location: "New York"},
		{ID: "b", Name: "Dr. B", SimilarityScore: 40, YearsExperience: 1, Sector: "Tech", Location: "California"},
	}
}

func fillSearchForm(m MainModel) MainModel {
	m.searchForm.inputs[searchFieldIndustry].SetValue("pharma")
	m.searchForm.inputs[searchFieldDescription].SetValue("drug interaction case")
	return m
}

func TestSearchLifecycle(t *testing.T) {
	m := fillSearchForm(testModel(t))

	updated, cmd := m.submitSearch()
	m = updated.(MainModel)
	if m.searchStatus != StatusLoading {
		t.Fatalf("status after submit = %v, expected loading", m.searchStatus)
	}
	if cmd == nil {
		t.Fatal("submit must produce a search command")
	}
	if !m.progress.Active() {
		t.Error("progress must start with the search")
	}

	updated, _ = m.Update(searchResultMsg{candidates: sampleCandidates()})
	m = updated.(MainModel)
	if m.searchStatus != StatusReady {
		t.Fatalf("status after result = %v, expected ready", m.searchStatus)
	}
	if m.progress.Percent() != 100 {
		t.Errorf("progress percent after completion = %d, expected 100", m.progress.Percent())
	}
	if m.listView.Len() != 2 {
		t.Errorf("list has %d items, expected 2", m.listView.Len())
	}
}

func TestSearchSubmitWhileLoadingIgnored(t *testing.T) {
	m := fillSearchForm(testModel(t))
	updated, _ := m.submitSearch()
	m = updated.(MainModel)

	updated, cmd := m.submitSearch()
	m = updated.(MainModel)
	if cmd != nil {
		t.Error("submit while loading must not produce another command")
	}
	if m.searchStatus != StatusLoading {
		t.Errorf("status = %v, expected still loading", m.searchStatus)
	}
}

func TestSearchValidationBlocksSubmit(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.submitSearch()
	m = updated.(MainModel)
	if cmd != nil {
		t.Error("invalid form must not produce a command")
	}
	if m.searchStatus != StatusIdle {
		t.Errorf("status = %v, expected idle", m.searchStatus)
	}
	if m.searchForm.Err() == "" {
		t.Error("expected a validation message")
	}
}

func TestSearchFailure(t *testing.T) {
	m := fillSearchForm(testModel(t))
	updated, _ := m.submitSearch()
	m = updated.(MainModel)

	updated, _ = m.Update(searchResultMsg{err: errors.New("boom")})
	m = updated.(MainModel)
	if m.searchStatus != StatusFailed {
		t.Fatalf("status = %v, expected failed", m.searchStatus)
	}
	if m.searchErr == "" {
		t.Error("expected a user-facing error message")
	}
	if m.progress.Active() {
		t.Error("progress must hide on failure")
	}
	// The previous results, if any, are untouched; here there were none.
	if m.listView.Len() != 0 {
		t.Errorf("list has %d items, expected 0", m.listView.Len())
	}
}

// drainCmds executes a command tree, unwrapping batches, so side effects
// like outgoing requests actually happen.
func drainCmds(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drainCmds(c)
		}
	}
}

func TestSearchRequestCarriesValidLimit(t *testing.T) {
	var got contracts.SearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding search request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(contracts.SearchResponse{Candidates: []contracts.Candidate{}})
	}))
	defer srv.Close()

	m := NewMainModel(Options{Client: api.NewClient(srv.URL, time.Second)})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = fillSearchForm(updated.(MainModel))

	_, cmd := m.submitSearch()
	if cmd == nil {
		t.Fatal("expected a search command")
	}
	drainCmds(cmd)

	if got.Limit != defaultSearchLimit {
		t.Errorf("request limit = %d, expected %d", got.Limit, defaultSearchLimit)
	}
	if got.Limit < 1 || got.Limit > maxSearchLimit {
		t.Errorf("request limit %d outside the accepted range [1, %d]", got.Limit, maxSearchLimit)
	}
}

func TestSearchFailureRestoresFormFocus(t *testing.T) {
	m := fillSearchForm(testModel(t))
	m.searchForm.focusField(searchFieldName)
	updated, _ := m.submitSearch()
	m = updated.(MainModel)

	updated, _ = m.Update(searchResultMsg{err: errors.New("boom")})
	m = updated.(MainModel)
	if m.searchForm.focus != searchFieldIndustry {
		t.Errorf("focused field after failure = %d, expected the first", m.searchForm.focus)
	}
	if !m.searchForm.inputs[searchFieldIndustry].Focused() {
		t.Error("first input not focused after failure")
	}
}

func TestStaleSearchResultIgnored(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(searchResultMsg{candidates: sampleCandidates()})
	m = updated.(MainModel)
	if m.searchStatus != StatusIdle || len(m.results) != 0 {
		t.Error("a result with no search in flight must be dropped")
	}
}

func TestFilterNarrowsWithoutMutatingResults(t *testing.T) {
	m := fillSearchForm(testModel(t))
	updated, _ := m.submitSearch()
	m = updated.(MainModel)
	updated, _ = m.Update(searchResultMsg{candidates: sampleCandidates()})
	m = updated.(MainModel)

	m.filterForm.inputs[filterFieldSimilarity].SetValue("50")
	m.tabs.Activate(GroupWitnessPane, PaneFilters)
	updated, _ = m.onWitnessKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(MainModel)

	if m.filterPaneOpen() {
		t.Error("enter must close the filter form")
	}
	if m.listView.Len() != 1 {
		t.Fatalf("filtered list has %d items, expected 1", m.listView.Len())
	}
	item, _ := m.listView.GetSelectedItem()
	if item.Candidate.ID != "a" {
		t.Errorf("visible candidate = %q, expected a", item.Candidate.ID)
	}
	if len(m.results) != 2 {
		t.Errorf("raw results mutated: %d entries, expected 2", len(m.results))
	}

	// Clearing the filter restores the full list.
	updated, _ = m.onWitnessKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(MainModel)
	if m.listView.Len() != 2 {
		t.Errorf("after reset list has %d items, expected 2", m.listView.Len())
	}
}

func TestSaveFlowToasts(t *testing.T) {
	m := fillSearchForm(testModel(t))
	updated, _ := m.submitSearch()
	m = updated.(MainModel)
	updated, _ = m.Update(searchResultMsg{candidates: sampleCandidates()})
	m = updated.(MainModel)

	// Begin the save the way the s key does.
	updated, cmd := m.saveSelected(m.listView)
	m = updated.(MainModel)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	item, _ := m.listView.GetSelectedItem()

	updated, _ = m.Update(saveDoneMsg{candidate: item.Candidate, status: contracts.StatusOK})
	m = updated.(MainModel)
	if !m.toast.Visible() || m.toast.Text() != "Candidate saved." {
		t.Errorf("toast = %q, expected %q", m.toast.Text(), "Candidate saved.")
	}
	if !m.recon.IsSaved(item.Candidate.ID) {
		t.Error("candidate not in the saved cache after a successful save")
	}
	if m.header.savedCount != 1 {
		t.Errorf("header saved count = %d, expected 1", m.header.savedCount)
	}

	// A second save of the same candidate is rejected locally with the
	// duplicate toast. The returned command is the toast expiry timer, not
	// a store call: the candidate stays in the saved state, which only a
	// begun save would change.
	updated, cmd = m.saveSelected(m.listView)
	m = updated.(MainModel)
	if cmd == nil {
		t.Error("the duplicate toast must still arm its expiry timer")
	}
	if got := m.recon.State(item.Candidate.ID); got != saved.StateSaved {
		t.Errorf("state after duplicate save = %v, expected still saved", got)
	}
	if m.toast.Text() != "Already saved." {
		t.Errorf("toast = %q, expected %q", m.toast.Text(), "Already saved.")
	}
}

func TestSaveMarksCandidateWithoutID(t *testing.T) {
	m := fillSearchForm(testModel(t))
	updated, _ := m.submitSearch()
	m = updated.(MainModel)
	updated, _ = m.Update(searchResultMsg{candidates: []contracts.Candidate{
		{Name: "Dr. No ID", Organization: "Acme Labs", SimilarityScore: 70},
	}})
	m = updated.(MainModel)

	item, ok := m.listView.GetSelectedItem()
	if !ok {
		t.Fatal("expected a visible candidate")
	}
	if item.Candidate.ID == "" {
		t.Fatal("candidate without a backend id must get a derived one")
	}

	updated, cmd := m.saveSelected(m.listView)
	m = updated.(MainModel)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	updated, _ = m.Update(saveDoneMsg{candidate: item.Candidate, status: contracts.StatusOK})
	m = updated.(MainModel)

	item, _ = m.listView.GetSelectedItem()
	if !item.Saved {
		t.Error("saved marker not set on the visible row")
	}
}

func TestSaveDuplicateFromBackend(t *testing.T) {
	m := testModel(t)
	c := contracts.Candidate{ID: "a", Name: "Dr. A"}
	m.recon.BeginSave(c)

	updated, _ := m.Update(saveDoneMsg{candidate: c, status: contracts.StatusDuplicate})
	m = updated.(MainModel)
	if m.toast.Text() != "Already saved." {
		t.Errorf("toast = %q, expected %q", m.toast.Text(), "Already saved.")
	}
	if !m.recon.IsSaved("a") {
		t.Error("duplicate status must still cache the candidate")
	}
}

func TestSaveFailureToast(t *testing.T) {
	m := testModel(t)
	c := contracts.Candidate{ID: "a", Name: "Dr. A"}
	m.recon.BeginSave(c)

	updated, _ := m.Update(saveDoneMsg{candidate: c, err: errors.New("boom")})
	m = updated.(MainModel)
	if m.recon.IsSaved("a") {
		t.Error("failed save must not cache the candidate")
	}
	if m.toast.Kind() != ToastError {
		t.Errorf("toast kind = %v, expected error", m.toast.Kind())
	}
}

func TestDeleteOnlyRemovesOnOK(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(savedFetchedMsg{candidates: sampleCandidates()})
	m = updated.(MainModel)
	if m.savedList.Len() != 2 {
		t.Fatalf("saved list has %d items, expected 2", m.savedList.Len())
	}

	m.recon.BeginDelete("a")
	updated, _ = m.Update(deleteDoneMsg{id: "a", status: "missing"})
	m = updated.(MainModel)
	if !m.recon.IsSaved("a") {
		t.Error("non-ok delete status must keep the entry")
	}
	if m.toast.Kind() != ToastError {
		t.Errorf("toast kind = %v, expected error", m.toast.Kind())
	}

	m.recon.BeginDelete("a")
	updated, _ = m.Update(deleteDoneMsg{id: "a", status: contracts.StatusOK})
	m = updated.(MainModel)
	if m.recon.IsSaved("a") {
		t.Error("ok delete must remove the entry")
	}
	if m.savedList.Len() != 1 {
		t.Errorf("saved list has %d items, expected 1", m.savedList.Len())
	}
	if m.toast.Text() != "Removed from saved." {
		t.Errorf("toast = %q", m.toast.Text())
	}
}

func TestTabSwitchingKeys(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(MainModel)
	if m.tabs.Active(GroupMain) != TabIssues {
		t.Errorf("active tab = %q, expected issue spotter", m.tabs.Active(GroupMain))
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = updated.(MainModel)
	if m.tabs.Active(GroupMain) != TabWitness {
		t.Errorf("active tab = %q, expected witness finder", m.tabs.Active(GroupMain))
	}
}

func TestAnalyzeLifecycle(t *testing.T) {
	m := testModel(t)
	m.tabs.Activate(GroupMain, TabIssues)
	m.issueForm.text.SetValue("This agreement lacks a severability clause.")

	updated, cmd := m.submitAnalysis()
	m = updated.(MainModel)
	if m.issueStatus != StatusLoading || cmd == nil {
		t.Fatal("expected analysis to start")
	}

	// Duplicate submit while loading is ignored.
	_, cmd = m.submitAnalysis()
	if cmd != nil {
		t.Error("submit while analyzing must not produce another command")
	}

	result := &contracts.AnalysisResult{
		Summary: "One issue found.",
		Findings: []contracts.Finding{
			{Issue: "Missing severability clause", Risk: "high"},
		},
	}
	updated, _ = m.Update(analyzeDoneMsg{result: result})
	m = updated.(MainModel)
	if m.issueStatus != StatusReady {
		t.Fatalf("status = %v, expected ready", m.issueStatus)
	}
	if m.issueResult != result {
		t.Error("result not stored")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.submitAnalysis()
	m = updated.(MainModel)
	if cmd != nil {
		t.Error("empty text must not produce a command")
	}
	if m.issueForm.Err() == "" {
		t.Error("expected a validation message")
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	m := NewMainModel(Options{})
	if m.View() == "" {
		t.Error("pre-size view must render a placeholder")
	}
}
