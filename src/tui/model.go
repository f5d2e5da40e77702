// Package tui provides the terminal user interface for caselight. It is an
// explicit state machine: every network result, timer, and keypress arrives
// as a message on the Bubble Tea update loop, and all state transitions
// happen there.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"caselight-agent/src/api"
	"caselight-agent/src/contracts"
	"caselight-agent/src/filter"
	"caselight-agent/src/journal"
	"caselight-agent/src/logger"
	"caselight-agent/src/render"
	"caselight-agent/src/saved"
	"caselight-agent/src/store"
)

// Status is the lifecycle of one request-driven panel.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// requestTimeout bounds the network calls issued from the TUI. Searches
// chain external services on the backend, so this is deliberately long.
const requestTimeout = 120 * time.Second

// The backend accepts a search limit in [1, 20] and rejects anything else,
// zero included, so every search request carries an explicit value.
const (
	defaultSearchLimit = 8
	maxSearchLimit     = 20
)

// Messages produced by commands. Every asynchronous result re-enters the
// update loop through one of these.
type (
	searchResultMsg struct {
		candidates []contracts.Candidate
		err        error
	}
	savedFetchedMsg struct {
		candidates []contracts.Candidate
		err        error
	}
	saveDoneMsg struct {
		candidate contracts.Candidate
		status    string
		err       error
	}
	deleteDoneMsg struct {
		id     string
		status string
		err    error
	}
	analyzeDoneMsg struct {
		result *contracts.AnalysisResult
		err    error
	}
	copyDoneMsg struct {
		err error
	}
	sourcesOpenedMsg struct {
		count int
	}
)

// MainModel is the root Bubble Tea model.
type MainModel struct {
	client  *api.Client
	store   store.SavedStore
	recon   *saved.Reconciler
	journal *journal.Publisher
	log     logger.Logger
	styles  *StyleConfig

	tabs   *TabRegistry
	header Header
	toast  Toast

	searchLimit int

	// Witness Finder tab.
	searchForm   SearchForm
	filterForm   FilterForm
	filterParams filter.Params
	results      []contracts.Candidate
	searchStatus Status
	searchErr    string
	progress     ProgressModel
	listView     View
	detailView   viewport.Model
	detailOpen   bool

	// Issue Spotter tab.
	issueForm   IssueForm
	issueStatus Status
	issueErr    string
	issueResult *contracts.AnalysisResult
	issueView   viewport.Model

	// Saved tab.
	savedList View
	savedErr  string

	width  int
	height int
	ready  bool
}

// Options configures the TUI. Store defaults to the remote backend adapter
// when only a client is given; tests pass an in-memory store.
type Options struct {
	Client  *api.Client
	Store   store.SavedStore
	Saved   *saved.Reconciler
	Journal *journal.Publisher
	Logger  logger.Logger
	// SearchLimit is the candidate count requested per search. Values
	// outside the backend's accepted range fall back to the default.
	SearchLimit int
}

// NewMainModel creates the root model.
func NewMainModel(opts Options) MainModel {
	styles := DefaultStyles()
	log := opts.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}
	recon := opts.Saved
	if recon == nil {
		recon = saved.New(log)
	}
	savedStore := opts.Store
	if savedStore == nil {
		if opts.Client != nil {
			savedStore = store.NewRemoteStore(opts.Client)
		} else {
			savedStore = store.NewMemoryStore()
		}
	}

	limit := opts.SearchLimit
	if limit < 1 || limit > maxSearchLimit {
		limit = defaultSearchLimit
	}

	tabs := NewTabRegistry()
	tabs.Register(GroupMain, NewTabGroup())
	tabs.Register(GroupWitnessPane, NewGroup(
		[]string{PaneResults, PaneFilters},
		map[string]string{PaneResults: "Results", PaneFilters: "Filters"},
	))

	return MainModel{
		client:      opts.Client,
		store:       savedStore,
		recon:       recon,
		journal:     opts.Journal,
		log:         log,
		styles:      styles,
		searchLimit: limit,
		tabs:        tabs,
		header:      NewHeader(styles),
		toast:       NewToast(),
		searchForm:  NewSearchForm(styles),
		filterForm:  NewFilterForm(styles),
		progress:    NewProgressModel(),
		listView:    NewView(styles),
		issueForm:   NewIssueForm(styles),
		savedList:   NewView(styles),
	}
}

// Init fetches the saved list so saved markers are correct from the start.
func (m MainModel) Init() tea.Cmd {
	return tea.Batch(m.fetchSavedCmd(), m.searchForm.inputs[0].Focus())
}

// Start runs the TUI until the user quits.
func Start(opts Options) error {
	p := tea.NewProgram(NewMainModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Commands. Each one performs a network call off the update loop and
// delivers its result as a message.

func (m MainModel) searchCmd(req contracts.SearchRequest) tea.Cmd {
	client := m.client
	jrnl := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		candidates, err := client.SearchWitnesses(ctx, req)
		status := "ok"
		if err != nil {
			status = "error"
		}
		jrnl.Record(ctx, contracts.EventSearch, "", status, req.Industry)
		return searchResultMsg{candidates: candidates, err: err}
	}
}

func (m MainModel) fetchSavedCmd() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		candidates, err := st.List(ctx)
		return savedFetchedMsg{candidates: candidates, err: err}
	}
}

func (m MainModel) saveCmd(c contracts.Candidate) tea.Cmd {
	st := m.store
	jrnl := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		status, err := st.Save(ctx, c)
		jrnl.Record(ctx, contracts.EventSave, c.ID, status, c.Name)
		return saveDoneMsg{candidate: c, status: status, err: err}
	}
}

func (m MainModel) deleteCmd(id string) tea.Cmd {
	st := m.store
	jrnl := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		status, err := st.Delete(ctx, id)
		jrnl.Record(ctx, contracts.EventDelete, id, status, "")
		return deleteDoneMsg{id: id, status: status, err: err}
	}
}

func (m MainModel) analyzeCmd(req contracts.TextAnalysisRequest) tea.Cmd {
	client := m.client
	jrnl := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.AnalyzeText(ctx, req)
		status := "ok"
		if err != nil {
			status = "error"
		}
		jrnl.Record(ctx, contracts.EventAnalyze, "", status, "")
		return analyzeDoneMsg{result: result, err: err}
	}
}

func copyCmd(c contracts.Candidate) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: render.CopySummary(c)}
	}
}

func openSourcesCmd(c contracts.Candidate) tea.Cmd {
	urls := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		urls = append(urls, s.URL)
	}
	return func() tea.Msg {
		return sourcesOpenedMsg{count: render.OpenSources(urls)}
	}
}
