package tui

// Tab identifiers for the main group. The order here is the order tabs
// appear in the header.
const (
	TabWitness = "witness_finder"
	TabIssues  = "issue_spotter"
	TabSaved   = "saved"
)

// Pane identifiers for the sub-group inside the Witness Finder tab.
const (
	PaneResults = "results"
	PaneFilters = "filters"
)

// Registry keys for the session's tab groups.
const (
	GroupMain        = "main"
	GroupWitnessPane = "witness_pane"
)

// TabGroup tracks an ordered set of tabs and which one is active. Exactly
// one tab is active at all times.
type TabGroup struct {
	ids    []string
	labels map[string]string
	active int
}

// NewGroup creates a group from ids and display labels with the first tab
// active. A single-tab group is valid; Next and Prev wrap back to it.
func NewGroup(ids []string, labels map[string]string) TabGroup {
	return TabGroup{ids: ids, labels: labels}
}

// NewTabGroup creates the standard three-tab main group.
func NewTabGroup() TabGroup {
	return NewGroup(
		[]string{TabWitness, TabIssues, TabSaved},
		map[string]string{
			TabWitness: "Witness Finder",
			TabIssues:  "Issue Spotter",
			TabSaved:   "Saved",
		},
	)
}

// Active returns the id of the active tab.
func (g TabGroup) Active() string {
	return g.ids[g.active]
}

// ActiveLabel returns the display label of the active tab.
func (g TabGroup) ActiveLabel() string {
	return g.labels[g.Active()]
}

// IDs returns the tab ids in display order.
func (g TabGroup) IDs() []string {
	return g.ids
}

// Label returns the display label for a tab id.
func (g TabGroup) Label(id string) string {
	return g.labels[id]
}

// Activate switches to the named tab. An unknown id leaves the active tab
// unchanged and reports false.
func (g *TabGroup) Activate(id string) bool {
	for i, known := range g.ids {
		if known == id {
			g.active = i
			return true
		}
	}
	return false
}

// Next advances to the tab after the active one, wrapping at the end.
func (g *TabGroup) Next() {
	g.active = (g.active + 1) % len(g.ids)
}

// Prev moves to the tab before the active one, wrapping at the front.
func (g *TabGroup) Prev() {
	g.active = (g.active - 1 + len(g.ids)) % len(g.ids)
}

// TabRegistry tracks independent tab groups by stable key. The session
// model owns one registry; activating a tab in one group never touches
// another.
type TabRegistry struct {
	groups map[string]*TabGroup
}

// NewTabRegistry creates an empty registry.
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{groups: make(map[string]*TabGroup)}
}

// Register adds a group under key, replacing any existing group.
func (r *TabRegistry) Register(key string, g TabGroup) {
	r.groups[key] = &g
}

// Group returns the group registered under key, or nil for an unknown key.
func (r *TabRegistry) Group(key string) *TabGroup {
	return r.groups[key]
}

// Activate selects the named tab within the named group. An unknown group
// key or tab id leaves every group unchanged and reports false; it never
// panics.
func (r *TabRegistry) Activate(key, id string) bool {
	g := r.groups[key]
	if g == nil {
		return false
	}
	return g.Activate(id)
}

// Active returns the active tab id of the named group, or "" for an
// unknown group.
func (r *TabRegistry) Active(key string) string {
	g := r.groups[key]
	if g == nil {
		return ""
	}
	return g.Active()
}
