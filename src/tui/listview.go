package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// View manages the candidate result list.
type View struct {
	list     list.Model
	items    []Item
	delegate *Delegate
}

// NewView creates a new candidate list view
func NewView(styles *StyleConfig) View {
	delegate := NewDelegateWithStyles(styles)
	l := list.New([]list.Item{}, &delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return View{
		list:     l,
		items:    []Item{},
		delegate: &delegate,
	}
}

// Update handles list updates
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// SetSize sets the list dimensions
func (v *View) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// SetItems replaces the list contents, keeping the selection in range.
func (v *View) SetItems(items []Item) {
	v.items = items

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	v.list.SetItems(listItems)

	if v.list.Index() >= len(items) && len(items) > 0 {
		v.list.Select(len(items) - 1)
	}
}

// MarkSaved updates the saved marker on the item with the given candidate id.
func (v *View) MarkSaved(id string, saved bool) {
	for i := range v.items {
		if v.items[i].Candidate.ID == id {
			v.items[i].Saved = saved
			v.list.SetItem(i, v.items[i])
		}
	}
}

// GetSelectedItem returns the currently selected candidate item
func (v View) GetSelectedItem() (Item, bool) {
	if len(v.list.Items()) == 0 {
		return Item{}, false
	}
	item, ok := v.list.SelectedItem().(Item)
	return item, ok
}

// Len returns the number of items in the list.
func (v View) Len() int {
	return len(v.items)
}

// Render returns the string representation of the view
func (v View) Render() string {
	return v.list.View()
}
