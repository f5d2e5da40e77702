package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caselight-agent/src/contracts"
	"caselight-agent/src/filter"
)

// form is the shared focus-cycling base for the input forms.
type form struct {
	inputs []textinput.Model
	labels []string
	focus  int
	styles *StyleConfig
}

func newForm(styles *StyleConfig, fields ...string) form {
	f := form{labels: fields, styles: styles}
	for i := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 512
		if i == 0 {
			in.Focus()
		}
		f.inputs = append(f.inputs, in)
	}
	return f
}

// cycleFocus moves focus by delta, wrapping.
func (f *form) cycleFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// focusField focuses the input at index i directly.
func (f *form) focusField(i int) tea.Cmd {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.cycleFocus(1)
		case "shift+tab", "up":
			return f.cycleFocus(-1)
		}
	}
	var cmds []tea.Cmd
	for i := range f.inputs {
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f form) view(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(f.styles.TextSecondary).Width(14)
	focusedLabel := labelStyle.Foreground(f.styles.PrimaryBlue).Bold(true)

	var rows []string
	for i, in := range f.inputs {
		label := f.labels[i]
		style := labelStyle
		if i == f.focus {
			style = focusedLabel
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), in.View()))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

// Field indexes for SearchForm.
const (
	searchFieldIndustry = iota
	searchFieldDescription
	searchFieldName
)

// SearchForm collects the witness search parameters.
type SearchForm struct {
	form
	errMsg string
}

// NewSearchForm creates the witness search form with industry focused.
func NewSearchForm(styles *StyleConfig) SearchForm {
	return SearchForm{form: newForm(styles, "Industry", "Description", "Name (opt)")}
}

// Update handles key and blink messages.
func (sf SearchForm) Update(msg tea.Msg) (SearchForm, tea.Cmd) {
	cmd := sf.form.update(msg)
	return sf, cmd
}

// Validate checks the required fields. On failure it records an error
// message, moves focus to the first offending field, and reports false.
func (sf *SearchForm) Validate() (contracts.SearchRequest, bool) {
	sf.errMsg = ""
	if sf.value(searchFieldIndustry) == "" {
		sf.errMsg = "Industry is required."
		sf.focusField(searchFieldIndustry)
		return contracts.SearchRequest{}, false
	}
	if sf.value(searchFieldDescription) == "" {
		sf.errMsg = "Description is required."
		sf.focusField(searchFieldDescription)
		return contracts.SearchRequest{}, false
	}
	return contracts.SearchRequest{
		Industry:    sf.value(searchFieldIndustry),
		Description: sf.value(searchFieldDescription),
		Name:        sf.value(searchFieldName),
	}, true
}

// Err returns the current validation message, if any.
func (sf SearchForm) Err() string {
	return sf.errMsg
}

// View renders the form with its validation message.
func (sf SearchForm) View(width int) string {
	out := sf.form.view(width)
	if sf.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(sf.styles.ErrorRed)
		out += "\n" + errStyle.Render(sf.errMsg)
	}
	return out
}

// Field indexes for FilterForm.
const (
	filterFieldSimilarity = iota
	filterFieldExperience
	filterFieldSector
	filterFieldLocation
)

// FilterForm collects the result filter thresholds.
type FilterForm struct {
	form
}

// NewFilterForm creates the filter form.
func NewFilterForm(styles *StyleConfig) FilterForm {
	return FilterForm{form: newForm(styles, "Min similarity", "Min experience", "Sector", "Location")}
}

// Update handles key and blink messages.
func (ff FilterForm) Update(msg tea.Msg) (FilterForm, tea.Cmd) {
	cmd := ff.form.update(msg)
	return ff, cmd
}

// Params converts the form contents to filter parameters. Non-numeric
// threshold text counts as zero rather than an error.
func (ff FilterForm) Params() filter.Params {
	return filter.Params{
		MinSimilarity: atoiOrZero(ff.value(filterFieldSimilarity)),
		MinExperience: atoiOrZero(ff.value(filterFieldExperience)),
		Sector:        ff.value(filterFieldSector),
		Location:      ff.value(filterFieldLocation),
	}
}

// Reset clears every field.
func (ff *FilterForm) Reset() {
	for i := range ff.inputs {
		ff.inputs[i].SetValue("")
	}
}

// View renders the form.
func (ff FilterForm) View(width int) string {
	return ff.form.view(width)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IssueForm collects the text and instructions for issue spotting.
type IssueForm struct {
	text         textarea.Model
	instructions textinput.Model
	textFocused  bool
	errMsg       string
	styles       *StyleConfig
}

// NewIssueForm creates the issue spotter form with the text area focused.
func NewIssueForm(styles *StyleConfig) IssueForm {
	ta := textarea.New()
	ta.Placeholder = "Paste the legal text to analyze..."
	ta.CharLimit = 0
	ta.Focus()

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Extra instructions (optional)"
	in.CharLimit = 512

	return IssueForm{text: ta, instructions: in, textFocused: true, styles: styles}
}

// SetSize resizes the text area.
func (f *IssueForm) SetSize(width, height int) {
	f.text.SetWidth(width)
	f.text.SetHeight(height)
	f.instructions.Width = width
}

// Update handles key and blink messages. Tab toggles between the text area
// and the instructions line.
func (f IssueForm) Update(msg tea.Msg) (IssueForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		f.textFocused = !f.textFocused
		if f.textFocused {
			f.instructions.Blur()
			return f, f.text.Focus()
		}
		f.text.Blur()
		return f, f.instructions.Focus()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.text, cmd = f.text.Update(msg)
	cmds = append(cmds, cmd)
	f.instructions, cmd = f.instructions.Update(msg)
	cmds = append(cmds, cmd)
	return f, tea.Batch(cmds...)
}

// Validate checks that there is text to analyze.
func (f *IssueForm) Validate() (contracts.TextAnalysisRequest, bool) {
	f.errMsg = ""
	text := strings.TrimSpace(f.text.Value())
	if text == "" {
		f.errMsg = "Enter some text to analyze."
		return contracts.TextAnalysisRequest{}, false
	}
	return contracts.TextAnalysisRequest{
		Text:         text,
		Instructions: strings.TrimSpace(f.instructions.Value()),
		ReturnJSON:   true,
	}, true
}

// Err returns the current validation message, if any.
func (f IssueForm) Err() string {
	return f.errMsg
}

// View renders the form.
func (f IssueForm) View(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(f.styles.TextSecondary)
	out := f.text.View() + "\n" + labelStyle.Render("Instructions: ") + f.instructions.View()
	if f.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(f.styles.ErrorRed)
		out += "\n" + errStyle.Render(f.errMsg)
	}
	return lipgloss.NewStyle().Width(width).Render(out)
}
