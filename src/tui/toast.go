package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarn
	ToastError
)

// toastDuration is how long one toast stays on screen.
const toastDuration = 3 * time.Second

// ToastExpireMsg hides the current toast when its deadline passes.
type ToastExpireMsg time.Time

// Toast is a transient one-line status message shown in the footer.
type Toast struct {
	text     string
	kind     ToastKind
	deadline time.Time
}

// NewToast creates an empty, hidden toast.
func NewToast() Toast {
	return Toast{}
}

// Show replaces the current toast. A newer toast restarts the clock.
func (t Toast) Show(text string, kind ToastKind, now time.Time) (Toast, tea.Cmd) {
	t.text = text
	t.kind = kind
	t.deadline = now.Add(toastDuration)
	return t, tea.Tick(toastDuration, func(at time.Time) tea.Msg {
		return ToastExpireMsg(at)
	})
}

// Update clears the toast once its deadline has passed. An expiry message
// from a superseded toast is ignored.
func (t Toast) Update(msg tea.Msg) Toast {
	expire, ok := msg.(ToastExpireMsg)
	if !ok || t.text == "" {
		return t
	}
	if !time.Time(expire).Before(t.deadline) {
		t.text = ""
	}
	return t
}

// Visible reports whether there is a toast to draw.
func (t Toast) Visible() bool {
	return t.text != ""
}

// Text returns the toast message.
func (t Toast) Text() string {
	return t.text
}

// Kind returns the toast kind.
func (t Toast) Kind() ToastKind {
	return t.kind
}
