package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ASCII art logo lines for the loading screen
var caselightLogo = []string{
	" ▄████████▄ ▄████████▄ ▄████████▄ ████████ ██       ████ ▄████████▄ ██      ██ ████████",
	" ██         ██      ██ ██         ██       ██        ██  ██         ██      ██    ██",
	" ██         ██████████ ▀███████▄  ██████   ██        ██  ██   ████  ████████████  ██",
	" ██         ██      ██        ██  ██       ██        ██  ██     ██  ██      ██    ██",
	" ▀████████▀ ██      ██ ▀████████▀ ████████ ████████ ████ ▀████████▀ ██      ██    ██",
}

// Gradient colors from light (top) to dark (bottom)
var logoGradientColors = []string{
	"#5DADE2",
	"#3498DB",
	"#2E86C1",
	"#2874A6",
	"#21618C",
}

// Spinner frames for the loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// progressSegment describes one leg of the simulated progress ramp.
type progressSegment struct {
	from, to int
	duration time.Duration
}

// searchSegments is the choreography while a search is in flight. The bar
// climbs quickly at first, then slows, and parks at 98% until the real
// response arrives. Completion is always driven by the response, never by
// the ramp reaching its end.
var searchSegments = []progressSegment{
	{from: 0, to: 60, duration: 1200 * time.Millisecond},
	{from: 60, to: 85, duration: 2000 * time.Millisecond},
	{from: 85, to: 98, duration: 3000 * time.Millisecond},
}

const (
	// progressTickInterval is the animation cadence.
	progressTickInterval = 80 * time.Millisecond
	// completeLinger keeps the finished bar on screen briefly so the jump
	// to 100% is visible before results replace it.
	completeLinger = 1600 * time.Millisecond
)

// ProgressTickMsg advances the progress animation.
type ProgressTickMsg time.Time

// ProgressTick returns a command that sends ProgressTickMsg after a delay
func ProgressTick() tea.Cmd {
	return tea.Tick(progressTickInterval, func(t time.Time) tea.Msg {
		return ProgressTickMsg(t)
	})
}

// ProgressModel simulates determinate-looking progress for a request whose
// real duration is unknown.
type ProgressModel struct {
	label        string
	active       bool
	done         bool
	start        time.Time
	percent      int
	remaining    int
	lingerUntil  time.Time
	spinnerFrame int
}

func NewProgressModel() ProgressModel {
	return ProgressModel{}
}

// Start begins a new simulated run.
func (m ProgressModel) Start(label string, now time.Time) (ProgressModel, tea.Cmd) {
	m.label = label
	m.active = true
	m.done = false
	m.start = now
	m.percent = 0
	m.remaining = estimatedSecondsAt(0)
	m.spinnerFrame = 0
	return m, ProgressTick()
}

// ForceComplete jumps the bar to 100% regardless of where the ramp is. The
// bar stays visible for a short linger, then hides itself.
func (m ProgressModel) ForceComplete(now time.Time) ProgressModel {
	if !m.active {
		return m
	}
	m.done = true
	m.percent = 100
	m.remaining = 0
	m.lingerUntil = now.Add(completeLinger)
	return m
}

// Stop hides the bar immediately, for failed requests.
func (m ProgressModel) Stop() ProgressModel {
	m.active = false
	m.done = false
	return m
}

// Active reports whether the bar should be rendered.
func (m ProgressModel) Active() bool {
	return m.active
}

// Percent returns the currently displayed percentage.
func (m ProgressModel) Percent() int {
	return m.percent
}

func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	tick, ok := msg.(ProgressTickMsg)
	if !ok || !m.active {
		return m, nil
	}

	now := time.Time(tick)
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)

	if m.done {
		if !now.Before(m.lingerUntil) {
			m.active = false
			return m, nil
		}
		return m, ProgressTick()
	}

	elapsed := now.Sub(m.start)
	if pct := percentAt(elapsed); pct > m.percent {
		m.percent = pct
	}
	if rem := estimatedSecondsAt(elapsed); rem < m.remaining {
		m.remaining = rem
	}
	return m, ProgressTick()
}

// percentAt maps elapsed time onto the segment ramp. Past the last segment
// the bar holds at its final value.
func percentAt(elapsed time.Duration) int {
	for _, seg := range searchSegments {
		if elapsed < seg.duration {
			frac := float64(elapsed) / float64(seg.duration)
			return seg.from + int(frac*float64(seg.to-seg.from))
		}
		elapsed -= seg.duration
	}
	return searchSegments[len(searchSegments)-1].to
}

// estimatedSecondsAt returns the whole seconds left on the ramp, floored at
// one while the request is still outstanding.
func estimatedSecondsAt(elapsed time.Duration) int {
	var total time.Duration
	for _, seg := range searchSegments {
		total += seg.duration
	}
	left := total - elapsed
	if left <= 0 {
		return 1
	}
	secs := int((left + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (m ProgressModel) View() string {
	if !m.active {
		return ""
	}

	var logoLines []string
	for i, line := range caselightLogo {
		color := logoGradientColors[i%len(logoGradientColors)]
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true)
		logoLines = append(logoLines, style.Render(line))
	}
	logo := strings.Join(logoLines, "\n")

	if m.done {
		completeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		status := completeStyle.Render("✓ 100% — done")
		return lipgloss.JoinVertical(lipgloss.Center, logo, "", status)
	}

	spinner := spinnerFrames[m.spinnerFrame]
	spinnerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))

	bar := renderBar(m.percent, 40)
	statusLine := fmt.Sprintf("%s %s %s %d%% (~%ds left)",
		spinnerStyle.Render(spinner), m.label, bar, m.percent, m.remaining)

	return lipgloss.JoinVertical(lipgloss.Center, logo, "", statusLine)
}

// renderBar draws a fixed-width unicode bar for the given percentage.
func renderBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
