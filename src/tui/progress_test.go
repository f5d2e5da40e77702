package tui

import (
	"strings"
	"testing"
	"time"
)

func tickAt(m ProgressModel, t time.Time) ProgressModel {
	m, _ = m.Update(ProgressTickMsg(t))
	return m
}

func TestProgressModel_InitialState(t *testing.T) {
	m := NewProgressModel()
	if m.Active() {
		t.Error("expected inactive before Start")
	}
	if m.View() != "" {
		t.Error("inactive model must render nothing")
	}
}

func TestProgressModel_SegmentRamp(t *testing.T) {
	start := time.Now()
	m, _ := NewProgressModel().Start("Searching", start)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{600 * time.Millisecond, 30},
		{1200 * time.Millisecond, 60},
		{2200 * time.Millisecond, 72},
		{3200 * time.Millisecond, 85},
		{4700 * time.Millisecond, 91},
		{6200 * time.Millisecond, 98},
		{20 * time.Second, 98},
	}

	for _, tt := range tests {
		got := tickAt(m, start.Add(tt.elapsed)).Percent()
		if got != tt.want {
			t.Errorf("percent at %v = %d, expected %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestProgressModel_PercentMonotone(t *testing.T) {
	start := time.Now()
	m, _ := NewProgressModel().Start("Searching", start)

	last := -1
	for elapsed := time.Duration(0); elapsed < 8*time.Second; elapsed += 80 * time.Millisecond {
		m = tickAt(m, start.Add(elapsed))
		if m.Percent() < last {
			t.Fatalf("percent decreased from %d to %d at %v", last, m.Percent(), elapsed)
		}
		last = m.Percent()
	}
}

func TestProgressModel_CountdownMonotone(t *testing.T) {
	start := time.Now()
	m, _ := NewProgressModel().Start("Searching", start)

	last := m.remaining
	for elapsed := time.Duration(0); elapsed < 10*time.Second; elapsed += 250 * time.Millisecond {
		m = tickAt(m, start.Add(elapsed))
		if m.remaining > last {
			t.Fatalf("countdown increased from %d to %d at %v", last, m.remaining, elapsed)
		}
		last = m.remaining
	}
	// The countdown never reaches zero while the request is outstanding.
	if m.remaining < 1 {
		t.Errorf("countdown hit %d while still running", m.remaining)
	}
}

func TestProgressModel_ForceComplete(t *testing.T) {
	start := time.Now()
	m, _ := NewProgressModel().Start("Searching", start)
	m = tickAt(m, start.Add(800*time.Millisecond))

	now := start.Add(900 * time.Millisecond)
	m = m.ForceComplete(now)

	if m.Percent() != 100 {
		t.Errorf("percent after ForceComplete = %d, expected 100", m.Percent())
	}
	if m.remaining != 0 {
		t.Errorf("countdown after ForceComplete = %d, expected 0", m.remaining)
	}
	if !m.Active() {
		t.Error("bar must stay visible during the linger")
	}
	if !strings.Contains(m.View(), "100%") {
		t.Errorf("view does not show 100%%: %s", m.View())
	}

	// Still visible just before the linger ends.
	m = tickAt(m, now.Add(1500*time.Millisecond))
	if !m.Active() {
		t.Error("bar hid before the linger elapsed")
	}

	// Hidden after the linger.
	m = tickAt(m, now.Add(1700*time.Millisecond))
	if m.Active() {
		t.Error("bar still visible after the linger elapsed")
	}
}

func TestProgressModel_StopHidesImmediately(t *testing.T) {
	start := time.Now()
	m, _ := NewProgressModel().Start("Searching", start)
	m = tickAt(m, start.Add(time.Second))

	m = m.Stop()
	if m.Active() {
		t.Error("expected inactive after Stop")
	}
	if m.View() != "" {
		t.Error("stopped model must render nothing")
	}
}

func TestProgressModel_ForceCompleteWhenInactive(t *testing.T) {
	m := NewProgressModel().ForceComplete(time.Now())
	if m.Active() {
		t.Error("ForceComplete on an inactive bar must not activate it")
	}
}
