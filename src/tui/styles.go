package tui

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds the customizable color palette for the caselight UI.
type StyleConfig struct {
	PrimaryBlue    lipgloss.Color
	AccentBlue     lipgloss.Color
	DarkBackground lipgloss.Color
	CardBackground lipgloss.Color
	TextPrimary    lipgloss.Color
	TextSecondary  lipgloss.Color
	BorderColor    lipgloss.Color
	SelectedColor  lipgloss.Color
	SavedGreen     lipgloss.Color
	WarnYellow     lipgloss.Color
	ErrorRed       lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		PrimaryBlue:    lipgloss.Color("#8AB4F8"),
		AccentBlue:     lipgloss.Color("#4285F4"),
		DarkBackground: lipgloss.Color("#1E1E1E"),
		CardBackground: lipgloss.Color("#2D2D2D"),
		TextPrimary:    lipgloss.Color("#E8EAED"),
		TextSecondary:  lipgloss.Color("#9AA0A6"),
		BorderColor:    lipgloss.Color("#5F6368"),
		SelectedColor:  lipgloss.Color("#303134"),
		SavedGreen:     lipgloss.Color("#34A853"),
		WarnYellow:     lipgloss.Color("#FBBC04"),
		ErrorRed:       lipgloss.Color("#EA4335"),
	}
}

// TitleStyle returns a title lipgloss style using this config
func (s *StyleConfig) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.PrimaryBlue).
		Bold(true).
		Padding(0, 1)
}

// HelpStyle returns a help text lipgloss style using this config
func (s *StyleConfig) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TextSecondary).
		Padding(0, 2)
}

// PanelStyle returns a bordered panel style using this config
func (s *StyleConfig) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor)
}

// ToastStyle returns the style for a transient status toast
func (s *StyleConfig) ToastStyle(kind ToastKind) lipgloss.Style {
	color := s.TextPrimary
	switch kind {
	case ToastSuccess:
		color = s.SavedGreen
	case ToastWarn:
		color = s.WarnYellow
	case ToastError:
		color = s.ErrorRed
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Padding(0, 1)
}
