package tui

import "github.com/charmbracelet/lipgloss"

// styles lipgloss styles of the interactive mode
type styles struct {
	Title     lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Selected  lipgloss.Style
	Item      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9")),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#282A36")).
			Background(lipgloss.Color("#BD93F9")),
		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#6272A4")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8F8F2")).
			Background(lipgloss.Color("#44475A")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF79C6")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")),
	}
}
