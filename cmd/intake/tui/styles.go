// Package tui renders the single-window contact form on top of bubbletea.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the form and its modal prompts.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	FormBox    lipgloss.Style
	BoxTitle   lipgloss.Style
	Help       lipgloss.Style
	Tip        lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	WarnTitle  lipgloss.Style
	ErrorTitle lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Width(12).
			Foreground(lipgloss.Color("245")),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Help: lipgloss.NewStyle().
			Faint(true),
		Tip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true),
		WarnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		ErrorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}
