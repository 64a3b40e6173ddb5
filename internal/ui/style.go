// Package ui holds the colours and styles shared by the command-line output
// and the terminal interfaces
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const padding = 2

// Styles is the set of lipgloss styles used by the task views.
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Main     lipgloss.Style
	Hint     lipgloss.Style
	Focused  lipgloss.Style
	Valid    lipgloss.Style
	Invalid  lipgloss.Style
	Disabled lipgloss.Style
}

// NewStyles derives the styles from the accent and invalid colours.
func NewStyles(accent, invalid string, dark bool) Styles {
	text := lipgloss.Color("#1D1D1D")
	faint := lipgloss.Color("#9E9E9E")

	if dark {
		text = lipgloss.Color("#F5F5F5")
		faint = lipgloss.Color("#5C5C5C")
	}

	return Styles{
		Base:     lipgloss.NewStyle().Padding(1, padding),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Main:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Hint:     lipgloss.NewStyle().Foreground(faint),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Valid:    lipgloss.NewStyle().Foreground(text),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color(invalid)),
		Disabled: lipgloss.NewStyle().Foreground(faint),
	}
}
