package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wlcolm/colmwm/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginBottom(1)

	focusedItemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	urgentItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	unfocusedItemStyle  = lipgloss.NewStyle()
)

// tintStyle maps a WorkItem's Tint to a display color; colmwm-inspect
// doesn't need a compositor's real color scheme, just a way to tell
// the three roles apart on screen.
func tintStyle(t view.Tint) lipgloss.Style {
	switch t {
	case view.TintFocused:
		return focusedItemStyle
	case view.TintUrgent:
		return urgentItemStyle
	default:
		return unfocusedItemStyle
	}
}
