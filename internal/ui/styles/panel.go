package styles

import "github.com/charmbracelet/lipgloss"

// PanelBorder returns the border style of a pane.
func PanelBorder(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(T().BorderFocus)
	}
	return lipgloss.NewStyle().Foreground(T().Border)
}

// PanelTitle returns the title style of a pane.
func PanelTitle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(T().Primary).Bold(true)
	}
	return T().S().Muted
}
