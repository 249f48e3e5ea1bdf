package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Priority group header styles for list output.
var priorityStyles = map[domain.Priority]lipgloss.Style{
	domain.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	domain.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	domain.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	domain.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// mutedStyle renders secondary detail like counts and hints.
var mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// renderPriorityHeader renders a styled group header for list output.
func renderPriorityHeader(p domain.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		style = mutedStyle
	}
	return style.Render(p.Display())
}
