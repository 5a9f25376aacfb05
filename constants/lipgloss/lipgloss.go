package lipgloss

import "github.com/charmbracelet/lipgloss"

// Shared terminal styles used across all commands.
var (
	BlueSky = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	Gray    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")).
			Padding(0, 1)
)
