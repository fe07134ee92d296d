package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DannerDQ/task-tracker/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("6"))

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	// Status badge palette mirrors the buckets: done reads as success,
	// to-do as urgent, in-progress as neutral.
	badgeDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Padding(0, 1)

	badgeToDoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)

	badgeInProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("3")).
				Padding(0, 1)

	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	filterActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	filterInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	focusLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

func statusBadge(s task.Status) string {
	switch s {
	case task.StatusDone:
		return badgeDoneStyle.Render(s.Label())
	case task.StatusInProgress:
		return badgeInProgressStyle.Render(s.Label())
	default:
		return badgeToDoStyle.Render(s.Label())
	}
}
