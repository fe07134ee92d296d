package ui

import (
	"fmt"
	"strings"

	"github.com/DannerDQ/task-tracker/internal/task"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Task Tracker"))
	b.WriteString("\n\n")

	if m.mode == modeCreate {
		b.WriteString(m.renderCreateForm())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(secondaryStyle.Render("No tasks match. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		for i, t := range vis {
			b.WriteString(m.renderTask(t, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.lastErr {
		b.WriteString(errorLineStyle.Render(m.status))
	} else {
		b.WriteString(statusLineStyle.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderCreateForm() string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("New task"))
	b.WriteString("\n")
	b.WriteString(m.renderFieldLabel("Title", m.createFocus == createTitle))
	b.WriteString(m.newTitle.View())
	b.WriteString("\n")
	b.WriteString(m.renderFieldLabel("Description", m.createFocus == createDescription))
	b.WriteString("\n")
	b.WriteString(m.newDescription.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFilterBar() string {
	var parts []string

	render := func(label string, active bool) string {
		if active {
			return filterActiveStyle.Render(label)
		}
		return filterInactiveStyle.Render(label)
	}

	parts = append(parts, render("All", m.query.Status == nil))
	for _, s := range task.AllStatuses {
		parts = append(parts, render(s.Label(), m.query.Status != nil && *m.query.Status == s))
	}

	bar := strings.Join(parts, "  ")
	if m.mode == modeSearch || m.query.Text != "" {
		return bar + "\n" + "Search: " + m.search.View()
	}
	return bar
}

func (m Model) renderTask(t task.Task, selected bool) string {
	v := m.views[t.ID]
	if v != nil && v.state == stateEdit {
		return m.renderEditCard(v)
	}
	return m.renderStaticCard(t, selected)
}

func (m Model) renderStaticCard(t task.Task, selected bool) string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(t.Title))
	b.WriteString("  ")
	b.WriteString(statusBadge(t.Status))
	b.WriteString("\n")
	b.WriteString(t.Description)
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("Created: " + formatDateTime(t.CreatedAt)))
	if !t.ModifiedAt.Equal(t.CreatedAt) {
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("Last modified: " + formatDateTime(t.ModifiedAt)))
	}

	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func (m Model) renderEditCard(v *taskView) string {
	var b strings.Builder

	b.WriteString(m.renderFieldLabel("Title", v.focus == fieldTitle))
	b.WriteString(v.title.View())
	b.WriteString("\n")
	b.WriteString(m.renderFieldLabel("Description", v.focus == fieldDescription))
	b.WriteString("\n")
	b.WriteString(v.description.View())
	b.WriteString("\n")
	b.WriteString(m.renderFieldLabel("Status", v.focus == fieldStatus))
	b.WriteString(fmt.Sprintf("< %s >", v.status.Label()))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("ctrl+s accept • esc cancel • ctrl+d delete"))

	return selectedCardStyle.Render(b.String())
}

func (m Model) renderFieldLabel(label string, focused bool) string {
	if focused {
		return focusLabelStyle.Render("> "+label+": ")
	}
	return secondaryStyle.Render("  " + label + ": ")
}
