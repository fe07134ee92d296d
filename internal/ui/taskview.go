package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/DannerDQ/task-tracker/internal/task"
)

// editState is a task card's display mode.
type editState int

const (
	stateStatic editState = iota
	stateEdit
)

type editField int

const (
	fieldTitle editField = iota
	fieldDescription
	fieldStatus
)

// taskView is the per-task edit-state machine: a Static/Edit flag plus draft
// fields that stay independent of the canonical task until accepted. One
// view exists per task for as long as the task is on screen; drafts are
// re-seeded from the canonical values on every Static -> Edit transition.
type taskView struct {
	id    uuid.UUID
	state editState
	focus editField

	title       textinput.Model
	description textarea.Model
	status      task.Status
}

func newTaskView(t task.Task) *taskView {
	ti := textinput.New()
	ti.Placeholder = "Title..."
	ti.CharLimit = 200
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = "Description..."
	ta.CharLimit = 0
	ta.SetWidth(56)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	return &taskView{
		id:          t.ID,
		state:       stateStatic,
		title:       ti,
		description: ta,
		status:      t.Status,
	}
}

// beginEdit moves Static -> Edit, seeding the drafts from the canonical
// values at the moment of transition.
func (v *taskView) beginEdit(t task.Task) {
	v.state = stateEdit
	v.focus = fieldTitle
	v.title.SetValue(t.Title)
	v.description.SetValue(t.Description)
	v.status = t.Status
	v.title.Focus()
	v.description.Blur()
}

// endEdit returns to Static and clears draft-editing side state. Used by
// both cancel and accept; drafts are re-seeded on the next beginEdit, so
// nothing needs resetting here.
func (v *taskView) endEdit() {
	v.state = stateStatic
	v.title.Blur()
	v.description.Blur()
}

// patch builds the update request from the drafts against the canonical
// task: each field is included only when it differs.
func (v *taskView) patch(t task.Task) task.Patch {
	return buildPatch(t, v.title.Value(), v.description.Value(), v.status)
}

// buildPatch computes the accept-edit diff. An empty draft title means "no
// change", never "clear the title"; the description is compared and applied
// trimmed; status is included only when it moved buckets.
func buildPatch(t task.Task, title, description string, status task.Status) task.Patch {
	var p task.Patch
	if title != "" && title != t.Title {
		p.Title = &title
	}
	if d := strings.TrimSpace(description); d != t.Description {
		p.Description = &d
	}
	if status != t.Status {
		p.Status = &status
	}
	return p
}

func (v *taskView) focusNext() {
	v.setFocus((v.focus + 1) % 3)
}

func (v *taskView) focusPrev() {
	v.setFocus((v.focus + 2) % 3)
}

func (v *taskView) setFocus(f editField) {
	v.focus = f
	v.title.Blur()
	v.description.Blur()
	switch f {
	case fieldTitle:
		v.title.Focus()
	case fieldDescription:
		v.description.Focus()
	}
}

// handleInput routes a key press to the focused draft field. Status is not
// a text field; left/right cycle it instead.
func (v *taskView) handleInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch v.focus {
	case fieldTitle:
		v.title, cmd = v.title.Update(msg)
	case fieldDescription:
		v.description, cmd = v.description.Update(msg)
	case fieldStatus:
		switch msg.String() {
		case "left", "h":
			v.status = v.status.Prev()
		case "right", "l", " ":
			v.status = v.status.Next()
		}
	}
	return cmd
}
