package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DannerDQ/task-tracker/internal/task"
)

func TestBuildPatch_NoChangesIsZero(t *testing.T) {
	tk := task.New("X", "Y")

	p := buildPatch(tk, "X", "Y", task.StatusToDo)
	assert.True(t, p.IsZero())
}

func TestBuildPatch_EmptyTitleMeansNoChange(t *testing.T) {
	tk := task.New("X", "Y")

	p := buildPatch(tk, "", "Z", task.StatusToDo)
	assert.Nil(t, p.Title)
	if assert.NotNil(t, p.Description) {
		assert.Equal(t, "Z", *p.Description)
	}
	assert.Nil(t, p.Status)
}

func TestBuildPatch_ChangedFields(t *testing.T) {
	tk := task.New("X", "Y")

	p := buildPatch(tk, "New title", "Y", task.StatusDone)
	if assert.NotNil(t, p.Title) {
		assert.Equal(t, "New title", *p.Title)
	}
	assert.Nil(t, p.Description)
	if assert.NotNil(t, p.Status) {
		assert.Equal(t, task.StatusDone, *p.Status)
	}
}

func TestBuildPatch_DescriptionComparedTrimmed(t *testing.T) {
	tk := task.New("X", "Y")

	// same text surrounded by whitespace: no change
	p := buildPatch(tk, "", "  Y\n", task.StatusToDo)
	assert.Nil(t, p.Description)

	// a real change is applied trimmed
	p = buildPatch(tk, "", "  Z  ", task.StatusToDo)
	if assert.NotNil(t, p.Description) {
		assert.Equal(t, "Z", *p.Description)
	}
}

func TestTaskView_BeginEditSeedsDrafts(t *testing.T) {
	tk := task.New("X", "Y")
	tk.Status = task.StatusInProgress

	v := newTaskView(tk)
	assert.Equal(t, stateStatic, v.state)

	v.beginEdit(tk)
	assert.Equal(t, stateEdit, v.state)
	assert.Equal(t, fieldTitle, v.focus)
	assert.Equal(t, "X", v.title.Value())
	assert.Equal(t, "Y", v.description.Value())
	assert.Equal(t, task.StatusInProgress, v.status)
}

func TestTaskView_EndEditReturnsToStatic(t *testing.T) {
	tk := task.New("X", "Y")
	v := newTaskView(tk)

	v.beginEdit(tk)
	v.title.SetValue("scratch")
	v.endEdit()
	assert.Equal(t, stateStatic, v.state)

	// drafts are re-seeded from canonical on the next transition
	v.beginEdit(tk)
	assert.Equal(t, "X", v.title.Value())
}

func TestTaskView_FocusCycles(t *testing.T) {
	v := newTaskView(task.New("X", "Y"))
	v.beginEdit(task.New("X", "Y"))

	assert.Equal(t, fieldTitle, v.focus)
	v.focusNext()
	assert.Equal(t, fieldDescription, v.focus)
	v.focusNext()
	assert.Equal(t, fieldStatus, v.focus)
	v.focusNext()
	assert.Equal(t, fieldTitle, v.focus)
	v.focusPrev()
	assert.Equal(t, fieldStatus, v.focus)
}
