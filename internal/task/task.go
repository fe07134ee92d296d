package task

import (
	"github.com/google/uuid"
)

// Task is a persisted user-created record. ID is assigned at creation and
// never reused; CreatedAt is fixed while ModifiedAt advances on every edit.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   LocalTime `json:"created_at"`
	ModifiedAt  LocalTime `json:"modified_at"`
}

// New builds a fresh to-do task. Input validation is the Tracker's job,
// not done here.
func New(title, description string) Task {
	now := Now()

	return Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      StatusToDo,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
}

// Patch is a partial update. nil pointer => "no change".
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply sets each present field and touches ModifiedAt. The touch is
// unconditional: applying a zero patch still counts as an edit.
func (t *Task) Apply(p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.Touch()
}

// Single-field setters leave ModifiedAt alone; callers using them are
// responsible for a Touch afterward.

func (t *Task) SetTitle(title string) {
	t.Title = title
}

func (t *Task) SetDescription(description string) {
	t.Description = description
}

func (t *Task) SetStatus(status Status) {
	t.Status = status
}

// Touch advances ModifiedAt to the current time.
func (t *Task) Touch() {
	t.ModifiedAt = Now()
}
