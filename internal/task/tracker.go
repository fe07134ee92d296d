package task

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tracker owns the in-memory collection and is its sole mutator. Tasks keep
// insertion order. Every successful mutation rewrites the whole collection
// through the Store, synchronously; a failed Save is returned to the caller
// while the in-memory state is kept.
type Tracker struct {
	store Store
	tasks []Task
}

func NewTracker(store Store) (*Tracker, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, tasks: tasks}, nil
}

// Create validates, appends and persists. A blank (after trimming) title or
// description is a silent no-op: ok is false and no task is created.
func (tr *Tracker) Create(title, description string) (Task, bool, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return Task{}, false, nil
	}

	t := New(title, description)
	tr.tasks = append(tr.tasks, t)
	return t, true, tr.save()
}

// Delete removes the task with the given id. Deleting an absent id is
// idempotent; the collection is persisted either way.
func (tr *Tracker) Delete(id uuid.UUID) error {
	tr.tasks = slices.DeleteFunc(tr.tasks, func(t Task) bool {
		return t.ID == id
	})
	return tr.save()
}

// Update applies a patch to the task with the given id and persists. An
// absent id is a silent no-op (ok false, no error). The patch touch is
// unconditional, so an empty patch still advances ModifiedAt.
func (tr *Tracker) Update(id uuid.UUID, p Patch) (Task, bool, error) {
	for i := range tr.tasks {
		if tr.tasks[i].ID == id {
			tr.tasks[i].Apply(p)
			return tr.tasks[i], true, tr.save()
		}
	}
	return Task{}, false, nil
}

func (tr *Tracker) save() error {
	return tr.store.Save(tr.tasks)
}

// Get finds a task by id.
func (tr *Tracker) Get(id uuid.UUID) (Task, bool) {
	for _, t := range tr.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns the collection in insertion order.
func (tr *Tracker) All() []Task {
	return slices.Clone(tr.tasks)
}

func (tr *Tracker) Len() int {
	return len(tr.tasks)
}

// ByStatus returns the tasks in the given bucket, insertion order preserved.
func (tr *Tracker) ByStatus(status Status) []Task {
	out := make([]Task, 0)
	for _, t := range tr.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// CreatedAt returns the tasks created at exactly the given instant.
func (tr *Tracker) CreatedAt(at time.Time) []Task {
	out := make([]Task, 0)
	for _, t := range tr.tasks {
		if t.CreatedAt.Time.Equal(at) {
			out = append(out, t)
		}
	}
	return out
}

// CreatedBetween returns the tasks created within [start, end], bounds
// inclusive.
func (tr *Tracker) CreatedBetween(start, end time.Time) []Task {
	out := make([]Task, 0)
	for _, t := range tr.tasks {
		c := t.CreatedAt.Time
		if !c.Before(start) && !c.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the tasks whose title or description contains text as a
// case-sensitive substring.
func (tr *Tracker) Search(text string) []Task {
	out := make([]Task, 0)
	for _, t := range tr.tasks {
		if strings.Contains(t.Title, text) || strings.Contains(t.Description, text) {
			out = append(out, t)
		}
	}
	return out
}
