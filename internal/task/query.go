package task

import "strings"

// Query is the transient filter state behind the visible task list: a
// case-sensitive substring plus an optional status bucket. nil Status means
// every bucket; empty Text matches everything.
type Query struct {
	Text   string
	Status *Status
}

func (q Query) Match(t Task) bool {
	if q.Status != nil && t.Status != *q.Status {
		return false
	}
	return strings.Contains(t.Title, q.Text) || strings.Contains(t.Description, q.Text)
}

// Apply derives the visible subset, preserving the input order. Pure; the
// result is recomputed from scratch on every call.
func (q Query) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
