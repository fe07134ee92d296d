package task

import "slices"

// Store persists the whole collection. There is no partial write: Save
// always rewrites everything.
type Store interface {
	Load() ([]Task, error)
	Save(tasks []Task) error
}

// MemoryStore is an in-process Store, used by tests in place of file I/O.
type MemoryStore struct {
	tasks   []Task
	saveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailSavesWith makes every subsequent Save return err. Pass nil to heal.
func (s *MemoryStore) FailSavesWith(err error) {
	s.saveErr = err
}

// Tasks exposes the last saved collection.
func (s *MemoryStore) Tasks() []Task {
	return slices.Clone(s.tasks)
}

func (s *MemoryStore) Load() ([]Task, error) {
	return slices.Clone(s.tasks), nil
}

func (s *MemoryStore) Save(tasks []Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tasks = slices.Clone(tasks)
	return nil
}
