package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const tasksFileName = "tasks.json"

// FileStore keeps the collection in a single JSON file under dataDir,
// rewritten wholesale on every Save.
type FileStore struct {
	path string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	return &FileStore{path: filepath.Join(dataDir, tasksFileName)}, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the whole collection. A missing file is not an error: it is
// created holding an empty array and an empty collection is returned. A file
// that exists but does not parse is an error; the caller decides how loudly
// to fail, the data is never silently discarded.
func (s *FileStore) Load() ([]Task, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Save(nil); err != nil {
				return nil, err
			}
			return []Task{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var tasks []Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (s *FileStore) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
