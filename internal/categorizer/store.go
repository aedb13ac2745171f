package categorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrModelNotFound is returned by a ModelStore when no persisted model
// exists yet.
var ErrModelNotFound = errors.New("no persisted model")

// ModelStore abstracts persistence of a trained model, so tests can
// substitute an in-memory implementation for the on-disk artifact.
type ModelStore interface {
	Load() (*Model, error)
	Save(*Model) error
}

// FileStore persists the model as a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}
	return &m, nil
}

func (s *FileStore) Save(m *Model) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write model file: %w", err)
	}
	return nil
}

// MemoryStore holds the model in memory. Used by tests; LoadErr and SaveErr
// let tests simulate a corrupted or unwritable artifact.
type MemoryStore struct {
	Model   *Model
	LoadErr error
	SaveErr error
	Saved   int
}

func (s *MemoryStore) Load() (*Model, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Model == nil {
		return nil, ErrModelNotFound
	}
	return s.Model, nil
}

func (s *MemoryStore) Save(m *Model) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Model = m
	s.Saved++
	return nil
}
