package locale

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the current-locale preference across sessions.
type Store interface {
	Load() (string, error)
	Save(code string) error
}

type preferenceFile struct {
	Locale string `json:"locale"`
}

// FileStore keeps the preference in a small JSON file. A missing file is not
// an error; Load returns an empty code and the provider falls back to the
// default locale.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed preference store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var pref preferenceFile
	if err := json.Unmarshal(data, &pref); err != nil {
		// A corrupt preference file behaves like no preference at all.
		return "", nil
	}
	return pref.Locale, nil
}

func (s *FileStore) Save(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(preferenceFile{Locale: code})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStore is an in-memory Store for scaffolding and tests.
type MemoryStore struct {
	mu   sync.Mutex
	code string
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code, nil
}

func (s *MemoryStore) Save(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	return nil
}
