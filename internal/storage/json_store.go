package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/dayplanner/internal/models"
)

// JSONStore keeps settings in the host's plugin data.json. Keys the record does
// not know about are preserved on save.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

// Init writes a defaults-only data.json unless one already exists
func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access settings file: %w", err)
	}
	return s.write(models.DefaultSettings())
}

// Load succeeds when the file is missing: the host has simply never saved, and
// GetSettings then returns the defaults.
func (s *JSONStore) Load() error {
	if _, err := s.readRaw(); err != nil {
		return err
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readRaw()
	if err != nil {
		return models.Settings{}, err
	}
	return models.ParseSettingsJSON(data)
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(settings)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) readRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return data, nil
}

// write merges settings over the existing document and replaces the file atomically
func (s *JSONStore) write(settings models.Settings) error {
	doc := map[string]json.RawMessage{}
	existing, err := s.readRaw()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return fmt.Errorf("failed to parse settings file: %w", err)
		}
	}

	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}
