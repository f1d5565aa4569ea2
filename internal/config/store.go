package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists CorrectionConfig records keyed by scope in a single JSON
// file. The file survives process restarts; a missing file behaves as an
// empty store.
type Store struct {
	mu   sync.Mutex
	path string
}

// storeFile is the on-disk layout.
type storeFile struct {
	Scopes map[string]CorrectionConfig `json:"scopes"`
}

// NewStore creates a store backed by the given file path. The file is not
// created until the first update.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default store location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "colorblind", "config.json"), nil
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Read returns the configuration for a scope. A scope with no entry falls
// back to the global entry, and a store with no global entry falls back to
// Default(). Missing entries are never an error; only I/O or decode failures
// are.
func (s *Store) Read(scope string) (CorrectionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return CorrectionConfig{}, err
	}

	scope = NormalizeScope(scope)
	if cfg, ok := f.Scopes[scope]; ok {
		return cfg, nil
	}
	if cfg, ok := f.Scopes[GlobalScope]; ok {
		return cfg, nil
	}
	return Default(), nil
}

// Update validates and persists the configuration for a scope. Validation
// failures are returned as *ValidationError and leave the store untouched.
func (s *Store) Update(scope string, cfg CorrectionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}

	f.Scopes[NormalizeScope(scope)] = cfg
	return s.save(f)
}

// All returns a copy of every stored scope entry.
func (s *Store) All() (map[string]CorrectionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}

	scopes := make(map[string]CorrectionConfig, len(f.Scopes))
	for k, v := range f.Scopes {
		scopes[k] = v
	}
	return scopes, nil
}

func (s *Store) load() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeFile{Scopes: make(map[string]CorrectionConfig)}, nil
		}
		return nil, fmt.Errorf("failed to read config store: %w", err)
	}

	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config store %s: %w", s.path, err)
	}
	if f.Scopes == nil {
		f.Scopes = make(map[string]CorrectionConfig)
	}
	return &f, nil
}

func (s *Store) save(f *storeFile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config store: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config store: %w", err)
	}
	return nil
}
