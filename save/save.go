package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Data is the persisted progression shared across levels.
type Data struct {
	CoinsCount int `json:"coins_count"`
}

// Save is the save file. It is read once and written only at level
// completion boundaries.
type Save struct {
	path string
	Data
}

// Load reads the save at path, starting fresh when the file does not exist.
// An empty path yields an in-memory save.
func Load(path string) (*Save, error) {
	s := &Save{path: path}
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("save: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.Data); err != nil {
		return nil, fmt.Errorf("save: unmarshal %s: %w", path, err)
	}
	return s, nil
}

// Path is the backing file, empty for memory saves.
func (s *Save) Path() string { return s.path }

// AddCoins adds n coins and persists the save.
func (s *Save) AddCoins(n int) error {
	if n == 0 {
		return nil
	}
	s.CoinsCount += n
	return s.Write()
}

// Write persists the save.
func (s *Save) Write() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save: mkdir: %w", err)
	}
	b, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", s.path, err)
	}
	return nil
}
