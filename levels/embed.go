package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var LevelsFS embed.FS

// Install copies the embedded levels into dir unless dir already holds
// level files. Returns the number of files written.
func Install(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("levels: mkdir %s: %w", dir, err)
	}
	existing, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	names, err := fs.Glob(LevelsFS, "data/*.json")
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		b, err := fs.ReadFile(LevelsFS, name)
		if err != nil {
			return 0, fmt.Errorf("levels: read embedded %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, filepath.Base(name)), b, 0o644); err != nil {
			return 0, fmt.Errorf("levels: install %s: %w", name, err)
		}
	}
	return len(names), nil
}
