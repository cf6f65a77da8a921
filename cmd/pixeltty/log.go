package main

import (
	"os"
	"path/filepath"
)

func openLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "pixeltty.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
