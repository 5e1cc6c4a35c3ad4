package utils

import (
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory to the nearest go.mod.
func GetProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// GetDataDir returns data/ under the project root.
func GetDataDir() string {
	return filepath.Join(GetProjectRoot(), "data")
}
