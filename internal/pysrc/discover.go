package pysrc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is one directory's worth of discovered Python sources.
type Dir struct {
	Path    string
	Files   []string // .py paths in lexicographic order
	HasInit bool     // true when an __init__.py marks the directory as a package
}

// Discover lists the Python files directly inside dir in lexicographic
// order. Base names matching any exclude glob are dropped. A directory
// containing no Python files is a discovery error.
func Discover(dir string, excludes []string) (Dir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Dir{}, err
	}
	result := Dir{Path: dir}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		if excluded(name, excludes) {
			continue
		}
		if name == "__init__.py" {
			result.HasInit = true
		}
		result.Files = append(result.Files, filepath.Join(dir, name))
	}
	if len(result.Files) == 0 {
		return result, fmt.Errorf("there are no Python (.py) files in %s", dir)
	}
	return result, nil
}

func excluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
