package edgelist

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns the first existing regular file among path itself and
// dir/path for each of searchDirs, in order.
//
// Absolute paths are never joined onto search directories.
func Resolve(path string, searchDirs ...string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrSourceNotFound)
	}
	if isFile(path) {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		for _, dir := range searchDirs {
			if dir == "" {
				continue
			}
			candidate := filepath.Join(dir, path)
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
}

// ReadFile resolves path against searchDirs and parses the file it names.
func ReadFile(path string, searchDirs ...string) ([]Record, error) {
	resolved, err := Resolve(path, searchDirs...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}

	return records, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
