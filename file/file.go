package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ReadLines reads a whole text file into lines, trailing newline dropped.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// WriteLines writes lines joined by newlines, with a trailing newline, to
// path. The content lands in a uuid-named temp file first and is renamed
// into place, so a failed run never leaves a partial output file.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")

	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(tmp, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
