// Package local implements blob.Store on the local filesystem.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"directorybolt/pkg/blob"
)

// Store writes objects below a base directory.
type Store struct {
	baseDir string
}

var _ blob.Store = (*Store)(nil)

// New creates the base directory when missing.
func New(baseDir string) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create base directory: %w", err)
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("could not resolve base directory: %w", err)
	}

	return &Store{baseDir: abs}, nil
}

// PutObject writes the object and returns a file:// URI.
func (s *Store) PutObject(_ context.Context, path, _ string, r io.Reader) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path is required")
	}

	full := filepath.Clean(filepath.Join(s.baseDir, path))
	if !strings.HasPrefix(full, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the base directory", path)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("could not create parent directories: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()

		return "", fmt.Errorf("could not write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not close file: %w", err)
	}

	return "file://" + full, nil
}
