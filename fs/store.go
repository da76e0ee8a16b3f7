// Package fs stores generated theme artifacts on the local file system.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.ArtifactStore = (*Store)(nil)

// Store reads and writes artifacts relative to a root directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. Absolute paths bypass the root.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Read returns the content at path, or nil if the file does not exist.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(s.path(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Write replaces the content at path, creating parent directories as needed.
// Unchanged content is not rewritten.
func (s *Store) Write(path string, data []byte) error {
	full := s.path(path)
	if current, err := os.ReadFile(full); err == nil && bytes.Equal(current, data) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Store) path(p string) string {
	if filepath.IsAbs(p) || s.root == "" {
		return p
	}
	return filepath.Join(s.root, p)
}
