package store

import (
	"fmt"
	"io"
	"path/filepath"

	"convexhull/internal/domain"
)

// FileStore reads datasets and writes hulls and rendered artifacts on disk.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore that resolves relative paths against dir.
// An empty dir leaves paths as given.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) resolve(path string) string {
	if s.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}

// WriteArtifact replaces path with whatever fn writes, e.g. a rendered plot.
func (s *FileStore) WriteArtifact(path string, fn func(io.Writer) error) error {
	path = s.resolve(path)
	if err := writeWith(path, 0o644, fn); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}

// Compile-time assertions that FileStore implements the domain contracts.
var (
	_ domain.DatasetReader = (*FileStore)(nil)
	_ domain.HullWriter    = (*FileStore)(nil)
)
