package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"convexhull/internal/domain"
)

// checkRegular fails with domain.ErrResourceNotFound unless path names an
// existing regular file.
func checkRegular(path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("can't find dataset %q: %w", path, domain.ErrResourceNotFound)
	}
	return nil
}

// writeWith renders into a buffer via fn and then replaces path atomically,
// so a failed encode never truncates an existing file.
func writeWith(path string, mode os.FileMode, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), mode)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
