package store

import (
	"bufio"
	"fmt"
	"io"

	"convexhull/internal/domain"
)

// EncodeHull writes one "<x> <y>" line per vertex in hull order. The closing
// vertex is not repeated.
func EncodeHull(w io.Writer, h domain.Hull) error {
	if len(h) == 0 {
		return fmt.Errorf("encode hull: %w", domain.ErrEmptyInput)
	}
	bw := bufio.NewWriter(w)
	for _, v := range h {
		if _, err := bw.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteHull implements domain.HullWriter. The destination is overwritten.
func (s *FileStore) WriteHull(path string, h domain.Hull) error {
	path = s.resolve(path)
	if err := writeWith(path, 0o644, func(w io.Writer) error { return EncodeHull(w, h) }); err != nil {
		return fmt.Errorf("save hull %q: %w", path, err)
	}
	return nil
}
