package hull

import (
	"errors"
	"fmt"

	"convexhull/internal/domain"
)

// ErrInvalidHull is returned by Verify when a hull breaks one of its invariants.
var ErrInvalidHull = errors.New("invalid hull")

// Verify checks that h is a convex hull of points: at least three vertices,
// every vertex taken from points, and every point inside or on the boundary
// of the counter-clockwise polygon h describes.
func Verify(points domain.Dataset, h domain.Hull) error {
	if len(h) < 3 {
		return fmt.Errorf("%w: %d vertices", ErrInvalidHull, len(h))
	}

	known := make(map[domain.Point]struct{}, len(points))
	for _, pt := range points {
		known[pt] = struct{}{}
	}
	for i, v := range h {
		if _, ok := known[v]; !ok {
			return fmt.Errorf("%w: vertex %d (%v) is not a dataset point", ErrInvalidHull, i, v)
		}
	}

	for i, a := range h {
		b := h[(i+1)%len(h)]
		if a == b {
			return fmt.Errorf("%w: repeated vertex %v", ErrInvalidHull, a)
		}
		for _, c := range points {
			if Orient(a, b, c) == Clockwise {
				return fmt.Errorf("%w: point %v lies outside edge %v -> %v", ErrInvalidHull, c, a, b)
			}
		}
	}
	return nil
}
