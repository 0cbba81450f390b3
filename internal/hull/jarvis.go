package hull

import (
	"context"
	"fmt"
	"log/slog"

	"convexhull/internal/domain"
	"convexhull/internal/logging"
)

// JarvisMarch is the gift-wrapping hull computer.
type JarvisMarch struct{}

// Compute implements domain.HullComputer.
func (JarvisMarch) Compute(points domain.Dataset) (domain.Hull, error) {
	return Compute(points)
}

var _ domain.HullComputer = JarvisMarch{}

// Compute returns the convex hull of points in counter-clockwise order,
// starting at the leftmost point. It runs in O(n·h) time.
//
// Fewer than three points fail with domain.ErrInsufficientPoints; input whose
// hull has fewer than three distinct vertices fails with domain.ErrDegenerateHull.
// points is not modified; hull vertices are copies.
func Compute(points domain.Dataset) (domain.Hull, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("%d points: %w", n, domain.ErrInsufficientPoints)
	}

	log := logging.Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	start := leftmost(points)
	var hull domain.Hull
	for p := start; ; {
		hull = append(hull, points[p])
		q := wrap(points, p, start)
		if debug {
			log.Debug("hull vertex", "index", p, "point", points[p], "next", q)
		}
		if points[q] == points[start] {
			break
		}
		// Vertices are pairwise distinct, so more than n of them means the
		// march cannot close.
		if len(hull) == n {
			return nil, fmt.Errorf("march did not return to %v after %d vertices", points[start], n)
		}
		p = q
	}

	if len(hull) < 3 {
		return nil, fmt.Errorf("%d distinct vertices from %d points: %w", len(hull), n, domain.ErrDegenerateHull)
	}
	return hull, nil
}

// leftmost returns the index of the first point with minimum X.
func leftmost(points domain.Dataset) int {
	l := 0
	for i := 1; i < len(points); i++ {
		if points[i].X < points[l].X {
			l = i
		}
	}
	return l
}

// wrap picks the hull vertex following points[p]: the candidate that leaves
// no point strictly to the right of the edge.
func wrap(points domain.Dataset, p, start int) int {
	q := (p + 1) % len(points)
	for i := range points {
		if replaces(points[p], points[q], points[i], points[start]) {
			q = i
		}
	}
	return q
}

// replaces reports whether candidate c should replace q as the vertex after p.
func replaces(p, q, c, start domain.Point) bool {
	if c == p {
		return false
	}
	if q == p {
		return true
	}
	switch Orient(p, q, c) {
	case Clockwise:
		return true
	case CounterClockwise:
		return false
	}

	// Collinear. Candidates on both sides of p only occur when p is a start
	// vertex in the middle of the vertical minimum-X edge; the walk goes down.
	if opposite(p, q, c) {
		return c.Y < q.Y
	}
	if q == start {
		return false
	}
	if c == start {
		return true
	}
	return beyond(p, q, c)
}
