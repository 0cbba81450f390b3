package render

import (
	"testing"

	"convexhull/internal/domain"
)

func TestLimitsOf_Padding(t *testing.T) {
	l := limitsOf(domain.Dataset{{X: 0, Y: 5}, {X: 100, Y: 5}}, domain.Hull{{X: 0, Y: 5}})
	want := limits{minX: -5, maxX: 105, minY: -5, maxY: 15}
	if l != want {
		t.Fatalf("got %+v, want %+v", l, want)
	}
}
