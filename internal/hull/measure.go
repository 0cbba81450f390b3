package hull

import (
	"math"

	"github.com/twpayne/go-geom"

	"convexhull/internal/domain"
)

// Metrics summarizes the polygon a hull describes.
type Metrics struct {
	Vertices  int
	Area      float64
	Perimeter float64
}

// Measure returns the vertex count, area and perimeter of h. The closing
// edge is included in the perimeter; the area is unsigned.
func Measure(h domain.Hull) Metrics {
	if len(h) == 0 {
		return Metrics{}
	}
	poly := Polygon(h)
	return Metrics{
		Vertices:  len(h),
		Area:      math.Abs(poly.Area()),
		Perimeter: poly.Length(),
	}
}

// Polygon converts h into a closed go-geom polygon.
func Polygon(h domain.Hull) *geom.Polygon {
	flat := make([]float64, 0, 2*(len(h)+1))
	for _, v := range h {
		flat = append(flat, float64(v.X), float64(v.Y))
	}
	if len(h) > 0 {
		flat = append(flat, float64(h[0].X), float64(h[0].Y))
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}
