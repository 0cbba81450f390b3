// Package render draws datasets and their convex hulls as PNG plots.
//
// It is the rendering collaborator of the hull pipeline: it receives the
// original points and the ordered hull, closes the hull outline itself and
// never alters either sequence. Shapes are rasterized with
// golang.org/x/image/vector and labels are set in Go Regular via
// golang.org/x/image/font/opentype.
//
// Axis limits span every point with 5% padding on each side, or 10 units
// when all coordinates on an axis are equal.
package render
