package domain

import (
	"fmt"
	"strconv"
)

// Point is an integer coordinate pair. Points are values; nothing in the
// pipeline holds a reference into another stage's storage.
type Point struct {
	X, Y int64
}

// Pt is a convenience constructor for Point.
func Pt(x, y int64) Point { return Point{X: x, Y: y} }

// String returns the record form of the point, "x y".
func (p Point) String() string {
	return strconv.FormatInt(p.X, 10) + " " + strconv.FormatInt(p.Y, 10)
}

// Dataset is the ordered sequence of points read from one input, in line order.
type Dataset []Point

// Hull is the ordered sequence of hull vertices. The polygon is open: the
// edge from the last vertex back to the first is implied, not stored.
type Hull []Point

// Diagnostic describes one dataset line that was skipped.
type Diagnostic struct {
	Line   int   // 1-based line number
	Tokens int   // number of whitespace-separated tokens found
	Err    error // ErrMalformedRecord, possibly wrapping a parse error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }
