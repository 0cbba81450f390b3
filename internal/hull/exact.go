package hull

import (
	"math/big"

	"convexhull/internal/domain"
)

// Orientation is the turn direction of an ordered point triple.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// exactLimit bounds coordinates for the int64 fast path: differences stay
// below 2^31, so a sum of two products stays below 2^63.
const exactLimit = 1 << 30

// span is the signed difference to - from.
type span struct{ from, to int64 }

func (s span) fits() bool {
	return s.from > -exactLimit && s.from < exactLimit && s.to > -exactLimit && s.to < exactLimit
}

func (s span) big() *big.Int {
	return new(big.Int).Sub(big.NewInt(s.to), big.NewInt(s.from))
}

// combineSign returns the sign of a*b - c*d, or of a*b + c*d when add is set.
func combineSign(a, b, c, d span, add bool) int {
	if a.fits() && b.fits() && c.fits() && d.fits() {
		x := (a.to - a.from) * (b.to - b.from)
		y := (c.to - c.from) * (d.to - d.from)
		if add {
			x += y
		} else {
			x -= y
		}
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	}
	x := new(big.Int).Mul(a.big(), b.big())
	y := new(big.Int).Mul(c.big(), d.big())
	if add {
		return x.Add(x, y).Sign()
	}
	return x.Sub(x, y).Sign()
}

// Orient classifies the turn p -> q -> r.
func Orient(p, q, r domain.Point) Orientation {
	switch combineSign(span{p.Y, q.Y}, span{q.X, r.X}, span{p.X, q.X}, span{q.Y, r.Y}, false) {
	case 1:
		return Clockwise
	case -1:
		return CounterClockwise
	}
	return Collinear
}

// beyond reports whether r lies past q on the ray from p through q.
// Only meaningful for collinear p, q, r.
func beyond(p, q, r domain.Point) bool {
	return combineSign(span{p.X, q.X}, span{q.X, r.X}, span{p.Y, q.Y}, span{q.Y, r.Y}, true) > 0
}

// opposite reports whether q and r lie on opposite sides of p.
// Only meaningful for collinear p, q, r.
func opposite(p, q, r domain.Point) bool {
	return combineSign(span{p.X, q.X}, span{p.X, r.X}, span{p.Y, q.Y}, span{p.Y, r.Y}, true) < 0
}
