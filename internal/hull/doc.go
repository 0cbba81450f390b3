// Package hull computes convex hulls of integer point sets by gift wrapping
// (Jarvis march).
//
// # Orientation
//
// For points p, q, r the orientation value is
//
//	val = (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
//
// Zero means collinear, a positive value a clockwise turn and a negative
// value a counter-clockwise turn, in a y-up frame. The value is always
// computed exactly: int64 when every coordinate is within ±2^30, math/big
// otherwise. Hulls are emitted counter-clockwise.
//
// # Tie-breaking
//
// The march starts at the first point (in input order) with the minimum X.
// On collinear candidates the farthest one along the current ray wins, so
// interior points of a hull edge are never reported, except that the start
// vertex is always preferred on the closing run so the march terminates.
package hull
