// Package pipeline runs the dataset -> hull -> output flow as one call.
//
// A run reads the dataset, computes its convex hull, optionally verifies the
// hull invariants, writes the hull file and renders a plot. It returns a
// single Result or the first fatal error; skipped dataset lines are carried
// in the Result, never returned as errors.
package pipeline
