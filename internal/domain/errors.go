package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound reports a dataset path that does not name a regular file.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMalformedRecord marks a dataset line that was skipped. It is only ever
	// carried inside a Diagnostic; readers never return it.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInsufficientPoints reports fewer than three points going into the hull.
	ErrInsufficientPoints = errors.New("at least three points are required to compute the convex hull")

	// ErrDegenerateHull reports input whose points are all collinear or
	// coincident. It matches ErrInsufficientPoints under errors.Is.
	ErrDegenerateHull = fmt.Errorf("degenerate hull, fewer than three distinct vertices: %w", ErrInsufficientPoints)

	// ErrEmptyInput reports an empty point sequence handed to a serializer or renderer.
	ErrEmptyInput = errors.New("empty input")
)
