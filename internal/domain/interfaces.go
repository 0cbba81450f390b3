package domain

import "io"

// DatasetReader loads a dataset from a named resource.
type DatasetReader interface {
	ReadDataset(path string) (Dataset, []Diagnostic, error)
}

// HullWriter persists a hull to a named resource, replacing its contents.
type HullWriter interface {
	WriteHull(path string, h Hull) error
}

// HullComputer computes the convex hull of a dataset.
type HullComputer interface {
	Compute(points Dataset) (Hull, error)
}

// Renderer turns the original points and their hull into a visual artifact.
// Both sequences must be non-empty; the renderer closes the hull outline itself.
type Renderer interface {
	Render(w io.Writer, points Dataset, h Hull) error
}
