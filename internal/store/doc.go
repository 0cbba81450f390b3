// Package store provides file-based persistence for datasets and hulls.
//
// Datasets are line-oriented text, one "<x> <y>" record per line. Reading is
// tolerant: a malformed line is skipped and reported as a domain.Diagnostic,
// never as an error. Hulls are written in the same shape, one vertex per line
// in hull order, replacing the destination atomically.
//
// FileStore implements domain.DatasetReader and domain.HullWriter. Relative
// paths are resolved against the store's base directory when one is set.
package store
