package app

import (
	"convexhull/internal/domain"
	"convexhull/internal/hull"
	"convexhull/internal/render"
	"convexhull/internal/services/pipeline"
	"convexhull/internal/store"
)

// Wire bundles the stores and services used by the CLI.
type Wire struct {
	Store    *store.FileStore
	Hulls    domain.HullComputer
	Plot     *render.Plot
	Pipeline *pipeline.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	fs := store.NewFileStore(cfg.Dir)
	computer := hull.JarvisMarch{}

	plot, err := render.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Store:    fs,
		Hulls:    computer,
		Plot:     plot,
		Pipeline: pipeline.New(fs, computer, fs, fs, plot),
	}, nil
}
