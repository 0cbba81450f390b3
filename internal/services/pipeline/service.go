package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"convexhull/internal/domain"
	"convexhull/internal/fingerprint"
	"convexhull/internal/hull"
	"convexhull/internal/logging"
)

// Plotter renders hull plots and plain scatter plots.
type Plotter interface {
	domain.Renderer
	Scatter(w io.Writer, points domain.Dataset) error
}

// ArtifactWriter replaces a named resource with whatever fn writes.
type ArtifactWriter interface {
	WriteArtifact(path string, fn func(io.Writer) error) error
}

// ErrNoPlotter is returned when a plot is requested but no renderer is wired.
var ErrNoPlotter = errors.New("no renderer configured")

// Request names the resources of one run. Empty Output or Plot skip that stage.
type Request struct {
	Input  string
	Output string
	Plot   string
	Verify bool
}

// Result is everything a successful run produced.
type Result struct {
	Points      domain.Dataset
	Skipped     []domain.Diagnostic
	Hull        domain.Hull
	Metrics     hull.Metrics
	Fingerprint string
}

// Service wires the pipeline stages together.
type Service struct {
	reader    domain.DatasetReader
	computer  domain.HullComputer
	writer    domain.HullWriter
	artifacts ArtifactWriter
	plotter   Plotter
}

// New constructs a pipeline Service. plotter may be nil when no plots are needed.
func New(
	reader domain.DatasetReader,
	computer domain.HullComputer,
	writer domain.HullWriter,
	artifacts ArtifactWriter,
	plotter Plotter,
) *Service {
	return &Service{
		reader:    reader,
		computer:  computer,
		writer:    writer,
		artifacts: artifacts,
		plotter:   plotter,
	}
}

// Run executes a full hull run. ctx is checked between stages.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	log := logging.Logger()
	var res Result

	points, skipped, err := s.reader.ReadDataset(req.Input)
	if err != nil {
		return res, err
	}
	res.Points, res.Skipped = points, skipped

	if err := ctx.Err(); err != nil {
		return res, err
	}
	h, err := s.computer.Compute(points)
	if err != nil {
		return res, fmt.Errorf("compute hull: %w", err)
	}
	if req.Verify {
		if err := hull.Verify(points, h); err != nil {
			return res, err
		}
	}
	res.Hull = h
	res.Metrics = hull.Measure(h)
	log.Info("computed hull", "vertices", len(h), "area", res.Metrics.Area)

	if res.Fingerprint, err = fingerprint.Hull(h); err != nil {
		return res, err
	}

	if req.Output != "" {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.writer.WriteHull(req.Output, h); err != nil {
			return res, err
		}
		log.Info("saved hull", "path", req.Output)
	}

	if req.Plot != "" {
		if err := s.plot(ctx, req.Plot, func(w io.Writer) error {
			return s.plotter.Render(w, points, h)
		}); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Scatter reads the dataset at input and plots it without a hull.
func (s *Service) Scatter(ctx context.Context, input, plot string) (domain.Dataset, []domain.Diagnostic, error) {
	points, skipped, err := s.reader.ReadDataset(input)
	if err != nil {
		return nil, nil, err
	}
	err = s.plot(ctx, plot, func(w io.Writer) error {
		return s.plotter.Scatter(w, points)
	})
	return points, skipped, err
}

func (s *Service) plot(ctx context.Context, path string, fn func(io.Writer) error) error {
	if s.plotter == nil || s.artifacts == nil {
		return ErrNoPlotter
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.artifacts.WriteArtifact(path, fn); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	logging.Logger().Info("saved plot", "path", path)
	return nil
}
