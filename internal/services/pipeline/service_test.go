package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"convexhull/internal/domain"
	"convexhull/internal/fingerprint"
	"convexhull/internal/hull"
	"convexhull/internal/render"
	"convexhull/internal/services/pipeline"
	"convexhull/internal/store"
)

func newService(t *testing.T, dir string) *pipeline.Service {
	t.Helper()
	fs := store.NewFileStore(dir)
	plot, err := render.New(320, 200)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return pipeline.New(fs, hull.JarvisMarch{}, fs, fs, plot)
}

func seed(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "dataset.txt"), []byte(body), 0o600); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}
}

func TestRun_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "0 0\n4 0\nbad line here\n4 4\n0 4\n2 2\n")
	svc := newService(t, dir)

	res, err := svc.Run(t.Context(), pipeline.Request{
		Input:  "dataset.txt",
		Output: "hull_dataset.txt",
		Plot:   "result.png",
		Verify: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := domain.Hull{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	if diff := cmp.Diff(want, res.Hull); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
	if len(res.Points) != 5 || len(res.Skipped) != 1 {
		t.Fatalf("got %d points and %d skipped, want 5 and 1", len(res.Points), len(res.Skipped))
	}
	if res.Metrics.Area != 16 {
		t.Fatalf("area = %v, want 16", res.Metrics.Area)
	}

	out, err := os.ReadFile(filepath.Join(dir, "hull_dataset.txt"))
	if err != nil {
		t.Fatalf("read hull file: %v", err)
	}
	if string(out) != "0 0\n4 0\n4 4\n0 4\n" {
		t.Fatalf("hull file = %q", out)
	}
	if fp := fingerprint.Sum(out); fp != res.Fingerprint {
		t.Fatalf("fingerprint %s does not match file digest %s", res.Fingerprint, fp)
	}

	img, err := os.ReadFile(filepath.Join(dir, "result.png"))
	if err != nil {
		t.Fatalf("read plot: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(img)); err != nil {
		t.Fatalf("plot is not a PNG: %v", err)
	}
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "3 9\n-2 4\n7 7\n0 0\n5 -1\n1 1\n6 3\n")
	svc := newService(t, dir)

	var prints []string
	for range 2 {
		res, err := svc.Run(t.Context(), pipeline.Request{Input: "dataset.txt"})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		prints = append(prints, res.Fingerprint)
	}
	if prints[0] != prints[1] {
		t.Fatalf("fingerprints differ: %v", prints)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	svc := newService(t, dir)

	if _, err := svc.Run(t.Context(), pipeline.Request{Input: "missing.txt"}); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("missing input: got %v", err)
	}

	seed(t, dir, "1 1\n2 2\nnope\n")
	_, err := svc.Run(t.Context(), pipeline.Request{Input: "dataset.txt", Output: "hull.txt"})
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("two points: got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "hull.txt")); !os.IsNotExist(statErr) {
		t.Fatal("no hull file may be written for a failed run")
	}

	seed(t, dir, "0 0\n1 1\n2 2\n3 3\n")
	if _, err := svc.Run(t.Context(), pipeline.Request{Input: "dataset.txt"}); !errors.Is(err, domain.ErrDegenerateHull) {
		t.Fatalf("collinear input: got %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "0 0\n4 0\n4 4\n")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := newService(t, dir).Run(ctx, pipeline.Request{Input: "dataset.txt"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) WriteHull(string, domain.Hull) error { return f.err }

func TestRun_WriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "0 0\n4 0\n4 4\n")
	fs := store.NewFileStore(dir)
	boom := errors.New("disk full")

	svc := pipeline.New(fs, hull.JarvisMarch{}, failingWriter{boom}, fs, nil)
	if _, err := svc.Run(t.Context(), pipeline.Request{Input: "dataset.txt", Output: "hull.txt"}); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
	if _, err := svc.Run(t.Context(), pipeline.Request{Input: "dataset.txt", Plot: "p.png"}); !errors.Is(err, pipeline.ErrNoPlotter) {
		t.Fatalf("got %v, want ErrNoPlotter", err)
	}
}

func TestScatter(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "1 1\n2 5\n")
	points, skipped, err := newService(t, dir).Scatter(t.Context(), "dataset.txt", "scatter.png")
	if err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	if len(points) != 2 || len(skipped) != 0 {
		t.Fatalf("got %d points, %d skipped", len(points), len(skipped))
	}
	if _, err := os.Stat(filepath.Join(dir, "scatter.png")); err != nil {
		t.Fatalf("plot not written: %v", err)
	}

	seed(t, dir, "not a point\n")
	if _, _, err := newService(t, dir).Scatter(t.Context(), "dataset.txt", "scatter.png"); !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("empty dataset: got %v", err)
	}
}
