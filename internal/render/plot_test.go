package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"convexhull/internal/domain"
	"convexhull/internal/render"
)

func decode(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img
}

// count returns how many pixels satisfy keep, on 8-bit channels.
func count(img image.Image, keep func(r, g, b uint8) bool) int {
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if keep(uint8(r>>8), uint8(g>>8), uint8(b>>8)) {
				n++
			}
		}
	}
	return n
}

func blue(r, g, b uint8) bool   { return b > 200 && r < 90 && g < 90 }
func purple(r, g, b uint8) bool { return r > 90 && r < 190 && b > 90 && b < 190 && g < 70 }

func TestRender_DrawsPointsAndHull(t *testing.T) {
	p, err := render.New(0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	points := domain.Dataset{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}}
	h := domain.Hull{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	var buf bytes.Buffer
	if err := p.Render(&buf, points, h); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := decode(t, buf.Bytes())
	if got := img.Bounds().Size(); got != image.Pt(render.DefaultWidth, render.DefaultHeight) {
		t.Fatalf("canvas %v, want %dx%d", got, render.DefaultWidth, render.DefaultHeight)
	}
	if count(img, blue) < 500 {
		t.Fatal("hull outline missing")
	}
	if count(img, purple) == 0 {
		t.Fatal("dataset points missing")
	}
}

func TestScatter_NoHull(t *testing.T) {
	p, err := render.New(320, 200)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := p.Scatter(&buf, domain.Dataset{{X: 5, Y: 5}, {X: 5, Y: 5}}); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	img := decode(t, buf.Bytes())
	if got := img.Bounds().Size(); got != image.Pt(320, 200) {
		t.Fatalf("canvas %v, want 320x200", got)
	}
	if count(img, blue) != 0 {
		t.Fatal("scatter plot should not draw a hull")
	}
	if count(img, purple) == 0 {
		t.Fatal("dataset points missing")
	}
}

func TestRender_EmptyInput(t *testing.T) {
	p, err := render.New(0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	pts := domain.Dataset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	if err := p.Render(&buf, nil, domain.Hull(pts)); !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("empty dataset: got %v", err)
	}
	if err := p.Render(&buf, pts, nil); !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("empty hull: got %v", err)
	}
	if err := p.Scatter(&buf, nil); !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("empty scatter: got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written on error")
	}
}
