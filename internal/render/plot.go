package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"convexhull/internal/domain"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

var (
	pointColor = color.RGBA{R: 128, B: 128, A: 255}
	hullColor  = color.RGBA{B: 255, A: 255}
	gridColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	inkColor   = color.Black
)

const (
	marginLeft   = 70
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50

	pointRadius = 3
	hullWidth   = 2
	gridLines   = 5
	labelSize   = 13
	titleSize   = 16
)

// Plot renders PNG scatter plots, optionally with a hull outline.
type Plot struct {
	Width, Height int
	font          *sfnt.Font
}

// New returns a Plot with the given canvas size. Non-positive sizes fall back
// to DefaultWidth and DefaultHeight.
func New(width, height int) (*Plot, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Plot{Width: width, Height: height, font: f}, nil
}

var _ domain.Renderer = (*Plot)(nil)

// Render implements domain.Renderer: the dataset as a scatter plot with the
// closed hull outline on top.
func (p *Plot) Render(w io.Writer, points domain.Dataset, h domain.Hull) error {
	if len(points) == 0 {
		return fmt.Errorf("dataset points: %w", domain.ErrEmptyInput)
	}
	if len(h) == 0 {
		return fmt.Errorf("convex hull points: %w", domain.ErrEmptyInput)
	}
	return p.draw(w, "Dataset points and convex hull", points, h)
}

// Scatter renders the dataset alone.
func (p *Plot) Scatter(w io.Writer, points domain.Dataset) error {
	if len(points) == 0 {
		return fmt.Errorf("dataset points: %w", domain.ErrEmptyInput)
	}
	return p.draw(w, "Points from dataset", points, nil)
}

func (p *Plot) draw(w io.Writer, title string, points domain.Dataset, h domain.Hull) error {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := &canvas{
		img:  img,
		z:    vector.NewRasterizer(p.Width, p.Height),
		area: image.Rect(marginLeft, marginTop, p.Width-marginRight, p.Height-marginBottom),
		lim:  limitsOf(points, h),
	}

	labels, err := p.face(labelSize)
	if err != nil {
		return err
	}
	defer labels.Close()
	heading, err := p.face(titleSize)
	if err != nil {
		return err
	}
	defer heading.Close()

	c.grid(labels)
	for _, pt := range points {
		x, y := c.project(pt)
		c.disc(x, y, pointRadius, pointColor)
	}
	for i, a := range h {
		b := h[(i+1)%len(h)] // closes the outline
		ax, ay := c.project(a)
		bx, by := c.project(b)
		c.segment(ax, ay, bx, by, hullWidth, hullColor)
	}

	c.textCentered(heading, title, float64(p.Width)/2, marginTop-14)
	c.textCentered(labels, "X", float64(c.area.Min.X+c.area.Dx()/2), float64(p.Height-12))
	c.text(labels, "Y", 8, float64(c.area.Min.Y+c.area.Dy()/2))
	c.legend(labels, len(h) > 0)

	return png.Encode(w, img)
}

func (p *Plot) face(size float64) (font.Face, error) {
	f, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	return f, nil
}

// limits are the data-space axis ranges of a plot.
type limits struct {
	minX, maxX, minY, maxY float64
}

func limitsOf(points domain.Dataset, h domain.Hull) limits {
	l := limits{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
	grow := func(pt domain.Point) {
		x, y := float64(pt.X), float64(pt.Y)
		l.minX, l.maxX = math.Min(l.minX, x), math.Max(l.maxX, x)
		l.minY, l.maxY = math.Min(l.minY, y), math.Max(l.maxY, y)
	}
	for _, pt := range points {
		grow(pt)
	}
	for _, pt := range h {
		grow(pt)
	}
	l.minX, l.maxX = pad(l.minX, l.maxX)
	l.minY, l.maxY = pad(l.minY, l.maxY)
	return l
}

func pad(lo, hi float64) (float64, float64) {
	d := (hi - lo) * 0.05
	if hi == lo {
		d = 10
	}
	return lo - d, hi + d
}

type canvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	area image.Rectangle
	lim  limits
}

// project maps data space (y up) to pixel space (y down).
func (c *canvas) project(pt domain.Point) (float32, float32) {
	return c.px(float64(pt.X)), c.py(float64(pt.Y))
}

func (c *canvas) px(x float64) float32 {
	t := (x - c.lim.minX) / (c.lim.maxX - c.lim.minX)
	return float32(float64(c.area.Min.X) + t*float64(c.area.Dx()))
}

func (c *canvas) py(y float64) float32 {
	t := (y - c.lim.minY) / (c.lim.maxY - c.lim.minY)
	return float32(float64(c.area.Max.Y) - t*float64(c.area.Dy()))
}

func (c *canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.z.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

func (c *canvas) disc(x, y, r float32, col color.Color) {
	const steps = 16
	c.z.MoveTo(x+r, y)
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		c.z.LineTo(x+r*float32(math.Cos(a)), y+r*float32(math.Sin(a)))
	}
	c.z.ClosePath()
	c.fill(col)
}

// segment strokes a straight line of the given width as a quad.
func (c *canvas) segment(x0, y0, x1, y1, width float32, col color.Color) {
	dx, dy := x1-x0, y1-y0
	n := float32(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return
	}
	ox, oy := -dy/n*width/2, dx/n*width/2
	c.z.MoveTo(x0+ox, y0+oy)
	c.z.LineTo(x1+ox, y1+oy)
	c.z.LineTo(x1-ox, y1-oy)
	c.z.LineTo(x0-ox, y0-oy)
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) rect(x0, y0, x1, y1 float32, col color.Color) {
	c.z.MoveTo(x0, y0)
	c.z.LineTo(x1, y0)
	c.z.LineTo(x1, y1)
	c.z.LineTo(x0, y1)
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) grid(face font.Face) {
	a := c.area
	for i := 0; i <= gridLines; i++ {
		t := float64(i) / gridLines

		xv := c.lim.minX + t*(c.lim.maxX-c.lim.minX)
		x := c.px(xv)
		c.segment(x, float32(a.Min.Y), x, float32(a.Max.Y), 1, gridColor)
		c.textCentered(face, tick(xv), float64(x), float64(a.Max.Y+18))

		yv := c.lim.minY + t*(c.lim.maxY-c.lim.minY)
		y := c.py(yv)
		c.segment(float32(a.Min.X), y, float32(a.Max.X), y, 1, gridColor)
		label := tick(yv)
		c.text(face, label, float64(a.Min.X)-6-float64(font.MeasureString(face, label).Ceil()), float64(y)+4)
	}

	frame := []float32{float32(a.Min.X), float32(a.Min.Y), float32(a.Max.X), float32(a.Max.Y)}
	c.segment(frame[0], frame[1], frame[2], frame[1], 1, inkColor)
	c.segment(frame[2], frame[1], frame[2], frame[3], 1, inkColor)
	c.segment(frame[2], frame[3], frame[0], frame[3], 1, inkColor)
	c.segment(frame[0], frame[3], frame[0], frame[1], 1, inkColor)
}

func (c *canvas) legend(face font.Face, withHull bool) {
	x := float32(c.area.Max.X - 150)
	y := float32(c.area.Min.Y + 10)
	c.rect(x-8, y-4, float32(c.area.Max.X-8), y+20, color.White)
	c.disc(x+6, y+8, pointRadius, pointColor)
	c.text(face, "Dataset points", float64(x)+18, float64(y)+13)
	if !withHull {
		return
	}
	c.rect(x-8, y+20, float32(c.area.Max.X-8), y+40, color.White)
	c.segment(x, y+28, x+12, y+28, hullWidth, hullColor)
	c.text(face, "Convex hull", float64(x)+18, float64(y)+33)
}

// text draws s with its baseline origin at (x, y).
func (c *canvas) text(face font.Face, s string, x, y float64) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(inkColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

func (c *canvas) textCentered(face font.Face, s string, cx, y float64) {
	w := font.MeasureString(face, s).Ceil()
	c.text(face, s, cx-float64(w)/2, y)
}

func tick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
