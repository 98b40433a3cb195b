// Package raster draws bezier draw commands into an in-memory RGBA image,
// for headless rendering and PNG export.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/cellux/bezier/bezier"
)

// tracer writes to trace with key 'raster'
func tracer() tracing.Trace {
	return tracing.Select("raster")
}

// Canvas is a bezier.DrawSink backed by an *image.RGBA.
type Canvas struct {
	img       *image.RGBA
	bg        color.RGBA
	lineWidth float32
	rast      *vector.Rasterizer
}

// NewCanvas creates a width×height canvas cleared to bg.
func NewCanvas(width, height int, bg bezier.Color) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:        rgba(bg),
		lineWidth: 1,
		rast:      vector.NewRasterizer(width, height),
	}
	c.Clear()
	return c
}

func rgba(c bezier.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// SetLineWidth sets the width of lines drawn from now on, in pixels.
func (c *Canvas) SetLineWidth(w float32) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
}

// DrawLine strokes the segment p0-p1 as a quad of the current line width.
func (c *Canvas) DrawLine(p0, p1 bezier.Point, col bezier.Color) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.FillRect(p0, bezier.Pt(1, 1), col)
		return
	}
	half := float64(c.lineWidth) / 2
	nx, ny := -dy/length*half, dx/length*half
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.MoveTo(float32(p0.X+nx), float32(p0.Y+ny))
	c.rast.LineTo(float32(p1.X+nx), float32(p1.Y+ny))
	c.rast.LineTo(float32(p1.X-nx), float32(p1.Y-ny))
	c.rast.LineTo(float32(p0.X-nx), float32(p0.Y-ny))
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(rgba(col)), image.Point{})
}

// FillRect fills the axis-aligned rectangle at origin, snapped to whole
// pixels and clipped to the canvas.
func (c *Canvas) FillRect(origin, size bezier.Point, col bezier.Color) {
	r := image.Rect(
		int(math.Floor(origin.X)), int(math.Floor(origin.Y)),
		int(math.Ceil(origin.X+size.X)), int(math.Ceil(origin.Y+size.Y)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(rgba(col)), image.Point{}, draw.Over)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	tracer().Debugf("encoding %v canvas", c.img.Bounds().Size())
	return png.Encode(w, c.img)
}
