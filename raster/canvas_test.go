package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellux/bezier/bezier"
)

const (
	black = bezier.Color(0x000000ff)
	red   = bezier.Color(0xff0000ff)
	white = bezier.Color(0xffffffff)
)

func TestCanvasClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCanvas(8, 4, black)
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(7, 3))
}

func TestCanvasFillRect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCanvas(20, 20, black)
	c.FillRect(bezier.Pt(5, 5), bezier.Pt(4, 4), red)
	img := c.Image()
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(4, 5))
	// clipped, must not panic
	c.FillRect(bezier.Pt(-10, -10), bezier.Pt(12, 12), white)
	c.FillRect(bezier.Pt(100, 100), bezier.Pt(5, 5), white)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(0, 0))
}

func TestCanvasDrawLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCanvas(20, 20, black)
	c.SetLineWidth(2)
	c.DrawLine(bezier.Pt(2, 10), bezier.Pt(18, 10), white)
	img := c.Image()
	// the quad covers rows 9 and 10 completely
	assert.GreaterOrEqual(t, img.RGBAAt(10, 9).R, uint8(0xf0))
	assert.GreaterOrEqual(t, img.RGBAAt(10, 10).G, uint8(0xf0))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(10, 5))
	// degenerate segment becomes a dot
	c.DrawLine(bezier.Pt(3, 3), bezier.Pt(3, 3), red)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(3, 3))
}

func TestCanvasAsEditorSink(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := bezier.DefaultConfig()
	ed, err := bezier.NewEditor(cfg)
	require.NoError(t, err)
	q := bezier.NewQueue(
		bezier.PointerDown{Pos: bezier.Pt(10, 50)}, bezier.PointerUp{},
		bezier.PointerDown{Pos: bezier.Pt(50, 10)}, bezier.PointerUp{},
		bezier.PointerDown{Pos: bezier.Pt(90, 50)}, bezier.PointerUp{},
	)
	c := NewCanvas(100, 100, black)
	running, err := ed.Frame(q, c)
	require.NoError(t, err)
	assert.True(t, running)
	r, g, b, a := cfg.Palette.Marker.RGBA()
	assert.Equal(t, color.RGBA{R: r, G: g, B: b, A: a}, c.Image().RGBAAt(50, 10))

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), decoded.Bounds())
}
