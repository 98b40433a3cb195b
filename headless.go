package main

import (
	"os"

	"github.com/cellux/bezier/bezier"
	"github.com/cellux/bezier/raster"
)

const colorBackground bezier.Color = 0x000000ff

// renderToFile renders a single frame of the given control points into a
// PNG file without opening a window.
func renderToFile(ed *bezier.Editor, points []bezier.Point, width, height int, lineWidth float32, path string) error {
	store := ed.Store()
	for _, pt := range points {
		if _, err := store.Insert(pt); err != nil {
			return err
		}
	}
	canvas := raster.NewCanvas(width, height, colorBackground)
	canvas.SetLineWidth(lineWidth)
	if _, err := ed.Frame(bezier.NewQueue(), canvas); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	logger.Info("rendered", "path", path, "points", store.Len(), "mode", ed.Mode(), "step", ed.Step())
	return f.Close()
}
