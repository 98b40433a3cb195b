// Command bezier is an interactive editor for Bézier curves of arbitrary
// degree.
//
// Usage:
//
//	bezier                                  # open the editor window
//	bezier -capacity 4 -policy wrap         # cubic curves, oldest point replaced
//	bezier -mode markers -step 0.02
//	bezier -render out.png -points "50,400 200,50 600,50 750,400"
//
// Click to add a control point, drag an existing point to move it, use
// the mouse wheel to change the sample step. Press F1 for key bindings.
package main

import (
	"flag"
	"log"

	"github.com/cellux/bezier/bezier"
)

const (
	defaultWidth     = 1024
	defaultHeight    = 768
	defaultFPS       = 60
	defaultLineWidth = 1.0
)

func main() {
	cfg := bezier.DefaultConfig()
	var (
		policyName = flag.String("policy", cfg.Policy.String(), "insertion policy when full: reject or wrap")
		modeName   = flag.String("mode", cfg.Mode.String(), "curve draw mode: polyline or markers")
		logLevel   = flag.String("log", "info", "log level: debug, info, warn, error")
		logFormat  = flag.String("log-format", "text", "log format: text or json")
		width      = flag.Int("width", defaultWidth, "window width")
		height     = flag.Int("height", defaultHeight, "window height")
		fps        = flag.Int("fps", defaultFPS, "target frames per second")
		lineWidth  = flag.Float64("line-width", defaultLineWidth, "line width in pixels")
		renderPath = flag.String("render", "", "render one frame to this PNG file instead of opening a window")
		pointList  = flag.String("points", "", `control points for -render, as "x,y x,y ..."`)
	)
	flag.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "maximum number of control points")
	flag.Float64Var(&cfg.MarkerSize, "marker-size", cfg.MarkerSize, "side of the control point marker in pixels")
	flag.Float64Var(&cfg.SampleSize, "sample-size", cfg.SampleSize, "side of a sample marker in pixels")
	flag.Float64Var(&cfg.Step, "step", cfg.Step, "initial sample step")
	flag.Float64Var(&cfg.StepMin, "step-min", cfg.StepMin, "smallest sample step")
	flag.Float64Var(&cfg.StepMax, "step-max", cfg.StepMax, "largest sample step")
	flag.Float64Var(&cfg.StepDelta, "step-delta", cfg.StepDelta, "sample step change per wheel notch")
	flag.Parse()

	if err := InitLogger(*logLevel, *logFormat); err != nil {
		log.Fatalf("%v\n", err)
	}
	var err error
	if cfg.Policy, err = bezier.ParsePolicy(*policyName); err != nil {
		log.Fatalf("%v\n", err)
	}
	if cfg.Mode, err = bezier.ParseMode(*modeName); err != nil {
		log.Fatalf("%v\n", err)
	}
	if *fps <= 0 || *width <= 0 || *height <= 0 {
		log.Fatalf("window size and fps must be positive\n")
	}
	ed, err := bezier.NewEditor(cfg)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	if *renderPath != "" {
		points, err := bezier.ParsePoints(*pointList)
		if err == nil {
			err = renderToFile(ed, points, *width, *height, float32(*lineWidth), *renderPath)
		}
		if err != nil {
			log.Fatalf("%v\n", err)
		}
		return
	}
	app := CreateApp(ed, float32(*lineWidth))
	opts := WindowOptions{
		Title:  "Bézier Curves",
		Width:  *width,
		Height: *height,
		FPS:    *fps,
	}
	if err := WithGL(opts, app); err != nil {
		log.Fatalf("%v\n", err)
	}
}
