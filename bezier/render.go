package bezier

import (
	"fmt"
	"math"
)

// DrawSink receives the draw commands of one frame.
type DrawSink interface {
	DrawLine(p0, p1 Point, c Color)
	FillRect(origin, size Point, c Color)
}

// stepTolerance absorbs the rounding error of 1/step so that steps which
// divide 1.0 evenly (0.1, 0.01, ...) reach p = 1.0.
const stepTolerance = 1e-9

// SampleCount returns the number of whole steps of size step which fit
// into [0, 1].
func SampleCount(step float64) int {
	return int(math.Floor(1/step + stepTolerance))
}

// Renderer turns a control point snapshot into draw commands.
type Renderer struct {
	Eval       Evaluator
	Step       float64
	Mode       Mode
	Palette    Palette
	MarkerSize float64
	SampleSize float64
}

// NewRenderer creates a renderer for cfg, evaluating with a reusable
// Casteljau buffer.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		Eval:       &Casteljau{},
		Step:       cfg.Step,
		Mode:       cfg.Mode,
		Palette:    cfg.Palette,
		MarkerSize: cfg.MarkerSize,
		SampleSize: cfg.SampleSize,
	}
}

// Render draws the curve for points followed by the control polygon on
// top of it. dragged is the index of the control point being dragged, or
// -1. The renderer never modifies points.
func (r *Renderer) Render(points []Point, dragged int, sink DrawSink) error {
	if err := r.RenderCurve(points, sink); err != nil {
		return err
	}
	r.RenderPolygon(points, dragged, sink)
	return nil
}

// RenderCurve draws the curve alone. With fewer than two control points
// nothing is drawn.
//
// Markers mode samples p = 0, s, 2s, ... up to the last multiple of s not
// beyond 1 (within rounding, so the last sample may land just past 1.0).
// Polyline mode joins those samples; if s does not divide 1.0 the final
// partial segment up to p = 1.0 is left out.
func (r *Renderer) RenderCurve(points []Point, sink DrawSink) error {
	if len(points) < 2 {
		return nil
	}
	if !(r.Step > 0 && r.Step <= 1) {
		return fmt.Errorf("sample step %g: %w", r.Step, ErrInvalidConfig)
	}
	n := SampleCount(r.Step)
	switch r.Mode {
	case Markers:
		for i := 0; i <= n; i++ {
			pt, err := r.Eval.Evaluate(points, float64(i)*r.Step)
			if err != nil {
				return err
			}
			origin, size := pt.Box(r.SampleSize)
			sink.FillRect(origin, size, r.Palette.Sample)
		}
	case Polyline:
		prev, err := r.Eval.Evaluate(points, 0)
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			next, err := r.Eval.Evaluate(points, float64(i)*r.Step)
			if err != nil {
				return err
			}
			sink.DrawLine(prev, next, r.Palette.Curve)
			prev = next
		}
	default:
		return fmt.Errorf("draw mode %v: %w", r.Mode, ErrInvalidConfig)
	}
	return nil
}

// RenderPolygon draws the edges between consecutive control points and
// a marker on every control point.
func (r *Renderer) RenderPolygon(points []Point, dragged int, sink DrawSink) {
	for i := 1; i < len(points); i++ {
		sink.DrawLine(points[i-1], points[i], r.Palette.Polygon)
	}
	for i, pt := range points {
		c := r.Palette.Marker
		if i == dragged {
			c = r.Palette.Dragged
		}
		origin, size := pt.Box(r.MarkerSize)
		sink.FillRect(origin, size, c)
	}
}

// CommandKind tells line commands from rectangle commands.
type CommandKind int

const (
	LineCommand CommandKind = iota
	RectCommand
)

// Command is one recorded draw call. For rectangles P0 is the origin and
// P1 the size.
type Command struct {
	Kind  CommandKind
	P0    Point
	P1    Point
	Color Color
}

// Recorder is a DrawSink which keeps every command it receives.
type Recorder struct {
	Commands []Command
}

func (rec *Recorder) DrawLine(p0, p1 Point, c Color) {
	rec.Commands = append(rec.Commands, Command{Kind: LineCommand, P0: p0, P1: p1, Color: c})
}

func (rec *Recorder) FillRect(origin, size Point, c Color) {
	rec.Commands = append(rec.Commands, Command{Kind: RectCommand, P0: origin, P1: size, Color: c})
}

// Reset drops all recorded commands but keeps the buffer.
func (rec *Recorder) Reset() {
	rec.Commands = rec.Commands[:0]
}

// Count returns the number of recorded commands of the given kind and color.
func (rec *Recorder) Count(kind CommandKind, c Color) int {
	n := 0
	for _, cmd := range rec.Commands {
		if cmd.Kind == kind && cmd.Color == c {
			n++
		}
	}
	return n
}
