package bezier

import (
	"fmt"
	"math"
	"strings"
)

// Color is an opaque 32-bit RGBA value, 0xRRGGBBAA. The core only picks
// colors from a Palette and never looks at the channels.
type Color uint32

// RGBA splits c into its 8-bit channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Palette holds the logical colors used by the renderer.
type Palette struct {
	Curve   Color // polyline segments
	Sample  Color // sample markers
	Polygon Color // control polygon edges
	Marker  Color // control point markers
	Dragged Color // the control point being dragged
}

// DefaultPalette is a light-on-dark scheme.
var DefaultPalette = Palette{
	Curve:   0xffd23cff,
	Sample:  0xffd23cff,
	Polygon: 0x5a6e82ff,
	Marker:  0xe6e6e6ff,
	Dragged: 0xff5050ff,
}

// Mode selects how the curve itself is drawn.
type Mode int

const (
	// Polyline connects consecutive samples with line segments.
	Polyline Mode = iota
	// Markers draws a small filled square at every sample.
	Markers
)

func (m Mode) String() string {
	switch m {
	case Polyline:
		return "polyline"
	case Markers:
		return "markers"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode name as used on the command line.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "polyline", "lines":
		return Polyline, nil
	case "markers", "points":
		return Markers, nil
	default:
		return Polyline, fmt.Errorf("unknown draw mode %q: %w", name, ErrInvalidConfig)
	}
}

// Config collects the tunables of an Editor.
type Config struct {
	Capacity   int     // maximum number of control points
	Policy     Policy  // behavior of insertions into a full store
	MarkerSize float64 // side of the control point box, also the hit-test box
	SampleSize float64 // side of a sample marker in Markers mode
	Step       float64 // initial sample step
	StepMin    float64
	StepMax    float64
	StepDelta  float64 // step change per wheel notch
	Mode       Mode
	Palette    Palette
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Capacity:   256,
		Policy:     Reject,
		MarkerSize: 10,
		SampleSize: 4,
		Step:       0.01,
		StepMin:    0.001,
		StepMax:    1.0,
		StepDelta:  0.001,
		Mode:       Polyline,
		Palette:    DefaultPalette,
	}
}

// Validate checks value ranges. The step bounds must satisfy
// 0 < StepMin <= Step <= StepMax <= 1.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"marker size": c.MarkerSize,
		"sample size": c.SampleSize,
		"step":        c.Step,
		"step min":    c.StepMin,
		"step max":    c.StepMax,
		"step delta":  c.StepDelta,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s %g is not finite: %w", name, v, ErrInvalidConfig)
		}
	}
	switch {
	case c.Capacity < 1:
		return fmt.Errorf("capacity %d must be at least 1: %w", c.Capacity, ErrInvalidConfig)
	case c.Policy != Reject && c.Policy != Wrap:
		return fmt.Errorf("policy %v: %w", c.Policy, ErrInvalidConfig)
	case c.MarkerSize <= 0 || c.SampleSize <= 0:
		return fmt.Errorf("marker sizes %g/%g must be positive: %w", c.MarkerSize, c.SampleSize, ErrInvalidConfig)
	case c.StepMin <= 0 || c.StepMax > 1 || c.StepMin > c.StepMax:
		return fmt.Errorf("step range [%g, %g] not within (0, 1]: %w", c.StepMin, c.StepMax, ErrInvalidConfig)
	case c.Step < c.StepMin || c.Step > c.StepMax:
		return fmt.Errorf("step %g outside [%g, %g]: %w", c.Step, c.StepMin, c.StepMax, ErrInvalidConfig)
	case c.StepDelta <= 0:
		return fmt.Errorf("step delta %g must be positive: %w", c.StepDelta, ErrInvalidConfig)
	case c.Mode != Polyline && c.Mode != Markers:
		return fmt.Errorf("mode %v: %w", c.Mode, ErrInvalidConfig)
	}
	return nil
}

// ClampStep limits step to [StepMin, StepMax].
func (c Config) ClampStep(step float64) float64 {
	if step < c.StepMin {
		return c.StepMin
	}
	if step > c.StepMax {
		return c.StepMax
	}
	return step
}
