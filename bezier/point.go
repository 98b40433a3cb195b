package bezier

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D point or vector. All operations return new values.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add computes pt+o.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Scale multiplies both coordinates by s.
func (pt Point) Scale(s float64) Point {
	return Point{X: pt.X * s, Y: pt.Y * s}
}

// Lerp linearly interpolates between pt and o: pt + (o-pt)*p.
// p is not clamped.
func (pt Point) Lerp(o Point, p float64) Point {
	return pt.Add(o.Sub(pt).Scale(p))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Box returns the origin and size of the square of side size centered on pt.
func (pt Point) Box(size float64) (origin, extent Point) {
	half := size / 2
	return Point{X: pt.X - half, Y: pt.Y - half}, Point{X: size, Y: size}
}

// InBox reports whether pos lies inside the square of side size
// centered on pt. Edges are inclusive.
func (pt Point) InBox(pos Point, size float64) bool {
	half := size / 2
	return pos.X >= pt.X-half && pos.X <= pt.X+half &&
		pos.Y >= pt.Y-half && pos.Y <= pt.Y+half
}

// ParsePoints reads points written as "x,y x,y ...".
func ParsePoints(s string) ([]Point, error) {
	var points []Point
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: expected x,y: %w", field, ErrInvalidInput)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		points = append(points, Pt(x, y))
	}
	return points, nil
}
