package bezier

import "fmt"

// Evaluator reduces a sequence of control points to the curve point at
// parameter p.
type Evaluator interface {
	Evaluate(points []Point, p float64) (Point, error)
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(points []Point, p float64) (Point, error)

func (f EvaluatorFunc) Evaluate(points []Point, p float64) (Point, error) {
	return f(points, p)
}

// Evaluate returns the point at parameter p on the Bézier curve of degree
// len(points)-1. It uses a fresh scratch buffer; see Casteljau for a
// variant which reuses its buffer between calls.
func Evaluate(points []Point, p float64) (Point, error) {
	var c Casteljau
	return c.Evaluate(points, p)
}

// Degree returns the degree of the curve defined by points, or -1 for an
// empty sequence.
func Degree(points []Point) int {
	return len(points) - 1
}

// Casteljau evaluates curves with the generalized de Casteljau algorithm.
// The zero value is ready to use. A Casteljau must not be used from more
// than one goroutine at a time.
type Casteljau struct {
	scratch []Point
}

// Evaluate copies points into the scratch buffer and runs n-1 rounds of
// pairwise interpolation. p is not clamped: values outside [0,1]
// extrapolate the curve.
func (c *Casteljau) Evaluate(points []Point, p float64) (Point, error) {
	n := len(points)
	if n == 0 {
		return Point{}, fmt.Errorf("evaluate at p=%g: %w", p, ErrInvalidInput)
	}
	if cap(c.scratch) < n {
		c.scratch = make([]Point, n)
	}
	scratch := c.scratch[:n]
	copy(scratch, points)
	for k := 1; k < n; k++ {
		for j := 0; j < n-k; j++ {
			scratch[j] = scratch[j].Lerp(scratch[j+1], p)
		}
	}
	return scratch[0], nil
}
