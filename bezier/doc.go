/*
Package bezier implements the core of an interactive Bézier curve editor:
points, a generalized de Casteljau evaluator, a renderer that turns the
curve into draw commands, a bounded control-point store and the editing
state machine driven by pointer and key events.

The package does not know about windows or pixels. Rendering goes to a
DrawSink (lines and filled rectangles), input comes from an InputSource.

	ed, err := bezier.NewEditor(bezier.DefaultConfig())
	...
	ed.Queue().Push(bezier.PointerDown{Pos: bezier.Pt(10, 10)})
	running, err := ed.Frame(ed.Queue(), sink)

Tracing goes to the schuko trace key "bezier".
*/
package bezier

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}
