package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellux/bezier/bezier"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	require.NoError(t, InitLogger("error", "text"))
	ed, err := bezier.NewEditor(bezier.DefaultConfig())
	require.NoError(t, err)
	return CreateApp(ed, 1)
}

func drain(q *bezier.Queue) []bezier.Event {
	var evs []bezier.Event
	for {
		ev, ok := q.Next()
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestClickBeforeCursorMoves(t *testing.T) {
	app := newTestApp(t)
	app.OnMouseButton(glfw.MouseButtonLeft, glfw.Press, 0, 40, 30)
	app.OnMouseButton(glfw.MouseButtonLeft, glfw.Release, 0, 40, 30)
	assert.Equal(t, []bezier.Event{
		bezier.PointerDown{Pos: bezier.Pt(40, 30)},
		bezier.PointerUp{},
	}, drain(app.editor.Queue()))
}

func TestMouseEventsReachEditor(t *testing.T) {
	app := newTestApp(t)
	app.OnMouseButton(glfw.MouseButtonRight, glfw.Press, 0, 1, 1)
	app.OnCursorPos(5, 6)
	app.OnScroll(0, -2)
	app.OnScroll(3, 0)
	app.OnClose()
	assert.Equal(t, []bezier.Event{
		bezier.PointerMove{Pos: bezier.Pt(5, 6)},
		bezier.WheelScroll{Delta: -2},
		bezier.Quit{},
	}, drain(app.editor.Queue()))
}

func TestKeysReachEditor(t *testing.T) {
	app := newTestApp(t)
	app.OnKey(glfw.KeyUp, 0, glfw.Press, glfw.ModControl)
	app.OnKey(glfw.KeyEscape, 0, glfw.Release, 0)
	app.OnKey(glfw.KeyLeftShift, 0, glfw.Press, glfw.ModShift)
	assert.Equal(t, []bezier.Event{
		bezier.KeyDown{Key: "C-Up"},
	}, drain(app.editor.Queue()))
}

func TestPulseKeepsColorChannels(t *testing.T) {
	c := bezier.Color(0x102030ff)
	for _, tm := range []float64{0, 0.1, 0.5, 1.3} {
		r, g, b, a := pulse(c, tm).RGBA()
		assert.Equal(t, [3]uint8{0x10, 0x20, 0x30}, [3]uint8{r, g, b})
		assert.GreaterOrEqual(t, a, uint8(0x4c))
	}
}
