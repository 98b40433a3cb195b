package bezier

import (
	"errors"
	"fmt"
)

// State is the selection state of the Editor.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// notchesPerPage is the step change of PageUp/PageDown, in wheel notches.
const notchesPerPage = 10

// Editor owns the control point store and the drag selection. It consumes
// input events and renders the current curve. All methods must be called
// from the goroutine running the frame loop.
type Editor struct {
	cfg      Config
	store    *Store
	renderer *Renderer
	state    State
	dragged  int
	keymap   KeyMap
	queue    *Queue
	quit     bool
}

// NewEditor creates an idle editor with an empty store and the default
// key bindings.
func NewEditor(cfg Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := NewStore(cfg.Capacity, cfg.Policy, cfg.MarkerSize)
	if err != nil {
		return nil, err
	}
	ed := &Editor{
		cfg:      cfg,
		store:    store,
		renderer: NewRenderer(cfg),
		dragged:  -1,
		queue:    NewQueue(),
	}
	ed.keymap = ed.defaultKeyMap()
	return ed, nil
}

func (ed *Editor) defaultKeyMap() KeyMap {
	keymap := CreateKeyMap()
	keymap.Bind("Escape", ed.Quit)
	keymap.Bind("C-q", ed.Quit)
	keymap.Bind("m", ed.ToggleMode)
	keymap.Bind("Tab", ed.ToggleMode)
	keymap.Bind("Up", func() {
		ed.AdjustStep(1)
	})
	keymap.Bind("Down", func() {
		ed.AdjustStep(-1)
	})
	keymap.Bind("PageUp", func() {
		ed.AdjustStep(notchesPerPage)
	})
	keymap.Bind("PageDown", func() {
		ed.AdjustStep(-notchesPerPage)
	})
	keymap.Bind("c", func() {
		if ed.state == Idle {
			ed.store.Clear()
		}
	})
	removeLast := func() {
		if ed.state != Idle {
			return
		}
		if err := ed.store.RemoveLast(); err != nil {
			tracer().Debugf("ignoring key: %v", err)
		}
	}
	keymap.Bind("Backspace", removeLast)
	keymap.Bind("Delete", removeLast)
	return keymap
}

func (ed *Editor) Config() Config {
	return ed.cfg
}

func (ed *Editor) Store() *Store {
	return ed.store
}

func (ed *Editor) KeyMap() KeyMap {
	return ed.keymap
}

// Queue returns the editor's own event queue, to be fed by the front end.
func (ed *Editor) Queue() *Queue {
	return ed.queue
}

func (ed *Editor) State() State {
	return ed.state
}

// Dragged returns the index of the point being dragged.
func (ed *Editor) Dragged() (int, bool) {
	if ed.state != Dragging {
		return -1, false
	}
	return ed.dragged, true
}

func (ed *Editor) IsRunning() bool {
	return !ed.quit
}

func (ed *Editor) Quit() {
	ed.quit = true
}

func (ed *Editor) Step() float64 {
	return ed.renderer.Step
}

// SetStep sets the sample step, clamped to the configured range.
func (ed *Editor) SetStep(step float64) {
	ed.renderer.Step = ed.cfg.ClampStep(step)
}

// AdjustStep moves the sample step by the given number of notches.
func (ed *Editor) AdjustStep(notches float64) {
	ed.SetStep(ed.renderer.Step + notches*ed.cfg.StepDelta)
}

func (ed *Editor) Mode() Mode {
	return ed.renderer.Mode
}

func (ed *Editor) SetMode(mode Mode) {
	ed.renderer.Mode = mode
}

func (ed *Editor) ToggleMode() {
	if ed.renderer.Mode == Polyline {
		ed.renderer.Mode = Markers
	} else {
		ed.renderer.Mode = Polyline
	}
}

func (ed *Editor) Palette() Palette {
	return ed.renderer.Palette
}

// SetPalette replaces the colors used from the next Render on.
func (ed *Editor) SetPalette(p Palette) {
	ed.renderer.Palette = p
}

// HandleEvent applies a single event. Capacity overflow on insertion is
// not an error: the click is dropped.
func (ed *Editor) HandleEvent(ev Event) error {
	switch ev := ev.(type) {
	case Quit:
		ed.Quit()
	case KeyDown:
		if !ed.keymap.HandleKey(ev.Key) {
			tracer().Debugf("unbound key %q", ev.Key)
		}
	case PointerDown:
		return ed.pointerDown(ev.Pos)
	case PointerMove:
		if ed.state == Dragging {
			if err := ed.store.Set(ed.dragged, ev.Pos); err != nil {
				return fmt.Errorf("drag point %d: %w", ed.dragged, err)
			}
		}
	case PointerUp:
		if ed.state == Dragging {
			tracer().Debugf("released point %d", ed.dragged)
			ed.state = Idle
			ed.dragged = -1
		}
	case WheelScroll:
		ed.AdjustStep(ev.Delta)
	default:
		return fmt.Errorf("unknown event %v", ev)
	}
	return nil
}

func (ed *Editor) pointerDown(pos Point) error {
	if ed.state == Dragging {
		return nil
	}
	if i, ok := ed.store.HitTest(pos); ok {
		tracer().Debugf("picked point %d at %v", i, pos)
		ed.state = Dragging
		ed.dragged = i
		return nil
	}
	slot, err := ed.store.Insert(pos)
	if errors.Is(err, ErrCapacityExceeded) {
		tracer().Infof("dropping point: %v", err)
		return nil
	} else if err != nil {
		return err
	}
	tracer().Debugf("inserted point %d at %v", slot, pos)
	return nil
}

// Render draws the current store contents to sink.
func (ed *Editor) Render(sink DrawSink) error {
	return ed.renderer.Render(ed.store.View(), ed.dragged, sink)
}

// Frame drains every pending event of src in order, then renders one
// pass from the resulting state. Events after a Quit are left in src.
// An event which fails does not stop the drain; the first such error is
// returned after rendering. running is false once the editor has been
// asked to quit.
func (ed *Editor) Frame(src InputSource, sink DrawSink) (running bool, err error) {
	for ed.IsRunning() {
		ev, ok := src.Next()
		if !ok {
			break
		}
		if evErr := ed.HandleEvent(ev); evErr != nil {
			tracer().Errorf("event %v: %v", ev, evErr)
			if err == nil {
				err = evErr
			}
		}
	}
	if !ed.IsRunning() {
		return false, err
	}
	if renderErr := ed.Render(sink); renderErr != nil && err == nil {
		err = renderErr
	}
	return true, err
}
