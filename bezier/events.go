package bezier

import "fmt"

// Event is an input event consumed by the Editor.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Quit stops the frame loop.
type Quit struct{}

// KeyDown carries a key name such as "m", "Up", "C-q" or "S-Tab".
type KeyDown struct {
	Key string
}

// PointerDown is a primary button press at Pos.
type PointerDown struct {
	Pos Point
}

// PointerUp is a primary button release.
type PointerUp struct{}

// PointerMove reports the pointer position.
type PointerMove struct {
	Pos Point
}

// WheelScroll reports wheel notches; positive is away from the user.
type WheelScroll struct {
	Delta float64
}

func (Quit) isEvent()        {}
func (KeyDown) isEvent()     {}
func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
func (WheelScroll) isEvent() {}

func (Quit) String() string           { return "Quit" }
func (ev KeyDown) String() string     { return fmt.Sprintf("KeyDown(%s)", ev.Key) }
func (ev PointerDown) String() string { return fmt.Sprintf("PointerDown%v", ev.Pos) }
func (PointerUp) String() string      { return "PointerUp" }
func (ev PointerMove) String() string { return fmt.Sprintf("PointerMove%v", ev.Pos) }
func (ev WheelScroll) String() string { return fmt.Sprintf("WheelScroll(%g)", ev.Delta) }

// InputSource yields pending events, oldest first. ok is false once no
// event is pending for the current frame.
type InputSource interface {
	Next() (ev Event, ok bool)
}

// Queue is a FIFO InputSource. Window callbacks push into it, the frame
// loop drains it.
type Queue struct {
	events []Event
	head   int
}

// NewQueue creates a queue holding evs.
func NewQueue(evs ...Event) *Queue {
	q := &Queue{}
	for _, ev := range evs {
		q.Push(ev)
	}
	return q
}

// Push appends ev.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Next removes and returns the oldest event.
func (q *Queue) Next() (Event, bool) {
	if q.head >= len(q.events) {
		q.Reset()
		return nil, false
	}
	ev := q.events[q.head]
	q.events[q.head] = nil
	q.head++
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events) - q.head
}

// Reset drops all pending events.
func (q *Queue) Reset() {
	clear(q.events)
	q.events = q.events[:0]
	q.head = 0
}
