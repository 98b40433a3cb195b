package bezier

import (
	"fmt"
	"slices"
	"strings"
)

// Policy decides what happens when a point is inserted into a full store.
type Policy int

const (
	// Reject refuses insertions once the store is full.
	Reject Policy = iota
	// Wrap overwrites the slot count % capacity, oldest first.
	Wrap
)

func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy resolves a policy name as used on the command line.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "reject":
		return Reject, nil
	case "wrap":
		return Wrap, nil
	default:
		return Reject, fmt.Errorf("unknown insertion policy %q: %w", name, ErrInvalidConfig)
	}
}

// Store is a fixed-capacity ordered collection of control points. Slot
// order is curve order.
type Store struct {
	points     []Point
	count      int // logical insertion counter; may exceed cap(points) under Wrap
	policy     Policy
	markerSize float64
}

// NewStore creates an empty store holding at most capacity points.
// markerSize is the side length of the hit-test box around each point.
func NewStore(capacity int, policy Policy, markerSize float64) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("store capacity %d: %w", capacity, ErrInvalidConfig)
	}
	if markerSize <= 0 {
		return nil, fmt.Errorf("marker size %g: %w", markerSize, ErrInvalidConfig)
	}
	return &Store{
		points:     make([]Point, 0, capacity),
		policy:     policy,
		markerSize: markerSize,
	}, nil
}

// Cap returns the store capacity.
func (s *Store) Cap() int {
	return cap(s.points)
}

// Count returns the logical number of insertions since the last Clear.
// Under the wrap policy it can be larger than Cap.
func (s *Store) Count() int {
	return s.count
}

// Len returns the number of live points, min(Count, Cap).
func (s *Store) Len() int {
	return len(s.points)
}

// Policy returns the insertion policy of the store.
func (s *Store) Policy() Policy {
	return s.policy
}

// MarkerSize returns the side length of the hit-test box.
func (s *Store) MarkerSize() float64 {
	return s.markerSize
}

// Insert appends p as the next control point and returns the slot it was
// written to.
func (s *Store) Insert(p Point) (int, error) {
	if len(s.points) < cap(s.points) {
		s.points = append(s.points, p)
		s.count++
		return len(s.points) - 1, nil
	}
	if s.policy != Wrap {
		return -1, fmt.Errorf("insert %v into store of %d points: %w", p, len(s.points), ErrCapacityExceeded)
	}
	slot := s.count % cap(s.points)
	s.points[slot] = p
	s.count++
	return slot, nil
}

// HitTest returns the index of the first point, in slot order, whose
// marker box contains pos. Overlapping boxes resolve to the lower index,
// not the nearest point.
func (s *Store) HitTest(pos Point) (int, bool) {
	for i, pt := range s.points {
		if pt.InBox(pos, s.markerSize) {
			return i, true
		}
	}
	return -1, false
}

// Set overwrites the point at index in place.
func (s *Store) Set(index int, p Point) error {
	if index < 0 || index >= len(s.points) {
		return fmt.Errorf("set point %d of %d: %w", index, len(s.points), ErrIndexOutOfRange)
	}
	s.points[index] = p
	return nil
}

// At returns the point at index.
func (s *Store) At(index int) (Point, error) {
	if index < 0 || index >= len(s.points) {
		return Point{}, fmt.Errorf("get point %d of %d: %w", index, len(s.points), ErrIndexOutOfRange)
	}
	return s.points[index], nil
}

// Points returns a copy of the live points in slot order.
func (s *Store) Points() []Point {
	snapshot := make([]Point, len(s.points))
	copy(snapshot, s.points)
	return snapshot
}

// View returns the live points without copying. Callers must not modify
// the slice or hold on to it across store mutations.
func (s *Store) View() []Point {
	return s.points
}

// RemoveLast drops the most recently inserted point. Once a wrapping
// store has overwritten slots, the remaining points are first rotated into
// insertion order, oldest first, so that later insertions keep replacing
// the oldest point.
func (s *Store) RemoveLast() error {
	n := len(s.points)
	if n == 0 {
		return fmt.Errorf("remove last point: %w", ErrIndexOutOfRange)
	}
	if s.count > n {
		// slot count%n holds the oldest point
		head := s.count % n
		slices.Reverse(s.points[:head])
		slices.Reverse(s.points[head:])
		slices.Reverse(s.points)
	}
	s.points = s.points[:n-1]
	s.count = len(s.points)
	return nil
}

// Clear removes all points and resets the insertion counter.
func (s *Store) Clear() {
	s.points = s.points[:0]
	s.count = 0
}
