package bezier

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, capacity int, policy Policy) *Store {
	t.Helper()
	s, err := NewStore(capacity, policy, 10)
	require.NoError(t, err)
	return s
}

func TestNewStoreRejectsBadArguments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewStore(0, Reject, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewStore(4, Reject, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStoreInsertReject(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 4, Reject)
	for i := 0; i < 4; i++ {
		slot, err := s.Insert(Pt(float64(i*100), 0))
		require.NoError(t, err)
		assert.Equal(t, i, slot)
	}
	_, err := s.Insert(Pt(500, 500))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Count())
	diff(t, []Point{Pt(0, 0), Pt(100, 0), Pt(200, 0), Pt(300, 0)}, s.Points())
}

func TestStoreInsertWrap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 3, Wrap)
	for i := 0; i < 5; i++ {
		_, err := s.Insert(Pt(float64(i), 0))
		require.NoError(t, err)
	}
	assert.Equal(t, 5, s.Count(), "logical counter keeps counting")
	assert.Equal(t, 3, s.Len(), "live points are clamped to capacity")
	// slots 0 and 1 were overwritten by insertions 3 and 4
	diff(t, []Point{Pt(3, 0), Pt(4, 0), Pt(2, 0)}, s.Points())
	slot, err := s.Insert(Pt(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, slot)
}

func TestStoreHitTestAfterInsert(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 8, Reject)
	positions := []Point{Pt(10, 10), Pt(200, 40), Pt(33.5, 400)}
	for want, pos := range positions {
		_, err := s.Insert(pos)
		require.NoError(t, err)
		i, ok := s.HitTest(pos)
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	_, ok := s.HitTest(Pt(100, 100))
	assert.False(t, ok)
}

func TestStoreHitTestFirstMatchWins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 8, Reject)
	_, _ = s.Insert(Pt(100, 100))
	_, _ = s.Insert(Pt(104, 100))
	// (103,100) is nearer to point 1 but inside both boxes
	i, ok := s.HitTest(Pt(103, 100))
	require.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = s.HitTest(Pt(107, 100))
	require.True(t, ok)
	assert.Equal(t, 1, i)
	// box edge is inclusive: marker size 10 spans ±5
	i, ok = s.HitTest(Pt(95, 105))
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestStoreSet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 4, Reject)
	_, _ = s.Insert(Pt(1, 1))
	_, _ = s.Insert(Pt(2, 2))
	require.NoError(t, s.Set(1, Pt(7, 8)))
	diff(t, []Point{Pt(1, 1), Pt(7, 8)}, s.Points())
	assert.ErrorIs(t, s.Set(2, Pt(0, 0)), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Set(-1, Pt(0, 0)), ErrIndexOutOfRange)
	_, err := s.At(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	pt, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 1), pt)
}

func TestStorePointsIsSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 4, Reject)
	_, _ = s.Insert(Pt(1, 1))
	snapshot := s.Points()
	snapshot[0] = Pt(9, 9)
	pt, _ := s.At(0)
	assert.Equal(t, Pt(1, 1), pt)
}

func TestStoreRemoveLastAndClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 4, Reject)
	assert.ErrorIs(t, s.RemoveLast(), ErrIndexOutOfRange)
	_, _ = s.Insert(Pt(1, 1))
	_, _ = s.Insert(Pt(2, 2))
	require.NoError(t, s.RemoveLast())
	diff(t, []Point{Pt(1, 1)}, s.Points())
	assert.Equal(t, 1, s.Count())
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 4, s.Cap())
}

func TestStoreRemoveLastAfterWrap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newTestStore(t, 3, Wrap)
	for i := 0; i < 5; i++ {
		_, err := s.Insert(Pt(float64(i), 0))
		require.NoError(t, err)
	}
	diff(t, []Point{Pt(3, 0), Pt(4, 0), Pt(2, 0)}, s.Points())
	require.NoError(t, s.RemoveLast())
	// the newest point goes, the rest are kept oldest first
	diff(t, []Point{Pt(2, 0), Pt(3, 0)}, s.Points())
	assert.Equal(t, 2, s.Count())
	require.NoError(t, s.RemoveLast())
	diff(t, []Point{Pt(2, 0)}, s.Points())

	// refill and wrap again: the oldest point is replaced first
	for _, x := range []float64{5, 6, 7} {
		_, err := s.Insert(Pt(x, 0))
		require.NoError(t, err)
	}
	diff(t, []Point{Pt(7, 0), Pt(5, 0), Pt(6, 0)}, s.Points())
	require.NoError(t, s.RemoveLast())
	diff(t, []Point{Pt(5, 0), Pt(6, 0)}, s.Points())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("WRAP")
	require.NoError(t, err)
	assert.Equal(t, Wrap, p)
	_, err = ParsePolicy("overwrite")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "reject", Reject.String())
}
