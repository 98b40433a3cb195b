package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueIsFIFO(t *testing.T) {
	q := NewQueue(PointerDown{Pos: Pt(1, 2)}, PointerMove{Pos: Pt(3, 4)})
	q.Push(PointerUp{})
	assert.Equal(t, 3, q.Len())
	var got []string
	for {
		ev, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, ev.String())
	}
	assert.Equal(t, []string{"PointerDown(1, 2)", "PointerMove(3, 4)", "PointerUp"}, got)
	assert.Equal(t, 0, q.Len())
	q.Push(KeyDown{Key: "m"})
	ev, ok := q.Next()
	assert.True(t, ok)
	assert.Equal(t, KeyDown{Key: "m"}, ev)
}

func TestQueueReset(t *testing.T) {
	q := NewQueue(Quit{}, WheelScroll{Delta: -2})
	q.Reset()
	_, ok := q.Next()
	assert.False(t, ok)
	assert.Equal(t, "WheelScroll(-2)", WheelScroll{Delta: -2}.String())
}

func TestKeyMap(t *testing.T) {
	km := CreateKeyMap()
	var hits int
	km.Bind("C-x", func() { hits++ })
	assert.True(t, km.HandleKey("C-x"))
	assert.False(t, km.HandleKey("x"))
	km.Unbind("C-x")
	assert.False(t, km.HandleKey("C-x"))
	assert.Equal(t, 1, hits)
}
