package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// events is a slice-backed InputSource.
type events []Event

func (evs *events) Next() (Event, bool) {
	if len(*evs) == 0 {
		return nil, false
	}
	ev := (*evs)[0]
	*evs = (*evs)[1:]
	return ev, true
}
