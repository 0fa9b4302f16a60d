package capability

import (
	"sync/atomic"

	"github.com/2beens/gymquest/internal/session"
)

var _ session.CapabilityChecker = (*Toggle)(nil)

// Toggle is a settable capability flag, e.g. camera permission reported by the client.
type Toggle struct {
	granted atomic.Bool
}

func NewToggle(granted bool) *Toggle {
	t := &Toggle{}
	t.granted.Store(granted)
	return t
}

func (t *Toggle) Granted() bool {
	return t.granted.Load()
}

func (t *Toggle) Set(granted bool) {
	t.granted.Store(granted)
}
