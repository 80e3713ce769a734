package engine

import (
	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/fortune"
)

// Snapshot is an immutable copy of sequencer state for renderers and hosts
type Snapshot struct {
	State      core.DisplayState
	Turn       core.Turn
	Animating  bool
	RevealLock bool
	RunLength  int // Flips in the active run, 0 when idle
	Ticks      int // Flips shown so far in the active run
	Result     *fortune.Result
	PlayID     string
	Closed     bool
}

// HasResult reports whether a fortune is currently shown
func (s Snapshot) HasResult() bool {
	return s.Result != nil
}
