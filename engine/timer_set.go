package engine

import (
	"sync"
	"time"
)

// TimerSet keys cancellable timers by purpose
// Scheduling a name that is already pending replaces the previous timer
type TimerSet struct {
	clock  Clock
	mu     sync.Mutex
	timers map[string]*namedTimer
	gen    uint64
}

type namedTimer struct {
	timer Timer
	gen   uint64
}

// NewTimerSet creates an empty timer set on the given clock
func NewTimerSet(clock Clock) *TimerSet {
	return &TimerSet{
		clock:  clock,
		timers: make(map[string]*namedTimer),
	}
}

// Schedule runs fn after d under name
// A firing that lost a race with Cancel or a reschedule is discarded
func (ts *TimerSet) Schedule(name string, d time.Duration, fn func()) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if prev, ok := ts.timers[name]; ok {
		prev.timer.Stop()
	}

	ts.gen++
	gen := ts.gen
	entry := &namedTimer{gen: gen}
	entry.timer = ts.clock.AfterFunc(d, func() {
		ts.mu.Lock()
		current, ok := ts.timers[name]
		if !ok || current.gen != gen {
			ts.mu.Unlock()
			return
		}
		delete(ts.timers, name)
		ts.mu.Unlock()
		fn()
	})
	ts.timers[name] = entry
}

// Cancel stops the named timer, returns true if one was pending
func (ts *TimerSet) Cancel(name string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	entry, ok := ts.timers[name]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(ts.timers, name)
	return true
}

// CancelAll stops every pending timer
func (ts *TimerSet) CancelAll() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for name, entry := range ts.timers {
		entry.timer.Stop()
		delete(ts.timers, name)
	}
}

// Pending reports whether the named timer is scheduled
func (ts *TimerSet) Pending(name string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	_, ok := ts.timers[name]
	return ok
}

// Len returns the number of pending timers
func (ts *TimerSet) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers)
}
