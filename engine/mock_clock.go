package engine

import (
	"sort"
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Timers fire synchronously inside Advance, on the caller's goroutine
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	clock   *MockClock
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers f to run once the mocked time reaches now+d
func (m *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &mockTimer{
		clock: m,
		due:   m.currentTime.Add(d),
		seq:   m.seq,
		fn:    f,
	}
	m.timers = append(m.timers, t)
	return t
}

// SetTime sets the current time without firing timers
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves time forward by d, firing every timer that becomes due in due order
// Timers scheduled by callbacks also fire if they fall inside the window
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.currentTime = target
			m.mu.Unlock()
			return
		}
		if next.due.After(m.currentTime) {
			m.currentTime = next.due
		}
		next.fired = true
		m.removeLocked(next)
		fn := next.fn
		m.mu.Unlock()

		// Callback runs unlocked so it may schedule or stop timers
		fn()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped
func (m *MockClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *MockClock) nextDueLocked(limit time.Time) *mockTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	if m.timers[0].due.After(limit) {
		return nil
	}
	return m.timers[0]
}

func (m *MockClock) removeLocked(t *mockTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.clock.removeLocked(t)
	return true
}
