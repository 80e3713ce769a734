package engine

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRealClock(t *testing.T) {
	clock := NewRealClock()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	fired := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Error("Expected AfterFunc callback to fire")
	}
}

func TestMockClockTime(t *testing.T) {
	mock := NewMockClock(testEpoch)

	if !mock.Now().Equal(testEpoch) {
		t.Errorf("Expected initial time to be %v, got %v", testEpoch, mock.Now())
	}

	newTime := testEpoch.Add(24 * time.Hour)
	mock.SetTime(newTime)
	if !mock.Now().Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, mock.Now())
	}
}

func TestMockClockFiresInDueOrder(t *testing.T) {
	mock := NewMockClock(testEpoch)
	var order []string

	mock.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	mock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	mock.AfterFunc(100*time.Millisecond, func() { order = append(order, "b") })
	mock.AfterFunc(time.Second, func() { order = append(order, "late") })

	mock.Advance(500 * time.Millisecond)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected [a b c], got %v", order)
	}
	if mock.Pending() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", mock.Pending())
	}
}

func TestMockClockCallbackSeesDueTime(t *testing.T) {
	mock := NewMockClock(testEpoch)
	var seen time.Time

	mock.AfterFunc(400*time.Millisecond, func() { seen = mock.Now() })
	mock.Advance(time.Second)

	if !seen.Equal(testEpoch.Add(400 * time.Millisecond)) {
		t.Errorf("Expected callback at due time, got %v", seen)
	}
	if !mock.Now().Equal(testEpoch.Add(time.Second)) {
		t.Errorf("Expected clock at target after Advance, got %v", mock.Now())
	}
}

func TestMockClockChainedTimers(t *testing.T) {
	mock := NewMockClock(testEpoch)
	count := 0

	var tick func()
	tick = func() {
		count++
		mock.AfterFunc(100*time.Millisecond, tick)
	}
	mock.AfterFunc(100*time.Millisecond, tick)

	mock.Advance(450 * time.Millisecond)
	if count != 4 {
		t.Errorf("Expected 4 chained firings, got %d", count)
	}
}

func TestMockClockStop(t *testing.T) {
	mock := NewMockClock(testEpoch)
	fired := false

	timer := mock.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Error("Expected Stop to report a pending timer")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to return false")
	}

	mock.Advance(2 * time.Second)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
}

func TestTimerSetReplace(t *testing.T) {
	mock := NewMockClock(testEpoch)
	ts := NewTimerSet(mock)
	var got []string

	ts.Schedule("tick", 100*time.Millisecond, func() { got = append(got, "first") })
	ts.Schedule("tick", 200*time.Millisecond, func() { got = append(got, "second") })

	if ts.Len() != 1 {
		t.Errorf("Expected 1 pending named timer, got %d", ts.Len())
	}

	mock.Advance(time.Second)
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("Expected only the replacement to fire, got %v", got)
	}
	if ts.Pending("tick") {
		t.Error("Expected tick to be cleared after firing")
	}
}

func TestTimerSetCancel(t *testing.T) {
	mock := NewMockClock(testEpoch)
	ts := NewTimerSet(mock)
	fired := 0

	ts.Schedule("a", time.Second, func() { fired++ })
	ts.Schedule("b", time.Second, func() { fired++ })

	if !ts.Cancel("a") {
		t.Error("Expected Cancel to report a pending timer")
	}
	if ts.Cancel("a") {
		t.Error("Expected second Cancel to return false")
	}

	ts.CancelAll()
	mock.Advance(2 * time.Second)

	if fired != 0 {
		t.Errorf("Expected no firings after cancel, got %d", fired)
	}
	if ts.Len() != 0 || mock.Pending() != 0 {
		t.Errorf("Expected no pending timers, got set=%d clock=%d", ts.Len(), mock.Pending())
	}
}

// staleClock never stops its timers, simulating a firing that already left the runtime queue
type staleClock struct {
	*MockClock
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return false }

func (c staleClock) AfterFunc(d time.Duration, f func()) Timer {
	c.MockClock.AfterFunc(d, f)
	return leakyTimer{}
}

func TestTimerSetDiscardsStaleFiring(t *testing.T) {
	mock := NewMockClock(testEpoch)
	ts := NewTimerSet(staleClock{mock})
	var got []string

	ts.Schedule("tick", 100*time.Millisecond, func() { got = append(got, "stale") })
	ts.Cancel("tick")
	ts.Schedule("tick", 100*time.Millisecond, func() { got = append(got, "live") })

	mock.Advance(time.Second)
	if len(got) != 1 || got[0] != "live" {
		t.Errorf("Expected only the live timer to run, got %v", got)
	}
}
