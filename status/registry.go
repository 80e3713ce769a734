package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the metrics facade shared by the sequencer and the hosts
// Writers hold a pointer to the embedded metric groups; hot paths touch only atomics
type Registry struct {
	Teller TellerMetrics
}

// NewRegistry creates a Registry with the teller state set to Closed
func NewRegistry() *Registry {
	r := &Registry{}
	r.Teller.SetState("Closed")
	return r
}

// TellerMetrics counts what one sequencer has done since construction
type TellerMetrics struct {
	Taps      atomic.Int64 // every tap, accepted or not
	Dropped   atomic.Int64 // taps rejected by a guard or the current state
	Ticks     atomic.Int64
	Reveals   atomic.Int64
	Resets    atomic.Int64
	Animating atomic.Bool

	state atomic.Pointer[string]
}

// SetState records the display state name
func (m *TellerMetrics) SetState(name string) {
	m.state.Store(&name)
}

// State returns the last recorded display state name, empty before the first SetState
func (m *TellerMetrics) State() string {
	if p := m.state.Load(); p != nil {
		return *p
	}
	return ""
}

// Accepted returns taps that started a run or a reveal
func (m *TellerMetrics) Accepted() int64 {
	return m.Taps.Load() - m.Dropped.Load()
}

// Line formats the teller metrics as space separated key=value pairs for the status bar
func (r *Registry) Line() string {
	m := &r.Teller
	return fmt.Sprintf("state=%s taps=%d dropped=%d ticks=%d reveals=%d resets=%d animating=%t",
		m.State(), m.Taps.Load(), m.Dropped.Load(), m.Ticks.Load(),
		m.Reveals.Load(), m.Resets.Load(), m.Animating.Load())
}
