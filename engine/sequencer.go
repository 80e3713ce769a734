package engine

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/fortune"
	"github.com/CodewithAN/paper-fortune-teller/notify"
	"github.com/CodewithAN/paper-fortune-teller/parameter"
	"github.com/CodewithAN/paper-fortune-teller/region"
	"github.com/CodewithAN/paper-fortune-teller/status"
)

// animationRun tracks one timed sequence of orientation flips
type animationRun struct {
	length int
	tag    core.Turn // TurnColor or TurnNumber, selects the completion state
	ticks  int
}

// Sequencer drives the fortune teller display from taps and timers
//
// Architecture:
//   - A mutex serializes taps and timer callbacks, one logical timeline per instance
//   - animating and revealLock are the re-entrancy guards
//   - Observers, sinks and bus events are queued under the lock and delivered after it is released
//   - Every timer lives in a TimerSet and is cancelled by Close
type Sequencer struct {
	mu sync.Mutex

	clock    Clock
	timers   *TimerSet
	rng      fortune.RNG
	pool     *fortune.Pool
	notifier *notify.Notifier
	bus      *event.Bus

	state      core.DisplayState
	turn       core.Turn
	animating  bool
	revealLock bool
	run        animationRun
	result     *fortune.Result
	playID     string
	closed     bool

	stateObservers  []stateObserver
	revealObservers []revealObserver
	observerID      uint64

	// Deliveries queued under mu, run after unlock
	pending []func()

	statusReg *status.Registry
	metrics   *status.TellerMetrics
}

type stateObserver struct {
	id uint64
	fn func(Snapshot)
}

type revealObserver struct {
	id uint64
	fn func(fortune.Result)
}

// New creates a sequencer in Closed with turn 0
func New(opts ...Option) *Sequencer {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bus == nil {
		o.bus = event.Default()
	}
	if o.clock == nil {
		o.clock = NewRealClock()
	}
	if o.rng == nil {
		o.rng = fortune.NewStdRNG()
	}
	if o.status == nil {
		o.status = status.NewRegistry()
	}

	notifier := notify.NewNotifier(
		notify.NewCallbackSink(o.callback),
		notify.NewChannelSink(o.channel),
		notify.NewBusSink(o.bus),
	)
	for _, sink := range o.sinks {
		notifier.Add(sink)
	}

	s := &Sequencer{
		clock:     o.clock,
		timers:    NewTimerSet(o.clock),
		rng:       o.rng,
		pool:      fortune.NewPool(o.fortunes),
		notifier:  notifier,
		bus:       o.bus,
		state:     core.StateClosed,
		turn:      core.TurnNotStarted,
		statusReg: o.status,
	}

	s.metrics = &o.status.Teller
	s.metrics.SetState(s.state.String())

	return s
}

// HandleTap processes a tap on a region of the fortune teller
// Illegal taps are dropped silently, reported only as a tap event on the bus
func (s *Sequencer) HandleTap(regionID, regionColor string) {
	s.mu.Lock()
	before := s.state
	reason := s.handleTapLocked(regionID, regionColor)

	s.metrics.Taps.Add(1)
	if reason != "" {
		s.metrics.Dropped.Add(1)
	}

	// The tap event precedes the transitions it caused
	consequences := s.pending
	s.pending = nil
	s.publishLocked(event.EventTap, &event.TapPayload{
		RegionID:    regionID,
		RegionColor: regionColor,
		State:       before,
		Accepted:    reason == "",
		Reason:      reason,
	})
	s.pending = append(s.pending, consequences...)
	s.unlockAndFlush()
}

// handleTapLocked applies the tap and returns a drop reason, empty when accepted
func (s *Sequencer) handleTapLocked(regionID, regionColor string) string {
	if s.closed {
		return event.DropClosed
	}
	if s.animating {
		return event.DropAnimating
	}

	switch {
	case s.state == core.StateClosed:
		name := region.ColorName(regionColor)
		s.turn = core.TurnColor
		s.playID = uuid.NewString()
		s.startRunLocked(len(name), core.TurnColor)
		return ""

	case s.state.ShowsNumbers():
		n, ok := region.ParseNumeral(regionID)
		if !ok {
			return event.DropNoNumeral
		}
		s.turn = core.TurnNumber
		s.startRunLocked(n, core.TurnNumber)
		return ""

	case s.state == core.StateOpened:
		if s.revealLock {
			return event.DropRevealLock
		}
		s.revealLocked(region.FlapNumber(regionID))
		return ""
	}

	return event.DropState
}

// startRunLocked begins a run of n flips, the first flip is shown immediately
func (s *Sequencer) startRunLocked(n int, tag core.Turn) {
	s.animating = true
	s.metrics.Animating.Store(true)
	s.run = animationRun{length: n, tag: tag}
	s.tickLocked()
}

// tickLocked shows the next flip and schedules the following tick
func (s *Sequencer) tickLocked() {
	s.run.ticks++
	s.metrics.Ticks.Add(1)

	next := core.StateAnimatingVertical
	if s.run.ticks > 1 && s.state == core.StateAnimatingVertical {
		next = core.StateAnimatingHorizontal
	}
	s.setStateLocked(next, s.run.ticks)

	s.timers.Schedule(parameter.TimerAnimationTick, parameter.TickInterval, s.onAnimationTick)
}

func (s *Sequencer) onAnimationTick() {
	s.mu.Lock()
	if s.closed || !s.animating {
		s.mu.Unlock()
		return
	}

	if s.run.ticks < s.run.length {
		s.tickLocked()
	} else {
		s.finishRunLocked()
	}
	s.unlockAndFlush()
}

// finishRunLocked settles the display after the last flip
func (s *Sequencer) finishRunLocked() {
	var next core.DisplayState
	switch {
	case s.run.tag == core.TurnNumber:
		next = core.StateOpened
	case s.run.length%2 == 0:
		next = core.StateHorizontalWithNumbers
	default:
		next = core.StateVerticalWithNumbers
	}

	s.animating = false
	s.metrics.Animating.Store(false)
	s.run = animationRun{}
	s.setStateLocked(next, 0)
}

// revealLocked picks and emits the result of this play-through
func (s *Sequencer) revealLocked(flap int) {
	s.revealLock = true

	_, text := s.pool.Pick(s.rng)
	result := fortune.Result{
		FlapNumber: flap,
		Text:       text,
		Success:    true,
		PlayID:     s.playID,
	}
	s.result = &result
	s.metrics.Reveals.Add(1)
	log.Printf("teller: play %s revealed flap %d", result.PlayID, flap)

	payload := result.Payload()
	s.pending = append(s.pending, func() { s.notifier.Notify(payload) })
	for _, obs := range s.revealObservers {
		fn := obs.fn
		s.pending = append(s.pending, func() { fn(result) })
	}
	s.notifyStateLocked()

	s.timers.Schedule(parameter.TimerAutoReset, parameter.ResetDelay, s.onAutoReset)
}

func (s *Sequencer) onAutoReset() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	playID := s.playID
	s.result = nil
	s.turn = core.TurnNotStarted
	s.revealLock = false
	s.playID = ""
	s.metrics.Resets.Add(1)
	s.setStateLocked(core.StateClosed, 0)
	s.publishLocked(event.EventPlayReset, &event.PlayResetPayload{PlayID: playID})
	s.unlockAndFlush()
}

// setStateLocked records a display transition and queues its notifications
func (s *Sequencer) setStateLocked(to core.DisplayState, tick int) {
	from := s.state
	s.state = to
	s.metrics.SetState(to.String())

	s.publishLocked(event.EventStateChanged, &event.StateChangedPayload{
		From:   from,
		To:     to,
		Turn:   s.turn,
		Tick:   tick,
		PlayID: s.playID,
	})
	s.notifyStateLocked()
}

func (s *Sequencer) notifyStateLocked() {
	if len(s.stateObservers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, obs := range s.stateObservers {
		fn := obs.fn
		s.pending = append(s.pending, func() { fn(snap) })
	}
}

func (s *Sequencer) publishLocked(t event.EventType, payload any) {
	bus := s.bus
	ev := event.GameEvent{Type: t, Payload: payload, At: s.clock.Now()}
	s.pending = append(s.pending, func() { bus.Publish(ev) })
}

// unlockAndFlush releases mu and then runs every queued delivery in order
func (s *Sequencer) unlockAndFlush() {
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Snapshot returns a copy of the current state
func (s *Sequencer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Sequencer) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Turn:       s.turn,
		Animating:  s.animating,
		RevealLock: s.revealLock,
		RunLength:  s.run.length,
		Ticks:      s.run.ticks,
		PlayID:     s.playID,
		Closed:     s.closed,
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

// OnStateChange registers fn to receive a snapshot after every state change, reveal and reset
// Observers run outside the sequencer lock and may call back into it
func (s *Sequencer) OnStateChange(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observerID++
	id := s.observerID
	s.stateObservers = append(s.stateObservers, stateObserver{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, obs := range s.stateObservers {
			if obs.id == id {
				s.stateObservers = append(s.stateObservers[:i:i], s.stateObservers[i+1:]...)
				return
			}
		}
	}
}

// OnReveal registers fn to receive each result once
func (s *Sequencer) OnReveal(fn func(fortune.Result)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observerID++
	id := s.observerID
	s.revealObservers = append(s.revealObservers, revealObserver{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, obs := range s.revealObservers {
			if obs.id == id {
				s.revealObservers = append(s.revealObservers[:i:i], s.revealObservers[i+1:]...)
				return
			}
		}
	}
}

// Status returns the metrics registry the sequencer writes to
func (s *Sequencer) Status() *status.Registry {
	return s.statusReg
}

// PoolSize returns the number of fortunes in play
func (s *Sequencer) PoolSize() int {
	return s.pool.Len()
}

// Close cancels every pending timer, later taps and firings have no effect
// Safe to call multiple times
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.animating = false
	s.metrics.Animating.Store(false)
	s.timers.CancelAll()
}
