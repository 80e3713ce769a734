package parameter

import "time"

// Sequencer Timing
const (
	// TickInterval is the delay between two orientation flips of an animation run
	TickInterval = 400 * time.Millisecond

	// ResetDelay is how long a revealed fortune stays up before the play-through resets
	ResetDelay = 3000 * time.Millisecond
)

// Named timers, keyed by purpose so teardown can cancel them deterministically
const (
	TimerAnimationTick = "animation-tick"
	TimerAutoReset     = "auto-reset"
)

// Flap numbering
const (
	// MinNumeral is the lowest number printed on the fortune teller
	MinNumeral = 1

	// MaxNumeral is the highest number printed on the fortune teller
	MaxNumeral = 8

	// DefaultFlap is used when an opened flap region carries no readable number
	DefaultFlap = 1
)
