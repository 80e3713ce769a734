package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Flip click, played on every animation tick
const (
	ClickFrequencyVertical   = 880.0
	ClickFrequencyHorizontal = 660.0
	ClickDuration            = 35 * time.Millisecond
)

// Reveal chime, two rising notes
const (
	ChimeNote1Frequency = 1046.5 // C6
	ChimeNote2Frequency = 1568.0 // G6
	ChimeNote1Duration  = 90 * time.Millisecond
	ChimeNote2Duration  = 260 * time.Millisecond
)

// DefaultVolume is the linear output gain, 0 is silent and 1 is unchanged amplitude
const DefaultVolume = 0.5

// ClickEnvelopeRelease fades the tail of each tone to avoid speaker pops
const ClickEnvelopeRelease = 10 * time.Millisecond
