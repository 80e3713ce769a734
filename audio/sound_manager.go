package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays the flip clicks and the reveal chime
// Every operation is a no-op until Initialize succeeds, so hosts without an audio device still run
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager at the default volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: parameter.DefaultVolume,
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close for this backend, clearing the mixer silences it
	sm.initialized = false
}

// SetVolume sets the linear gain, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = math.Max(0, math.Min(1, v))
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsInitialized reports whether the speaker is live
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayClick plays the short flip click, pitched by orientation
func (sm *SoundManager) PlayClick(vertical bool) {
	sm.play(func(volume float64) beep.Streamer { return ClickStreamer(vertical, volume) })
}

// PlayChime plays the two-note reveal chime
func (sm *SoundManager) PlayChime() {
	sm.play(ChimeStreamer)
}

func (sm *SoundManager) play(build func(volume float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := build(sm.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ClickStreamer builds a finite click, higher for vertical flips
func ClickStreamer(vertical bool, volume float64) beep.Streamer {
	freq := parameter.ClickFrequencyHorizontal
	if vertical {
		freq = parameter.ClickFrequencyVertical
	}
	tone := toneStreamer(freq, parameter.ClickDuration)
	if tone == nil {
		return nil
	}
	return newVolume(tone, volume)
}

// ChimeStreamer builds the rising two-note reveal chime
func ChimeStreamer(volume float64) beep.Streamer {
	n1 := toneStreamer(parameter.ChimeNote1Frequency, parameter.ChimeNote1Duration)
	n2 := toneStreamer(parameter.ChimeNote2Frequency, parameter.ChimeNote2Duration)
	if n1 == nil || n2 == nil {
		return nil
	}
	return newVolume(beep.Seq(n1, n2), volume)
}

// toneStreamer returns a faded sine of fixed length, nil if the frequency is unplayable
func toneStreamer(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	n := sampleRate.N(d)
	return &fadeOut{
		streamer: beep.Take(n, sine),
		total:    n,
		release:  sampleRate.N(parameter.ClickEnvelopeRelease),
	}
}

// newVolume converts a linear gain into a beep volume effect
// math.Log2(0) is -Inf, so zero gain becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fadeOut ramps the last release samples of a finite streamer to zero
type fadeOut struct {
	streamer beep.Streamer
	total    int
	release  int
	position int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			g := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
