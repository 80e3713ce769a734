package audio

import (
	"log"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/event"
)

// AudioService wraps SoundManager as a Service and as a bus Handler
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	sm       *SoundManager
	muted    bool
	volume   float64
	disabled bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{sm: NewSoundManager()}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - mute state (true = muted)
// args[1]: float64 - linear volume
func (s *AudioService) Init(args ...any) error {
	s.volume = -1
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.muted = muted
		}
	}
	if len(args) > 1 {
		if vol, ok := args[1].(float64); ok {
			s.volume = vol
		}
	}
	return nil
}

// Start implements Service
// A missing audio device disables the service, it is not an error
func (s *AudioService) Start() error {
	if s.muted {
		s.disabled = true
		return nil
	}
	if err := s.sm.Initialize(); err != nil {
		log.Printf("audio: disabled: %v", err)
		s.disabled = true
		return nil
	}
	if s.volume >= 0 {
		s.sm.SetVolume(s.volume)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.sm.Cleanup()
	return nil
}

// Disabled reports whether sounds are being skipped
func (s *AudioService) Disabled() bool {
	return s.disabled
}

// Manager exposes the underlying sound manager
func (s *AudioService) Manager() *SoundManager {
	return s.sm
}

// EventTypes implements event.Handler
func (s *AudioService) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventFortuneRevealed,
	}
}

// HandleEvent implements event.Handler
func (s *AudioService) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStateChanged:
		if p, ok := ev.Payload.(*event.StateChangedPayload); ok && p.To.IsAnimating() {
			s.sm.PlayClick(p.To == core.StateAnimatingVertical)
		}
	case event.EventFortuneRevealed:
		s.sm.PlayChime()
	}
}
