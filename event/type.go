package event

import "time"

// EventType represents the type of fortune teller event
type EventType int

const (
	// EventNone is the zero value and never published
	EventNone EventType = iota

	// EventTap reports every tap handed to a sequencer
	// Trigger: Sequencer.HandleTap
	// Consumer: debug logging, hosts | Payload: *TapPayload
	EventTap

	// EventStateChanged reports a display state transition, including each animation flip
	// Trigger: tap handling, animation-tick timer, auto-reset timer
	// Consumer: AudioService, renderers | Payload: *StateChangedPayload
	EventStateChanged

	// EventFortuneRevealed carries the result of a play-through, exactly once per play-through
	// Trigger: Reveal via BusSink
	// Consumer: host listeners, AudioService | Payload: *FortuneRevealedPayload
	EventFortuneRevealed

	// EventPlayReset reports the automatic return to Closed after a reveal
	// Trigger: auto-reset timer
	// Consumer: hosts | Payload: *PlayResetPayload
	EventPlayReset
)

// GameEvent is the envelope published on a Bus
type GameEvent struct {
	Type    EventType
	Payload any
	At      time.Time
}
