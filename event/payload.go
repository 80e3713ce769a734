package event

import "github.com/CodewithAN/paper-fortune-teller/core"

// TapPayload describes a tap and whether the sequencer acted on it
type TapPayload struct {
	RegionID    string
	RegionColor string
	State       core.DisplayState // State at the time of the tap
	Accepted    bool
	Reason      string // Why a dropped tap was ignored, empty when accepted
}

// Drop reasons carried by TapPayload
const (
	DropAnimating  = "animating"
	DropRevealLock = "reveal-pending"
	DropNoNumeral  = "no-numeral"
	DropState      = "state"
	DropClosed     = "disposed"
)

// StateChangedPayload describes one display state transition
type StateChangedPayload struct {
	From   core.DisplayState
	To     core.DisplayState
	Turn   core.Turn
	Tick   int // Flip ordinal within the active run, 0 outside runs
	PlayID string
}

// FortuneRevealedPayload is the host-facing result message
// Its JSON form is the wire contract with the host message channel
type FortuneRevealedPayload struct {
	Type       string `json:"type"`
	Fortune    string `json:"fortune"`
	FlapNumber int    `json:"flapNumber"`
	Success    bool   `json:"success"`
}

// PlayResetPayload identifies the play-through that just ended
type PlayResetPayload struct {
	PlayID string
}
