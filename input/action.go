// Package input turns terminal events into fortune teller actions
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/CodewithAN/paper-fortune-teller/render"
)

// ActionType classifies a mapped terminal event
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionQuit
	ActionTap          // Region holds the tapped region
	ActionResize       // Screen size changed, caller should sync
	ActionToggleStatus // Show or hide the debug status line
)

// Action is the semantic result of one terminal event
type Action struct {
	Type   ActionType
	Region render.Region
}

// Mapper converts tcell events against the regions currently on screen
// Tracks button state so a held mouse button taps once
type Mapper struct {
	buttons tcell.ButtonMask
}

// NewMapper creates a mapper with no buttons held
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map returns the action for ev, ActionNone when ev means nothing in the current layout
func (m *Mapper) Map(ev tcell.Event, regions []render.Region) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Action{Type: ActionResize}

	case *tcell.EventKey:
		return mapKey(ev, regions)

	case *tcell.EventMouse:
		return m.mapMouse(ev, regions)
	}
	return Action{}
}

func mapKey(ev *tcell.EventKey, regions []render.Region) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Type: ActionQuit}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return Action{Type: ActionQuit}
	case '?':
		return Action{Type: ActionToggleStatus}
	default:
		if region, ok := render.ByKey(regions, r); ok {
			return Action{Type: ActionTap, Region: region}
		}
	}
	return Action{}
}

func (m *Mapper) mapMouse(ev *tcell.EventMouse, regions []render.Region) Action {
	prev := m.buttons
	m.buttons = ev.Buttons()

	// Press edge of the primary button only
	if m.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return Action{}
	}

	x, y := ev.Position()
	if region, ok := render.HitTest(regions, x, y); ok {
		return Action{Type: ActionTap, Region: region}
	}
	return Action{}
}
