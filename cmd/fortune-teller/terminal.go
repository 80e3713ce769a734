package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/input"
	"github.com/CodewithAN/paper-fortune-teller/parameter"
	"github.com/CodewithAN/paper-fortune-teller/render"
	"github.com/CodewithAN/paper-fortune-teller/status"
)

// terminalHost runs the interactive tcell front end
type terminalHost struct {
	screen     tcell.Screen
	seq        *engine.Sequencer
	statusReg  *status.Registry
	mapper     *input.Mapper
	showStatus bool
}

func newTerminalHost(screen tcell.Screen, seq *engine.Sequencer, showStatus bool) *terminalHost {
	return &terminalHost{
		screen:     screen,
		seq:        seq,
		statusReg:  seq.Status(),
		mapper:     input.NewMapper(),
		showStatus: showStatus,
	}
}

// run polls terminal events and redraws on a fixed frame interval until quit
func (h *terminalHost) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	h.draw()
	for {
		select {
		case ev := <-events:
			if !h.handle(ev) {
				return
			}
		case <-ticker.C:
			h.draw()
		}
	}
}

// handle applies one terminal event, returns false on quit
func (h *terminalHost) handle(ev tcell.Event) bool {
	w, ht := h.screen.Size()
	regions := render.Layout(w, ht, h.seq.Snapshot())

	action := h.mapper.Map(ev, regions)
	switch action.Type {
	case input.ActionQuit:
		return false
	case input.ActionTap:
		h.seq.HandleTap(action.Region.ID, action.Region.Color)
		h.draw()
	case input.ActionResize:
		h.screen.Sync()
		h.draw()
	case input.ActionToggleStatus:
		h.showStatus = !h.showStatus
	}
	return true
}

func (h *terminalHost) draw() {
	snap := h.seq.Snapshot()
	w, ht := h.screen.Size()

	statusLine := ""
	if h.showStatus {
		statusLine = h.statusReg.Line()
	}
	render.Draw(h.screen, snap, render.Layout(w, ht, snap), statusLine)
	h.screen.Show()
}
