package parameter

import "time"

// FrameUpdateInterval is the terminal host redraw interval (~30 FPS)
const FrameUpdateInterval = 33 * time.Millisecond

// Layout & Margins
const (
	// TopMargin holds the title line
	TopMargin = 1

	// BottomMargin holds the hint line and the debug status line
	BottomMargin = 2

	// CellWidth and CellHeight size a single tappable region box
	CellWidth  = 12
	CellHeight = 3

	// OverlayMaxWidth caps the fortune overlay box width (in terminal columns)
	OverlayMaxWidth = 48
)

// Terminal host text
const (
	TitleText    = " PAPER FORTUNE TELLER "
	HintClosed   = "pick a color (click or r/y/g/b)"
	HintNumbers  = "pick a number (click or 1-8)"
	HintOpened   = "pick a flap (click or 1-8)"
	HintAnimated = "..."
	HintRevealed = "your fortune"
	QuitHint     = "q: quit"
)
