package core

// DisplayState is the coarse visual state of the fortune teller
type DisplayState uint8

const (
	StateClosed DisplayState = iota
	StateAnimatingHorizontal
	StateAnimatingVertical
	StateHorizontalWithNumbers
	StateVerticalWithNumbers
	StateOpened
)

var displayStateNames = [...]string{
	StateClosed:                "Closed",
	StateAnimatingHorizontal:   "AnimatingHorizontal",
	StateAnimatingVertical:     "AnimatingVertical",
	StateHorizontalWithNumbers: "HorizontalWithNumbers",
	StateVerticalWithNumbers:   "VerticalWithNumbers",
	StateOpened:                "Opened",
}

func (s DisplayState) String() string {
	if int(s) < len(displayStateNames) {
		return displayStateNames[s]
	}
	return "Unknown"
}

// IsAnimating reports whether s is one of the two mid-run orientations
func (s DisplayState) IsAnimating() bool {
	return s == StateAnimatingHorizontal || s == StateAnimatingVertical
}

// ShowsNumbers reports whether s accepts a number tap
func (s DisplayState) ShowsNumbers() bool {
	return s == StateHorizontalWithNumbers || s == StateVerticalWithNumbers
}

// Turn counts completed selections within one play-through
type Turn uint8

const (
	TurnNotStarted Turn = iota
	TurnColor           // Color selected, first run
	TurnNumber          // Number selected, second run
)

// FlapVariant names the presentation-only artwork of a single lifted flap (1-8)
// The sequencer never enters these; renderers may use them to decorate the opened state
type FlapVariant uint8

// FlapVariantFor returns the artwork variant for flap n, 0 when n is out of range
func FlapVariantFor(n int) FlapVariant {
	if n < 1 || n > 8 {
		return 0
	}
	return FlapVariant(n)
}
