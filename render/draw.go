package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

var (
	styleTitle   = tcell.StyleDefault.Bold(true).Reverse(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleFold    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleAccent  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
)

// Draw renders a full frame: title, regions or fold animation, result overlay, hint and status line
// statusLine is shown only when non-empty
func Draw(screen tcell.Screen, snap engine.Snapshot, regions []Region, statusLine string) {
	screen.Clear()
	w, h := screen.Size()

	drawCentered(screen, 0, w, parameter.TitleText, styleTitle)

	if snap.State.IsAnimating() {
		drawFold(screen, w, h, snap)
	}

	for _, r := range regions {
		drawRegion(screen, r)
	}

	if snap.HasResult() {
		drawOverlay(screen, w, h, snap)
	}

	hint := hintFor(snap) + "  " + parameter.QuitHint
	drawText(screen, 0, h-2, w, hint, styleHint)
	if statusLine != "" {
		drawText(screen, 0, h-1, w, statusLine, styleStatus)
	}
}

func hintFor(snap engine.Snapshot) string {
	switch {
	case snap.HasResult():
		return parameter.HintRevealed
	case snap.State.IsAnimating():
		return parameter.HintAnimated
	case snap.State == core.StateClosed:
		return parameter.HintClosed
	case snap.State.ShowsNumbers():
		return parameter.HintNumbers
	case snap.State == core.StateOpened:
		return parameter.HintOpened
	}
	return ""
}

func drawRegion(screen tcell.Screen, r Region) {
	style := tcell.StyleDefault.Background(r.Fill).Foreground(textOn(r.Fill))
	for y := r.Rect.Y; y < r.Rect.Y+r.Rect.H; y++ {
		for x := r.Rect.X; x < r.Rect.X+r.Rect.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	drawCentered(screen, r.Rect.Y+r.Rect.H/2, 0, r.Label, style, r.Rect)
}

// drawFold shows the teller mid-flip, a wide diamond for horizontal and a tall one for vertical
func drawFold(screen tcell.Screen, w, h int, snap engine.Snapshot) {
	cx := w / 2
	cy := parameter.TopMargin + (h-parameter.TopMargin-parameter.BottomMargin)/2

	rx, ry := 8, 2
	if snap.State == core.StateAnimatingVertical {
		rx, ry = 4, 4
	}

	for dy := -ry; dy <= ry; dy++ {
		span := rx * (ry - abs(dy)) / ry
		for dx := -span; dx <= span; dx++ {
			ch := '·'
			if dx == -span || dx == span {
				ch = '◆'
			}
			screen.SetContent(cx+dx, cy+dy, ch, nil, styleFold)
		}
	}

	counter := fmt.Sprintf("%d / %d", snap.Ticks, snap.RunLength)
	drawCentered(screen, cy+ry+2, w, counter, styleHint)
}

func drawOverlay(screen tcell.Screen, w, h int, snap engine.Snapshot) {
	text := snap.Result.Text
	heading := fmt.Sprintf("Flap %d", snap.Result.FlapNumber)
	marks := flapMarks(core.FlapVariantFor(snap.Result.FlapNumber))

	boxW := min(parameter.OverlayMaxWidth, w)
	inner := max(boxW-4, 1)
	lines := wrap(text, inner)

	boxH := len(lines) + 5
	x0 := max((w-boxW)/2, 0)
	y0 := max((h-boxH)/2, 0)
	box := Rect{X: x0, Y: y0, W: boxW, H: boxH}

	for y := box.Y; y < box.Y+box.H; y++ {
		for x := box.X; x < box.X+box.W; x++ {
			screen.SetContent(x, y, ' ', nil, styleOverlay)
		}
	}

	drawCentered(screen, box.Y+1, 0, heading, styleAccent, box)
	if marks != "" {
		drawCentered(screen, box.Y+2, 0, marks, styleAccent, box)
	}
	for i, line := range lines {
		drawCentered(screen, box.Y+4+i, 0, line, styleOverlay, box)
	}
}

// flapMarks draws the eight flaps in order with the lifted one raised, empty for no variant
func flapMarks(v core.FlapVariant) string {
	if v == 0 {
		return ""
	}
	var b strings.Builder
	for i := 1; i <= 8; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		if i == int(v) {
			b.WriteByte('^')
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// wrap breaks text on spaces into lines of at most width columns
// A single word wider than width is truncated with an ellipsis
func wrap(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		if runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width, "…")
		}
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// drawCentered writes s centered on row y, inside bounds when given, else across width w
func drawCentered(screen tcell.Screen, y, w int, s string, style tcell.Style, bounds ...Rect) {
	x0, width := 0, w
	if len(bounds) > 0 {
		x0, width = bounds[0].X, bounds[0].W
	}
	s = runewidth.Truncate(s, width, "")
	x := x0 + max((width-runewidth.StringWidth(s))/2, 0)
	drawText(screen, x, y, width, s, style)
}

// drawText writes s from (x, y), clipped to width columns
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col+rw > width {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += rw
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
