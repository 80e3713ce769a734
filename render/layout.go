package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/parameter"
	"github.com/CodewithAN/paper-fortune-teller/region"
)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a tappable area valid for the current display state
type Region struct {
	ID    string // Passed to Sequencer.HandleTap as the region id
	Color string // Passed as the region color, palette hex for color regions
	Label string
	Key   rune
	Fill  tcell.Color
	Rect  Rect
}

// Layout returns the tappable regions for a snapshot on a w x h screen
// Animating states and a shown fortune expose no regions
func Layout(w, h int, snap engine.Snapshot) []Region {
	switch {
	case snap.Animating || snap.State.IsAnimating() || snap.Closed:
		return nil

	case snap.State == core.StateClosed:
		cells := grid(w, h, 2, 2)
		caser := cases.Title(language.English)
		regions := make([]Region, len(parameter.Palette))
		for i, entry := range parameter.Palette {
			regions[i] = Region{
				ID:    entry.Name,
				Color: entry.Hex,
				Label: caser.String(entry.Name),
				Key:   entry.Key,
				Fill:  hexColor(entry.Hex),
				Rect:  cells[i],
			}
		}
		return regions

	case snap.State.ShowsNumbers():
		cols, rows := 4, 2
		if snap.State == core.StateVerticalWithNumbers {
			cols, rows = 2, 4
		}
		return numbered(grid(w, h, cols, rows), region.NumberID, numberFill)

	case snap.State == core.StateOpened:
		if snap.HasResult() {
			return nil
		}
		return numbered(grid(w, h, 4, 2), region.FlapID, flapFill)
	}

	return nil
}

// HitTest returns the region under (x, y)
func HitTest(regions []Region, x, y int) (Region, bool) {
	for _, r := range regions {
		if r.Rect.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// ByKey returns the region bound to a keyboard shortcut
func ByKey(regions []Region, key rune) (Region, bool) {
	for _, r := range regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}

func numbered(cells []Rect, id func(int) string, fill func(int) tcell.Color) []Region {
	regions := make([]Region, len(cells))
	for i, cell := range cells {
		n := i + 1
		regions[i] = Region{
			ID:    id(n),
			Label: strconv.Itoa(n),
			Key:   rune('0' + n),
			Fill:  fill(n),
			Rect:  cell,
		}
	}
	return regions
}

// grid splits the play area into cols x rows boxes, row-major, centered
func grid(w, h, cols, rows int) []Rect {
	areaY := parameter.TopMargin
	areaH := h - parameter.TopMargin - parameter.BottomMargin

	cw := min(parameter.CellWidth, w/cols)
	ch := min(parameter.CellHeight, areaH/rows)
	cw = max(cw, 1)
	ch = max(ch, 1)

	x0 := max((w-cw*cols)/2, 0)
	y0 := areaY + max((areaH-ch*rows)/2, 0)

	cells := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Rect{X: x0 + c*cw, Y: y0 + r*ch, W: cw, H: ch})
		}
	}
	return cells
}

// Number boxes take the palette color of the quadrant they sit under, softened toward white
func numberFill(n int) tcell.Color {
	base, _ := colorful.Hex(parameter.Palette[(n-1)%len(parameter.Palette)].Hex)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return toTcell(base.BlendLab(white, 0.45))
}

// Flaps shade from light to dark paper
func flapFill(n int) tcell.Color {
	light := colorful.Color{R: 0.96, G: 0.94, B: 0.88}
	dark := colorful.Color{R: 0.78, G: 0.74, B: 0.66}
	return toTcell(light.BlendLab(dark, float64(n-1)/7))
}

func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// textOn picks black or white text for readability on fill
func textOn(fill tcell.Color) tcell.Color {
	r, g, b := fill.RGB()
	if r < 0 {
		return tcell.ColorWhite
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
