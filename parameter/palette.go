package parameter

// ColorEntry binds a region fill color to the name spelled out during the first run
type ColorEntry struct {
	Name string
	Hex  string
	Key  rune // Keyboard shortcut in the terminal host
}

// Palette is the fixed four-color outer face of the fortune teller
// Run length of the first animation equals len(Name): red=3, blue=4, green=5, yellow=6
var Palette = [4]ColorEntry{
	{Name: "red", Hex: "#EF476F", Key: 'r'},
	{Name: "yellow", Hex: "#FFD166", Key: 'y'},
	{Name: "green", Hex: "#06D6A0", Key: 'g'},
	{Name: "blue", Hex: "#118AB2", Key: 'b'},
}

// DefaultColorName is used for region colors outside the palette (4 letters, 4 ticks)
const DefaultColorName = "blue"
