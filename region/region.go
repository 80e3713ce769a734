// Package region interprets the identifiers and colors carried by tapped regions
package region

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

// ColorName maps a region color to its palette name
// Accepts hex in any case ("#06d6a0"), short hex ("#f00" style) and bare palette names
// Anything outside the palette resolves to the default name
func ColorName(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return parameter.DefaultColorName
	}

	if c, err := colorful.Hex(v); err == nil {
		hex := c.Hex()
		for _, entry := range parameter.Palette {
			if strings.EqualFold(entry.Hex, hex) {
				return entry.Name
			}
		}
		return parameter.DefaultColorName
	}

	for _, entry := range parameter.Palette {
		if strings.EqualFold(entry.Name, v) {
			return entry.Name
		}
	}
	return parameter.DefaultColorName
}

// ColorFor returns the palette entry for a color name
func ColorFor(name string) (parameter.ColorEntry, bool) {
	for _, entry := range parameter.Palette {
		if entry.Name == name {
			return entry, true
		}
	}
	return parameter.ColorEntry{}, false
}

// ParseNumeral reads the leading digit of a number region id such as "3-click"
// Only 1 through 8 are valid
func ParseNumeral(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	d := id[0]
	if d < '0'+parameter.MinNumeral || d > '0'+parameter.MaxNumeral {
		return 0, false
	}
	return int(d - '0'), true
}

// FlapNumber reads the flap numeral of an opened-state region id such as "7-flap"
// Unparseable ids count as the first flap
func FlapNumber(id string) int {
	if n, ok := ParseNumeral(id); ok {
		return n
	}
	return parameter.DefaultFlap
}

// NumberID builds the region id of a number tap
func NumberID(n int) string {
	return string(rune('0'+n)) + "-click"
}

// FlapID builds the region id of an opened-state flap
func FlapID(n int) string {
	return string(rune('0'+n)) + "-flap"
}
