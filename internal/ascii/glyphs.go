package ascii

import "fmt"

// Glyphs selects the characters used for plain 2x2 blocks.
type Glyphs int

const (
	// Blocks uses the Unicode quadrant characters.
	Blocks Glyphs = iota
	// ASCII approximates each silhouette with line-drawing ASCII.
	ASCII
	// Braille lights two dots per occupied corner.
	Braille
)

// Corner bits of a block mask.
const (
	upperLeft uint8 = 1 << iota
	upperRight
	lowerLeft
	lowerRight
)

var blockGlyphs = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

var asciiGlyphs = [16]rune{
	' ', '`', '\'', '"', ',', '|', '/', 'r',
	'.', '\\', '|', '7', '_', 'L', 'J', 'o',
}

// braille dot bits per corner: each corner covers two of the eight dots
var brailleDots = [4]rune{
	0x01 | 0x02, // dots 1, 2
	0x08 | 0x10, // dots 4, 5
	0x04 | 0x40, // dots 3, 7
	0x20 | 0x80, // dots 6, 8
}

// Rune returns the glyph for a 4-bit corner mask.
func (g Glyphs) Rune(mask uint8) rune {
	mask &= 0x0f
	switch g {
	case ASCII:
		return asciiGlyphs[mask]
	case Braille:
		if mask == 0 {
			return ' '
		}
		var dots rune
		for i := range brailleDots {
			if mask&(1<<i) != 0 {
				dots |= brailleDots[i]
			}
		}
		return 0x2800 + dots
	default:
		return blockGlyphs[mask]
	}
}

func (g Glyphs) String() string {
	switch g {
	case ASCII:
		return "ascii"
	case Braille:
		return "braille"
	default:
		return "blocks"
	}
}

func ParseGlyphs(s string) (Glyphs, error) {
	switch s {
	case "blocks", "":
		return Blocks, nil
	case "ascii":
		return ASCII, nil
	case "braille":
		return Braille, nil
	}
	return 0, fmt.Errorf("unknown glyph set %q", s)
}
