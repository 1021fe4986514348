package ascii

import (
	"fmt"

	"goworld/internal/canvas"
)

// Palette holds the escape sequences for each kind of paint class.
type Palette struct {
	Name      string
	Reset     string
	Highlight string
	Sun       string
	SunBorder string
	Line      string
	Title     string
	Shades    [canvas.NumShades]string
	Tracks    [canvas.NumTracks]string
}

func sgr(code string) string { return "\033[" + code + "m" }

var Palette256 = &Palette{
	Name:      "256",
	Reset:     sgr("0"),
	Highlight: sgr("38;5;196"),
	Sun:       sgr("38;5;220"),
	SunBorder: sgr("38;5;220"),
	Line:      sgr("38;5;255"),
	Title:     sgr("1"),
	Shades: [canvas.NumShades]string{
		sgr("38;5;18"), sgr("38;5;19"), sgr("38;5;21"), sgr("38;5;26"),
		sgr("38;5;30"), sgr("38;5;35"), sgr("38;5;40"), sgr("38;5;46"),
	},
	Tracks: [canvas.NumTracks]string{sgr("38;5;201"), sgr("38;5;255"), sgr("38;5;202")},
}

var Palette8 = &Palette{
	Name:      "8",
	Reset:     sgr("0"),
	Highlight: sgr("31;1"),
	Sun:       sgr("33"),
	SunBorder: sgr("36"),
	Line:      sgr("37"),
	Title:     sgr("1"),
	Shades: [canvas.NumShades]string{
		sgr("34"), sgr("34"), sgr("34;1"), sgr("34;1"),
		sgr("32"), sgr("32"), sgr("32;1"), sgr("32;1"),
	},
	Tracks: [canvas.NumTracks]string{sgr("35;1"), sgr("35;1"), sgr("35;1")},
}

// PaletteFor maps a color count to a palette. Zero disables colors and
// returns nil.
func PaletteFor(colors int) (*Palette, error) {
	switch colors {
	case 0:
		return nil, nil
	case 8:
		return Palette8, nil
	case 256:
		return Palette256, nil
	}
	return nil, fmt.Errorf("unsupported color count %d (want 0, 8 or 256)", colors)
}

// Seq returns the escape sequence for a class, or "" when the class is
// drawn uncolored.
func (p *Palette) Seq(c canvas.Class) string {
	if p == nil {
		return ""
	}
	switch c.Kind() {
	case canvas.KindHighlight:
		return p.Highlight
	case canvas.KindTrack:
		return p.Tracks[c.Index()]
	case canvas.KindSun:
		return p.Sun
	case canvas.KindSunBorder:
		return p.SunBorder
	case canvas.KindShade:
		return p.Shades[c.Index()]
	case canvas.KindWorldBorder:
		return p.Line
	}
	return ""
}
