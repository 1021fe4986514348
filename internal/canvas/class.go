package canvas

import "fmt"

const (
	NumTracks = 3
	NumShades = 8
)

// Class is the paint class stored in a canvas cell. It names what is drawn
// there; colors and glyphs are chosen later by the output stage.
type Class uint8

const (
	Empty Class = iota
	Land
	WorldBorder
	SunBorder
	Sun
	Highlight
	trackBase
	shadeBase  = trackBase + NumTracks
	NumClasses = shadeBase + NumShades
)

// Track returns the class of track palette entry i (taken mod NumTracks).
func Track(i int) Class {
	i %= NumTracks
	if i < 0 {
		i += NumTracks
	}
	return trackBase + Class(i)
}

// Shade returns the class of shade palette entry i, clamped to [0, NumShades).
// Entry 0 is deepest night, NumShades-1 full daylight.
func Shade(i int) Class {
	if i < 0 {
		i = 0
	}
	if i >= NumShades {
		i = NumShades - 1
	}
	return shadeBase + Class(i)
}

// Kind groups classes that share output rules.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLand
	KindWorldBorder
	KindSunBorder
	KindSun
	KindHighlight
	KindTrack
	KindShade
)

func (c Class) Kind() Kind {
	switch {
	case c >= shadeBase && c < NumClasses:
		return KindShade
	case c >= trackBase && c < shadeBase:
		return KindTrack
	case c < trackBase:
		return Kind(c)
	}
	return KindEmpty
}

// Index returns the palette index of a track or shade class, 0 otherwise.
func (c Class) Index() int {
	switch c.Kind() {
	case KindTrack:
		return int(c - trackBase)
	case KindShade:
		return int(c - shadeBase)
	}
	return 0
}

func (c Class) String() string {
	switch c.Kind() {
	case KindEmpty:
		return "empty"
	case KindLand:
		return "land"
	case KindWorldBorder:
		return "border"
	case KindSunBorder:
		return "sun-border"
	case KindSun:
		return "sun"
	case KindHighlight:
		return "highlight"
	case KindTrack:
		return fmt.Sprintf("track%d", c.Index())
	case KindShade:
		return fmt.Sprintf("shade%d", c.Index())
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}
