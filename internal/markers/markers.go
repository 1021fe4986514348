// Package markers reads highlighted points, tracks and circles from marker
// files and assigns each track or circle its palette color.
package markers

import (
	"goworld/internal/canvas"
	"goworld/internal/geom"
)

type Kind int

const (
	Point Kind = iota
	Track
	Circle
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Track:
		return "track"
	case Circle:
		return "circle"
	}
	return "unknown"
}

// Entry is one marker. A Point holds one position, a Track the ordered
// positions of its polyline, a Circle its center plus Radius in degrees.
type Entry struct {
	Kind   Kind
	Points []geom.Point
	Radius float64
	// Color is the track palette index; unused for points.
	Color int
}

// Set collects entries from one or more sources. Colors cycle through the
// track palette once per track and once per circle, across all sources
// added to the same Set.
type Set struct {
	Entries []Entry
	// Skipped counts input lines or records that could not be used.
	Skipped int

	next int
}

func (s *Set) nextColor() int {
	c := s.next
	s.next = (s.next + 1) % canvas.NumTracks
	return c
}

func (s *Set) AddPoint(p geom.Point) {
	s.Entries = append(s.Entries, Entry{Kind: Point, Points: []geom.Point{p}})
}

// AddTrack appends a track and advances the palette. An empty track still
// uses up a color.
func (s *Set) AddTrack(pts []geom.Point) {
	c := s.nextColor()
	if len(pts) == 0 {
		return
	}
	s.Entries = append(s.Entries, Entry{Kind: Track, Points: pts, Color: c})
}

func (s *Set) AddCircle(center geom.Point, radius float64) {
	s.Entries = append(s.Entries, Entry{Kind: Circle, Points: []geom.Point{center}, Radius: radius, Color: s.nextColor()})
}

// Count returns the number of entries of kind k.
func (s *Set) Count(k Kind) int {
	n := 0
	for _, e := range s.Entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}
