// Package project maps geographic coordinates onto a canvas of a given size.
package project

import (
	"fmt"
	"math"
	"strings"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Kind selects one of the supported world projections.
type Kind int

const (
	Equirectangular Kind = iota
	Kavrayskiy
	Lambert
	Hammer
)

var names = map[Kind]string{
	Equirectangular: "equirectangular",
	Kavrayskiy:      "kavrayskiy",
	Lambert:         "lambert",
	Hammer:          "hammer",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind matches on the first three letters only, so "equ", "kav", "lam",
// "ham" and any longer spelling all work.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for k, n := range names {
			if strings.HasPrefix(n, s[:3]) {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown projection %q", s)
}

// Project maps lon/lat in degrees to canvas coordinates for a w x h canvas.
// Results may fall outside the canvas; callers clip.
func (k Kind) Project(lon, lat float64, w, h int) (x, y float64) {
	switch k {
	case Kavrayskiy:
		lonr, latr := lon*deg2rad, lat*deg2rad
		x = 1.5 * lonr * math.Sqrt(1.0/3-(latr/math.Pi)*(latr/math.Pi))
		return toCanvas(x*rad2deg, lat, w, h)
	case Lambert:
		return toCanvas(lon, math.Sin(lat*deg2rad)*90, w, h)
	case Hammer:
		lonr, latr := lon*deg2rad, lat*deg2rad
		d := math.Sqrt(1 + math.Cos(latr)*math.Cos(lonr/2))
		x = 2 * math.Sqrt2 * math.Cos(latr) * math.Sin(lonr/2) / d
		y = math.Sqrt2 * math.Sin(latr) / d
		return toCanvas(x*rad2deg, y*rad2deg, w, h)
	default:
		return toCanvas(lon, lat, w, h)
	}
}

// Inverse maps canvas coordinates back to lon/lat in degrees. ok is false
// when (x, y) lies outside the area the projection covers.
func (k Kind) Inverse(x, y float64, w, h int) (lon, lat float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	px, py := fromCanvas(x, y, w, h)
	switch k {
	case Kavrayskiy:
		if py < -90 || py > 90 {
			return 0, 0, false
		}
		latr := py * deg2rad
		s := 1.5 * math.Sqrt(1.0/3-(latr/math.Pi)*(latr/math.Pi))
		lon = px * deg2rad / s * rad2deg
		lat = py
	case Lambert:
		if py < -90 || py > 90 {
			return 0, 0, false
		}
		lon = px
		lat = math.Asin(py/90) * rad2deg
	case Hammer:
		hx, hy := px*deg2rad, py*deg2rad
		z2 := 1 - (hx/4)*(hx/4) - (hy/2)*(hy/2)
		if z2 < 0.5 {
			return 0, 0, false
		}
		z := math.Sqrt(z2)
		lon = 2 * math.Atan2(z*hx, 2*(2*z2-1)) * rad2deg
		lat = math.Asin(z*hy) * rad2deg
	default:
		lon, lat = px, py
	}
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 || math.IsNaN(lon) || math.IsNaN(lat) {
		return 0, 0, false
	}
	return lon, lat, true
}

// toCanvas scales plane coordinates in degrees (x in [-180,180], y in [-90,90]) to the canvas.
func toCanvas(px, py float64, w, h int) (float64, float64) {
	return (px + 180) / 360 * float64(w), (180 - (py + 90)) / 180 * float64(h)
}

func fromCanvas(x, y float64, w, h int) (float64, float64) {
	return x/float64(w)*360 - 180, 90 - y/float64(h)*180
}
