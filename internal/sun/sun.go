// Package sun locates the sub-solar point with a low-precision approximation
// (equation of time from two sinusoids, declination from one).
package sun

import (
	"math"
	"time"
)

// State is the sub-solar point for one run. The zero value is inactive.
type State struct {
	Active bool
	Lon    float64
	Lat    float64
}

// Now returns the active state for the current instant.
func Now() State {
	return At(time.Now())
}

// At returns the active state for t.
func At(t time.Time) State {
	lon, lat := Position(t)
	return State{Active: true, Lon: lon, Lat: lat}
}

// Position returns the sub-solar longitude and latitude in degrees for t (converted to UTC).
func Position(t time.Time) (lon, lat float64) {
	utc := t.UTC()
	d := float64(utc.YearDay())
	sec := float64(utc.Hour()*3600 + utc.Minute()*60 + utc.Second())

	// equation of time, in hours
	eot := -0.171*math.Sin(0.0337*d+0.465) - 0.1299*math.Sin(0.01787*d-0.168)

	lon = (sec - (86400.0/2 + eot*-3600)) * (-360.0 / 86400)
	lat = 0.4095 * math.Sin(0.016906*(d-80.086)) * 180 / math.Pi
	return normalizeLon(lon), lat
}

// normalizeLon wraps lon into [-180, 180).
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
