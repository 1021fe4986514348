package markers

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"goworld/internal/geom"
)

// ReadGPX adds every GPX track as one marker track (its segments joined in
// order) and every waypoint as a point.
func ReadGPX(data []byte, set *Set) error {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("failed to parse GPX file: %w", err)
	}
	for _, track := range g.Tracks {
		var pts []geom.Point
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				pts = append(pts, geom.Point{p.Longitude, p.Latitude})
			}
		}
		set.AddTrack(pts)
	}
	for _, w := range g.Waypoints {
		set.AddPoint(geom.Point{w.Longitude, w.Latitude})
	}
	return nil
}
