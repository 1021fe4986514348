package render

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"goworld/internal/canvas"
	"goworld/internal/geom"
	"goworld/internal/markers"
)

const circleSteps = 1024

// DrawMarkers paints tracks and circles first, then points on top.
func (c *Context) DrawMarkers(set *markers.Set) {
	var points int
	for _, e := range set.Entries {
		switch e.Kind {
		case markers.Track:
			c.drawPath(e.Points, canvas.Track(e.Color), false)
		case markers.Circle:
			for _, p := range CirclePoints(e.Points[0], e.Radius, circleSteps) {
				c.setPoint(p, canvas.Track(e.Color))
			}
		}
	}
	for _, e := range set.Entries {
		if e.Kind == markers.Point {
			c.setPoint(e.Points[0], canvas.Highlight)
			points++
		}
	}
	c.log.Printf("render: %d markers (%d points), %d skipped on input", len(set.Entries), points, set.Skipped)
}

// DrawSun marks the sub-solar point.
func (c *Context) DrawSun() {
	c.setPoint(geom.Point{c.opts.Sun.Lon, c.opts.Sun.Lat}, canvas.Sun)
}

func (c *Context) setPoint(p geom.Point, class canvas.Class) {
	xy := c.project(p)
	if math.IsNaN(xy.X) || math.IsNaN(xy.Y) {
		return
	}
	c.canvas.Set(int(math.Floor(xy.X)), int(math.Floor(xy.Y)), class)
}

// drawPath paints a polyline. Segments touching a NaN point are skipped;
// with seam set, so are segments jumping more than 180 degrees of longitude.
func (c *Context) drawPath(pts []geom.Point, class canvas.Class, seam bool) {
	if len(pts) == 1 {
		c.setPoint(pts[0], class)
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if isNaN(a) || isNaN(b) {
			continue
		}
		if seam && math.Abs(a[0]-b[0]) > 180 {
			continue
		}
		c.canvas.LineF(c.project(a), c.project(b), class)
	}
}

func isNaN(p geom.Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}

// CirclePoints returns steps points on the small circle of angular radius
// (degrees) around center. A start point is found by moving along the
// center's meridian towards the equator, then rotated about the center's
// axis one fixed angle per step.
func CirclePoints(center geom.Point, radius float64, steps int) []geom.Point {
	startLat := center[1] + radius
	if center[1] > 0 {
		startLat = center[1] - radius
	}
	axis := s2.PointFromLatLng(s2.LatLngFromDegrees(center[1], center[0])).Vector
	v := s2.PointFromLatLng(s2.LatLngFromDegrees(startLat, center[0])).Vector

	alpha := 2 * math.Pi / float64(steps)
	cos, sin := math.Cos(alpha), math.Sin(alpha)
	pts := make([]geom.Point, 0, steps)
	for i := 0; i < steps; i++ {
		ll := s2.LatLngFromPoint(s2.Point{Vector: v})
		pts = append(pts, geom.Point{ll.Lng.Degrees(), ll.Lat.Degrees()})
		v = rotate(v, axis, cos, sin)
	}
	return pts
}

// rotate turns v about the unit axis k (Rodrigues).
func rotate(v, k r3.Vector, cos, sin float64) r3.Vector {
	return v.Mul(cos).Add(k.Cross(v).Mul(sin)).Add(k.Mul(k.Dot(v) * (1 - cos)))
}
