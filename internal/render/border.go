package render

import (
	"math"

	"goworld/internal/canvas"
	"goworld/internal/geom"
)

const (
	borderSteps = 128
	// just inside the edges so that no projection folds them onto the
	// opposite side
	borderLon = 179.99999
	borderLat = 89.99999
)

// DrawWorldBorder outlines the projected globe: the meridians at +-180 and
// the parallels at +-90, each as borderSteps projected segments.
func (c *Context) DrawWorldBorder() {
	for i := 0; i < borderSteps; i++ {
		t1 := float64(i) / borderSteps
		t2 := float64(i+1) / borderSteps
		lat1, lat2 := t1*180-90, t2*180-90
		lon1, lon2 := t1*360-180, t2*360-180

		c.borderSegment(geom.Point{-borderLon, lat1}, geom.Point{-borderLon, lat2})
		c.borderSegment(geom.Point{borderLon, lat1}, geom.Point{borderLon, lat2})
		c.borderSegment(geom.Point{lon1, -borderLat}, geom.Point{lon2, -borderLat})
		c.borderSegment(geom.Point{lon1, borderLat}, geom.Point{lon2, borderLat})
	}
}

// borderSegment skips segments that start and end in the same cell.
func (c *Context) borderSegment(a, b geom.Point) {
	pa, pb := c.project(a), c.project(b)
	if math.Floor(pa.X) == math.Floor(pb.X) && math.Floor(pa.Y) == math.Floor(pb.Y) {
		return
	}
	c.canvas.LineF(pa, pb, canvas.WorldBorder)
}
