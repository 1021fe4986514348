// Package canvas holds the raster of paint classes the map is drawn into,
// together with the pixel, line and polygon primitives used to fill it.
package canvas

import (
	"errors"
	"fmt"
	"math"
	"sort"

	plane "github.com/jbeda/geom"
)

// MaxSide bounds each canvas dimension.
const MaxSide = 1 << 14

var ErrSize = errors.New("invalid canvas size")

// Canvas is a w x h grid of paint classes, row-major, origin top-left.
type Canvas struct {
	w, h  int
	cells []Class
}

// New allocates an all-Empty canvas.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 || w > MaxSide || h > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	return &Canvas{w: w, h: h, cells: make([]Class, w*h)}, nil
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// Set paints one cell. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, class Class) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.w+x] = class
}

// At returns the class at (x, y), or Empty outside the canvas.
func (c *Canvas) At(x, y int) Class {
	if !c.in(x, y) {
		return Empty
	}
	return c.cells[y*c.w+x]
}

// Count returns how many cells hold class.
func (c *Canvas) Count(class Class) int {
	n := 0
	for _, v := range c.cells {
		if v == class {
			n++
		}
	}
	return n
}

// Line paints an 8-connected Bresenham line between two cells, both ends
// included. Endpoints are put in a fixed order first so swapping them paints
// the same cells.
func (c *Canvas) Line(x1, y1, x2, y2 int, class Class) {
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	dx := abs(x2 - x1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dy := -abs(y2 - y1)
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x1, y1, class)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// LineF paints a line between two canvas coordinates, flooring them to cells.
// Segments with a NaN or infinite end are skipped.
func (c *Canvas) LineF(a, b plane.Coord, class Class) {
	if !finite(a) || !finite(b) {
		return
	}
	x1, y1, ok1 := cell(a)
	x2, y2, ok2 := cell(b)
	if !ok1 || !ok2 {
		return
	}
	c.Line(x1, y1, x2, y2, class)
}

// StrokePolygon paints the closed outline of pts.
func (c *Canvas) StrokePolygon(pts []plane.Coord, class Class) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		c.LineF(pts[0], pts[0], class)
		return
	}
	for i := range pts {
		c.LineF(pts[i], pts[(i+1)%len(pts)], class)
	}
}

// FillPolygon fills pts with the even-odd rule. A cell is painted when its
// center lies inside the polygon.
func (c *Canvas) FillPolygon(pts []plane.Coord, class Class) {
	if len(pts) < 3 {
		return
	}
	bounds := plane.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts {
		if !finite(p) {
			return
		}
		bounds.ExpandToContainCoord(p)
	}
	y0 := max(0, int(math.Floor(bounds.Min.Y)))
	y1 := min(c.h-1, int(math.Ceil(bounds.Max.Y)))

	var xs []float64
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			if (yc >= a.Y && yc < b.Y) || (yc >= b.Y && yc < a.Y) {
				t := (yc - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// cells whose center x+0.5 falls in [xs[i], xs[i+1])
			from := max(0, int(math.Ceil(xs[i]-0.5)))
			to := min(c.w, int(math.Ceil(xs[i+1]-0.5)))
			row := c.cells[y*c.w:]
			for x := from; x < to; x++ {
				row[x] = class
			}
		}
	}
}

// Merge copies the shade classes of overlay onto c. Only Land cells and
// cells that are already shaded take the overlay class; Empty cells and
// marker, sun and border classes are never changed.
func (c *Canvas) Merge(overlay *Canvas) error {
	if overlay.w != c.w || overlay.h != c.h {
		return fmt.Errorf("%w: merge %dx%d into %dx%d", ErrSize, overlay.w, overlay.h, c.w, c.h)
	}
	for i, o := range overlay.cells {
		if o.Kind() != KindShade {
			continue
		}
		cur := c.cells[i]
		if cur == Land || cur.Kind() == KindShade {
			c.cells[i] = o
		}
	}
	return nil
}

func finite(p plane.Coord) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// cell floors p to integer cell coordinates. Values far outside the canvas
// are rejected so the line walk stays bounded.
func cell(p plane.Coord) (int, int, bool) {
	const limit = 4 * MaxSide
	if math.Abs(p.X) > limit || math.Abs(p.Y) > limit {
		return 0, 0, false
	}
	return int(math.Floor(p.X)), int(math.Floor(p.Y)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
