// Package geom holds the vector map model (shapes made of lon/lat rings)
// and the loaders that read it from shapefile, GeoJSON and WKT sources.
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a geographic position, {lon, lat} in degrees.
type Point [2]float64

func (p Point) Lon() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Ring is a closed sequence of points; the closing edge is implicit.
type Ring []Point

type Kind int

const (
	Polygon Kind = iota
	Other
)

func (k Kind) String() string {
	if k == Polygon {
		return "polygon"
	}
	return "other"
}

// Shape is one map record. Only Polygon shapes can be rendered; Other marks
// any record the source held that is not a polygon.
type Shape struct {
	Kind   Kind
	Rings  []Ring
	Bounds BBox
}

// NewPolygon builds a polygon shape and computes its bounds.
func NewPolygon(rings ...Ring) Shape {
	s := Shape{Kind: Polygon, Rings: rings}
	for _, r := range rings {
		for _, p := range r {
			s.Bounds = s.Bounds.Extend(p)
		}
	}
	return s
}

// NumPoints counts vertices over all rings.
func (s Shape) NumPoints() int {
	n := 0
	for _, r := range s.Rings {
		n += len(r)
	}
	return n
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
	set  bool
}

// NewBBox returns the box spanning the two corners in any order.
func NewBBox(x1, y1, x2, y2 float64) BBox {
	return BBox{}.Extend(Point{x1, y1}).Extend(Point{x2, y2})
}

// Valid reports whether at least one point has been added.
func (b BBox) Valid() bool { return b.set }

func (b BBox) Extend(p Point) BBox {
	if !b.set {
		return BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1], set: true}
	}
	b.MinX = math.Min(b.MinX, p[0])
	b.MinY = math.Min(b.MinY, p[1])
	b.MaxX = math.Max(b.MaxX, p[0])
	b.MaxY = math.Max(b.MaxY, p[1])
	return b
}

func (b BBox) Intersects(o BBox) bool {
	if !b.set || !o.set {
		return false
	}
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// ParseBBox reads "minlon,minlat,maxlon,maxlat".
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox %q: want minlon,minlat,maxlon,maxlat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bbox %q: %w", s, err)
		}
		v[i] = f
	}
	return NewBBox(v[0], v[1], v[2], v[3]), nil
}

// SignedArea is the shoelace area of r over x=lon, y=lat. Counter-clockwise
// rings are positive.
func SignedArea(r Ring) float64 {
	var sum float64
	for i := range r {
		a := r[i]
		b := r[(i+1)%len(r)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}
