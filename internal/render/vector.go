package render

import (
	"errors"
	"fmt"

	plane "github.com/jbeda/geom"

	"goworld/internal/canvas"
	"goworld/internal/geom"
)

var (
	ErrNotPolygon = errors.New("shape is not a polygon")
	ErrEmptyShape = errors.New("shape has no points")
)

func validateShape(s geom.Shape) error {
	if s.Kind != geom.Polygon {
		return ErrNotPolygon
	}
	if len(s.Rings) == 0 {
		return ErrEmptyShape
	}
	for i, r := range s.Rings {
		if len(r) == 0 {
			return fmt.Errorf("ring %d: %w", i, ErrEmptyShape)
		}
	}
	return nil
}

// DrawShapes paints land. Every shape is validated before anything is
// drawn; one bad shape fails the whole call.
func (c *Context) DrawShapes(shapes []geom.Shape) error {
	for i, s := range shapes {
		if err := validateShape(s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	if c.opts.Region.Valid() {
		var err error
		n := len(shapes)
		if shapes, err = geom.Filter(shapes, c.opts.Region); err != nil {
			return fmt.Errorf("region %s: %w", c.opts.Region, err)
		}
		c.log.Printf("render: region %s keeps %d of %d shapes", c.opts.Region, len(shapes), n)
	}

	holes := 0
	for _, s := range shapes {
		holes += c.drawShape(s)
	}
	c.log.Printf("render: %d shapes, %d holes", len(shapes), holes)
	return nil
}

// drawShape returns the number of rings it treated as holes.
func (c *Context) drawShape(s geom.Shape) int {
	trust := len(s.Rings) > 1 || c.opts.TrustSingleRingOrientation
	holes := 0
	for _, ring := range s.Rings {
		pts := make([]plane.Coord, len(ring))
		for i, p := range ring {
			pts[i] = c.project(p)
		}
		if c.opts.Outline {
			c.canvas.StrokePolygon(pts, canvas.Land)
			continue
		}
		class := canvas.Land
		if trust && geom.SignedArea(ring) > 0 {
			class = canvas.Empty
			holes++
		}
		c.canvas.FillPolygon(pts, class)
	}
	return holes
}
