package geom

import (
	"fmt"

	"github.com/jonas-p/go-shp"
)

// LoadShapefile reads an ESRI shapefile. The file must declare polygon
// geometry; a record that is not a polygon becomes an Other shape.
func LoadShapefile(path string) ([]Shape, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if r.GeometryType != shp.POLYGON {
		return nil, fmt.Errorf("%s: shape type %d is not polygon", path, r.GeometryType)
	}

	var shapes []Shape
	for r.Next() {
		n, s := r.Shape()
		poly, ok := s.(*shp.Polygon)
		if !ok {
			shapes = append(shapes, Shape{Kind: Other})
			continue
		}
		rings, err := splitParts(poly)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, n, err)
		}
		shapes = append(shapes, NewPolygon(rings...))
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return shapes, nil
}

// splitParts cuts the flat point list of a polygon record at its part offsets.
// Offsets must be ascending and inside the point list.
func splitParts(p *shp.Polygon) ([]Ring, error) {
	rings := make([]Ring, 0, len(p.Parts))
	for i, start := range p.Parts {
		end := int32(len(p.Points))
		if i+1 < len(p.Parts) {
			end = p.Parts[i+1]
		}
		if start < 0 || start > end || int(end) > len(p.Points) {
			return nil, fmt.Errorf("bad part offsets %v for %d points", p.Parts, len(p.Points))
		}
		ring := make(Ring, 0, end-start)
		for _, pt := range p.Points[start:end] {
			ring = append(ring, Point{pt.X, pt.Y})
		}
		rings = append(rings, ring)
	}
	return rings, nil
}
