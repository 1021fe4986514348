package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads a GeoJSON file. See ParseGeoJSON.
func LoadGeoJSON(path string) ([]Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	shapes, err := ParseGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return shapes, nil
}

// ParseGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
// Each Polygon becomes one shape, each member of a MultiPolygon too; every
// other geometry becomes an Other shape.
func ParseGeoJSON(data []byte) ([]Shape, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var shapes []Shape
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			shapes = appendGeometry(shapes, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		shapes = appendGeometry(shapes, f.Geometry)
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		shapes = appendGeometry(shapes, g.Geometry())
	}
	if len(shapes) == 0 {
		return nil, errors.New("no geometries found")
	}
	return shapes, nil
}

func appendGeometry(shapes []Shape, g orb.Geometry) []Shape {
	switch v := g.(type) {
	case nil:
		return shapes
	case orb.Polygon:
		return append(shapes, fromOrbPolygon(v))
	case orb.MultiPolygon:
		for _, p := range v {
			shapes = append(shapes, fromOrbPolygon(p))
		}
		return shapes
	case orb.Collection:
		for _, sub := range v {
			shapes = appendGeometry(shapes, sub)
		}
		return shapes
	default:
		b := g.Bound()
		return append(shapes, Shape{Kind: Other, Bounds: NewBBox(b.Min[0], b.Min[1], b.Max[0], b.Max[1])})
	}
}

// fromOrbPolygon converts p and winds its rings the shapefile way: outer
// ring clockwise, holes counter-clockwise. GeoJSON and WKT mark the outer
// ring by position instead of winding.
func fromOrbPolygon(p orb.Polygon) Shape {
	rings := make([]Ring, len(p))
	for i, r := range p {
		ring := make(Ring, len(r))
		for j, pt := range r {
			ring[j] = Point(pt)
		}
		area := SignedArea(ring)
		if (i == 0 && area > 0) || (i > 0 && area < 0) {
			slices.Reverse(ring)
		}
		rings[i] = ring
	}
	return NewPolygon(rings...)
}
