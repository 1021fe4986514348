package geom

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a reader from the file extension: .shp, .geojson/.json or .wkt.
func Load(path string) ([]Shape, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return LoadShapefile(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".wkt":
		return LoadWKT(path)
	}
	return nil, fmt.Errorf("%s: unsupported map format", path)
}
