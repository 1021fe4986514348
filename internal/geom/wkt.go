package geom

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT parses one WKT geometry. POLYGON and MULTIPOLYGON yield polygon
// shapes; everything else an Other shape.
func ParseWKT(s string) ([]Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return appendGeometry(nil, g), nil
}

// LoadWKT reads a file holding one WKT geometry per line. Blank lines and
// lines starting with '#' are ignored.
func LoadWKT(path string) ([]Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var shapes []Shape
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		got, err := ParseWKT(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		shapes = append(shapes, got...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%s: wkt: no geometries", path)
	}
	return shapes, nil
}
