package render

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	plane "github.com/jbeda/geom"

	"goworld/internal/canvas"
	"goworld/internal/geom"
)

// BorderMode selects how the sun border is traced.
type BorderMode int

const (
	// BorderParametric solves the terminator latitude per longitude, with
	// a separate parametrization near the equinoxes.
	BorderParametric BorderMode = iota
	// BorderCircle walks a 90 degree small circle around the sub-solar point.
	BorderCircle
)

func (m BorderMode) String() string {
	if m == BorderCircle {
		return "circle"
	}
	return "parametric"
}

func ParseBorderMode(s string) (BorderMode, error) {
	switch s {
	case "parametric", "":
		return BorderParametric, nil
	case "circle":
		return BorderCircle, nil
	}
	return 0, fmt.Errorf("unknown sun border mode %q", s)
}

const (
	// The parametric solution degenerates when the sun colatitude is
	// within this open interval around 90 degrees.
	equinoxColatMin = 86.0
	equinoxColatMax = 94.0
	// equinoxSmoothing sets how strongly equinox samples crowd towards
	// the turning points of the curve.
	equinoxSmoothing = 3.0
	equinoxSteps     = 360
)

// BandIndex maps the angular distance zeta (degrees) from the sub-solar
// point to a band in [0, n): n-1 is full day, 0 deepest night. The bands
// between cover dusk degrees past the horizon.
func BandIndex(zeta, dusk float64, n int) int {
	i := (n - 1) - int(math.Round((zeta-90)/dusk*float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// shadeClass spreads n bands over the full shade palette.
func shadeClass(band, n int) canvas.Class {
	return canvas.Shade(band * (canvas.NumShades - 1) / (n - 1))
}

// Zeta is the great-circle distance in degrees between two points.
func Zeta(a, b geom.Point) float64 {
	return s2.LatLngFromDegrees(a[1], a[0]).Distance(s2.LatLngFromDegrees(b[1], b[0])).Degrees()
}

// Shade paints the day/night bands. Patches of GridStep degrees are
// classified by the distance of their center from the sub-solar point,
// filled into an overlay and merged onto the land.
func (c *Context) Shade() error {
	overlay, err := canvas.New(c.canvas.Width(), c.canvas.Height())
	if err != nil {
		return err
	}
	step := c.opts.GridStep
	sunPos := geom.Point{c.opts.Sun.Lon, c.opts.Sun.Lat}
	nLon := int(math.Ceil(360 / step))
	nLat := int(math.Ceil(180 / step))

	quad := make([]plane.Coord, 4)
	for iy := 0; iy < nLat; iy++ {
		lat1 := -90 + float64(iy)*step
		lat2 := math.Min(lat1+step, 90)
		for ix := 0; ix < nLon; ix++ {
			lon1 := -180 + float64(ix)*step
			lon2 := math.Min(lon1+step, 180)

			zeta := Zeta(geom.Point{(lon1 + lon2) / 2, (lat1 + lat2) / 2}, sunPos)
			class := shadeClass(BandIndex(zeta, c.opts.Dusk, c.opts.Bands), c.opts.Bands)

			quad[0] = c.project(geom.Point{lon1, lat1})
			quad[1] = c.project(geom.Point{lon2, lat1})
			quad[2] = c.project(geom.Point{lon2, lat2})
			quad[3] = c.project(geom.Point{lon1, lat2})
			overlay.FillPolygon(quad, class)
		}
	}
	c.log.Printf("render: shaded %dx%d patches of %v degrees, %d bands, dusk %v", nLon, nLat, step, c.opts.Bands, c.opts.Dusk)
	return c.canvas.Merge(overlay)
}

// DrawSunBorder traces the day/night boundary with the SunBorder class.
func (c *Context) DrawSunBorder() {
	var paths [][]geom.Point
	if c.opts.BorderMode == BorderCircle {
		ring := CirclePoints(geom.Point{c.opts.Sun.Lon, c.opts.Sun.Lat}, 90, circleSteps)
		paths = [][]geom.Point{append(ring, ring[0])}
	} else {
		paths = SunBorder(c.opts.Sun.Lon, c.opts.Sun.Lat)
	}
	for _, p := range paths {
		c.drawPath(p, canvas.SunBorder, true)
	}
}

// SunBorder returns the day/night boundary for a sub-solar point as
// polylines. Points may be NaN where the curve has no solution; callers
// skip segments touching them.
func SunBorder(sunLon, sunLat float64) [][]geom.Point {
	phiN := (sunLat - 90) * deg2rad
	lambdaN := sunLon

	colat := 90 - sunLat
	if colat > equinoxColatMin && colat < equinoxColatMax {
		return equinoxBorder(phiN, lambdaN, 90-math.Abs(sunLat))
	}

	line := make([]geom.Point, 0, 361)
	for lambda := -180; lambda <= 180; lambda++ {
		l := float64(lambda)
		phi := math.Atan(math.Tan(phiN)*math.Cos((l-lambdaN)*deg2rad)) * rad2deg
		line = append(line, geom.Point{l, phi})
	}
	return [][]geom.Point{line}
}

// equinoxBorder samples latitude instead of longitude. The atan warp puts
// more samples near +-phiMax, where longitude changes fastest.
func equinoxBorder(phiN, lambdaN, phiMax float64) [][]geom.Point {
	east := make([]geom.Point, 0, equinoxSteps+1)
	west := make([]geom.Point, 0, equinoxSteps+1)
	norm := math.Atan(equinoxSmoothing)
	for i := 0; i <= equinoxSteps; i++ {
		t := -1 + 2*float64(i)/equinoxSteps
		phi := phiMax * math.Atan(equinoxSmoothing*t) / norm
		d := math.Acos(math.Tan(phi*deg2rad)/math.Tan(phiN)) * rad2deg
		east = append(east, geom.Point{normalizeLon(lambdaN + d), phi})
		west = append(west, geom.Point{normalizeLon(lambdaN - d), phi})
	}
	return [][]geom.Point{east, west}
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// normalizeLon wraps lon into [-180, 180). NaN stays NaN.
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
