package canvas

import (
	"math"
	"testing"

	plane "github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	require.NoError(t, err)
	return c
}

func TestNewSize(t *testing.T) {
	c := mustNew(t, 4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, 12, c.Count(Empty))

	for _, sz := range [][2]int{{0, 3}, {3, 0}, {-1, 5}, {MaxSide + 1, 2}} {
		_, err := New(sz[0], sz[1])
		assert.ErrorIs(t, err, ErrSize, "%v", sz)
	}
}

func TestSetAtBounds(t *testing.T) {
	c := mustNew(t, 3, 3)
	c.Set(-1, 0, Land)
	c.Set(0, 3, Land)
	c.Set(3, 0, Land)
	assert.Equal(t, 9, c.Count(Empty))

	c.Set(1, 2, Highlight)
	assert.Equal(t, Highlight, c.At(1, 2))
	assert.Equal(t, Empty, c.At(5, 5))
	assert.Equal(t, Empty, c.At(-1, -1))
}

func TestLineCellCount(t *testing.T) {
	testCases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"shallow", 0, 0, 5, 2},
		{"steep", 0, 0, 3, 7},
		{"diagonal", 0, 4, 4, 0},
		{"horizontal", 1, 1, 7, 1},
		{"vertical", 2, 7, 2, 0},
		{"single", 3, 3, 3, 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustNew(t, 10, 10)
			c.Line(tc.x1, tc.y1, tc.x2, tc.y2, Land)
			want := max(abs(tc.x2-tc.x1), abs(tc.y2-tc.y1)) + 1
			assert.Equal(t, want, c.Count(Land))
			assert.Equal(t, Land, c.At(tc.x1, tc.y1))
			assert.Equal(t, Land, c.At(tc.x2, tc.y2))
		})
	}
}

func TestLineSymmetric(t *testing.T) {
	ends := [][4]int{{0, 0, 9, 4}, {1, 8, 7, 2}, {0, 0, 3, 7}, {9, 9, 0, 5}, {2, 0, 5, 9}}
	for _, e := range ends {
		a := mustNew(t, 10, 10)
		b := mustNew(t, 10, 10)
		a.Line(e[0], e[1], e[2], e[3], Land)
		b.Line(e[2], e[3], e[0], e[1], Land)
		assert.Equal(t, a.cells, b.cells, "%v", e)
	}
}

func TestLineClipsOutside(t *testing.T) {
	c := mustNew(t, 5, 5)
	c.Line(-10, 2, 20, 2, Land)
	assert.Equal(t, 5, c.Count(Land))
}

func TestLineFSkipsNaN(t *testing.T) {
	c := mustNew(t, 5, 5)
	c.LineF(plane.Coord{X: math.NaN(), Y: 1}, plane.Coord{X: 3, Y: 3}, Land)
	c.LineF(plane.Coord{X: 1, Y: 1}, plane.Coord{X: math.Inf(1), Y: 3}, Land)
	assert.Equal(t, 0, c.Count(Land))

	c.LineF(plane.Coord{X: 0.9, Y: 0.2}, plane.Coord{X: 3.7, Y: 0.99}, Land)
	assert.Equal(t, 4, c.Count(Land))
}

func TestFillPolygonRect(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.FillPolygon([]plane.Coord{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 5}, {X: 2, Y: 5}}, Land)
	assert.Equal(t, 12, c.Count(Land))
	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			assert.Equal(t, Land, c.At(x, y), "x=%d y=%d", x, y)
		}
	}
	assert.Equal(t, Empty, c.At(6, 2))
	assert.Equal(t, Empty, c.At(2, 5))
}

func TestFillPolygonHole(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.FillPolygon([]plane.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, Land)
	c.FillPolygon([]plane.Coord{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}, Empty)
	assert.Equal(t, 100-16, c.Count(Land))
	assert.Equal(t, Empty, c.At(5, 5))
	assert.Equal(t, Land, c.At(2, 5))
}

func TestFillPolygonClipped(t *testing.T) {
	c := mustNew(t, 4, 4)
	c.FillPolygon([]plane.Coord{{X: -50, Y: -50}, {X: 50, Y: -50}, {X: 50, Y: 50}, {X: -50, Y: 50}}, Land)
	assert.Equal(t, 16, c.Count(Land))

	c = mustNew(t, 4, 4)
	c.FillPolygon([]plane.Coord{{X: 0, Y: 0}, {X: 3, Y: 3}}, Land)
	assert.Equal(t, 0, c.Count(Land))
}

func TestStrokePolygon(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.StrokePolygon([]plane.Coord{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 4}, {X: 1, Y: 4}}, WorldBorder)
	// 5 + 5 columns, plus 2 + 2 rows between the corners.
	assert.Equal(t, 14, c.Count(WorldBorder))
	assert.Equal(t, Empty, c.At(3, 2))
}

func TestMerge(t *testing.T) {
	c := mustNew(t, 4, 1)
	c.Set(0, 0, Land)
	c.Set(1, 0, Empty)
	c.Set(2, 0, Highlight)
	c.Set(3, 0, Shade(7))

	o := mustNew(t, 4, 1)
	for x := 0; x < 4; x++ {
		o.Set(x, 0, Shade(2))
	}
	require.NoError(t, c.Merge(o))
	assert.Equal(t, Shade(2), c.At(0, 0))
	assert.Equal(t, Empty, c.At(1, 0))
	assert.Equal(t, Highlight, c.At(2, 0))
	assert.Equal(t, Shade(2), c.At(3, 0))

	// Non-shade overlay cells are ignored.
	o.Set(0, 0, Land)
	o.Set(3, 0, Empty)
	require.NoError(t, c.Merge(o))
	assert.Equal(t, Shade(2), c.At(0, 0))
	assert.Equal(t, Shade(2), c.At(3, 0))

	assert.ErrorIs(t, c.Merge(mustNew(t, 2, 2)), ErrSize)
}

func TestMergeKeepsMarkers(t *testing.T) {
	c := mustNew(t, 5, 1)
	protected := []Class{Highlight, Track(1), Sun, SunBorder, WorldBorder}
	for x, cl := range protected {
		c.Set(x, 0, cl)
	}
	o := mustNew(t, 5, 1)
	o.Line(0, 0, 4, 0, Shade(0))
	require.NoError(t, c.Merge(o))
	for x, cl := range protected {
		assert.Equal(t, cl, c.At(x, 0))
	}
}

func TestClasses(t *testing.T) {
	assert.Equal(t, KindTrack, Track(0).Kind())
	assert.Equal(t, Track(0), Track(3))
	assert.Equal(t, Track(2), Track(-1))
	assert.Equal(t, 1, Track(4).Index())

	assert.Equal(t, KindShade, Shade(0).Kind())
	assert.Equal(t, Shade(0), Shade(-3))
	assert.Equal(t, Shade(NumShades-1), Shade(99))
	assert.Equal(t, 5, Shade(5).Index())

	assert.Equal(t, KindLand, Land.Kind())
	assert.Equal(t, KindHighlight, Highlight.Kind())
	assert.Equal(t, "shade3", Shade(3).String())
	assert.Equal(t, "track0", Track(0).String())
	assert.Equal(t, "empty", Empty.String())
}
