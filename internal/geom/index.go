package geom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50

	// rtreego rejects zero-length sides; points and axis-aligned
	// segments get this much extent.
	minExtent = 1e-9
)

type indexedShape struct {
	i    int
	rect *rtreego.Rect
}

func (s *indexedShape) Bounds() *rtreego.Rect {
	return s.rect
}

// Index answers bounding-box queries over a fixed slice of shapes.
type Index struct {
	tree *rtreego.Rtree
	// shapes without points are never in the tree and always match
	unbounded []int
}

func NewIndex(shapes []Shape) (*Index, error) {
	ix := &Index{tree: rtreego.NewTree(dimensions, minChildren, maxChildren)}
	for i, s := range shapes {
		if !s.Bounds.Valid() {
			ix.unbounded = append(ix.unbounded, i)
			continue
		}
		rect, err := toRect(s.Bounds)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		ix.tree.Insert(&indexedShape{i: i, rect: rect})
	}
	return ix, nil
}

// Search returns the indices of shapes whose bounds intersect box, ascending.
func (ix *Index) Search(box BBox) ([]int, error) {
	rect, err := toRect(box)
	if err != nil {
		return nil, fmt.Errorf("invalid bounding box: %w", err)
	}
	out := append([]int(nil), ix.unbounded...)
	for _, r := range ix.tree.SearchIntersect(rect) {
		if s, ok := r.(*indexedShape); ok {
			out = append(out, s.i)
		}
	}
	sort.Ints(out)
	return out, nil
}

func (ix *Index) Len() int {
	return ix.tree.Size() + len(ix.unbounded)
}

// Filter keeps the shapes intersecting region, in their original order.
func Filter(shapes []Shape, region BBox) ([]Shape, error) {
	ix, err := NewIndex(shapes)
	if err != nil {
		return nil, err
	}
	hits, err := ix.Search(region)
	if err != nil {
		return nil, err
	}
	out := make([]Shape, 0, len(hits))
	for _, i := range hits {
		out = append(out, shapes[i])
	}
	return out, nil
}

func toRect(b BBox) (*rtreego.Rect, error) {
	if !b.Valid() {
		return nil, errors.New("empty box")
	}
	return rtreego.NewRect(
		rtreego.Point{b.MinX, b.MinY},
		[]float64{b.MaxX - b.MinX + minExtent, b.MaxY - b.MinY + minExtent},
	)
}
