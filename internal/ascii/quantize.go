// Package ascii turns a canvas of paint classes into terminal text: every
// 2x2 block of cells becomes one colored character.
package ascii

import (
	"bufio"
	"io"
	"strings"

	"goworld/internal/canvas"
)

// rule is one entry of the block precedence list. A block containing a
// class of kind takes that class's color and, when char is set, shows
// char instead of the mask glyph.
type rule struct {
	kind canvas.Kind
	char rune
}

// precedence is ordered highest first. Blocks matching none of the rules
// show the uncolored mask glyph.
var precedence = []rule{
	{canvas.KindHighlight, 'X'},
	{canvas.KindTrack, 'O'},
	{canvas.KindSun, 'S'},
	{canvas.KindSunBorder, ':'},
	{canvas.KindShade, 0},
	{canvas.KindWorldBorder, 0},
}

// Cell is one output character and the class that colors it.
type Cell struct {
	Rune  rune
	Class canvas.Class
	Title bool
}

// Frame is the quantized character grid.
type Frame struct {
	cols, rows int
	cells      []Cell
}

func (f *Frame) Cols() int { return f.cols }
func (f *Frame) Rows() int { return f.rows }

func (f *Frame) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= f.cols || row >= f.rows {
		return Cell{Rune: ' '}
	}
	return f.cells[row*f.cols+col]
}

func (f *Frame) set(col, row int, cell Cell) {
	if col < 0 || row < 0 || col >= f.cols || row >= f.rows {
		return
	}
	f.cells[row*f.cols+col] = cell
}

// Quantize reduces c to a frame of Width/2 x Height/2 characters. A trailing
// odd row or column is dropped.
func Quantize(c *canvas.Canvas, g Glyphs) *Frame {
	f := &Frame{cols: c.Width() / 2, rows: c.Height() / 2}
	f.cells = make([]Cell, f.cols*f.rows)
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			x, y := col*2, row*2
			block := [4]canvas.Class{c.At(x, y), c.At(x+1, y), c.At(x, y+1), c.At(x+1, y+1)}
			f.cells[row*f.cols+col] = quantizeBlock(block, g)
		}
	}
	return f
}

// quantizeBlock picks the glyph and color class for cells in upper-left,
// upper-right, lower-left, lower-right order.
func quantizeBlock(block [4]canvas.Class, g Glyphs) Cell {
	var mask uint8
	for i, cl := range block {
		if cl != canvas.Empty {
			mask |= 1 << i
		}
	}
	for _, r := range precedence {
		cl, ok := lowest(block, r.kind)
		if !ok {
			continue
		}
		ch := r.char
		if ch == 0 {
			ch = g.Rune(mask)
		}
		return Cell{Rune: ch, Class: cl}
	}
	return Cell{Rune: g.Rune(mask)}
}

// lowest returns the smallest class of kind in block, so the first palette
// entry wins when several tracks or shades share a block.
func lowest(block [4]canvas.Class, kind canvas.Kind) (canvas.Class, bool) {
	var (
		best  canvas.Class
		found bool
	)
	for _, cl := range block {
		if cl.Kind() != kind {
			continue
		}
		if !found || cl < best {
			best, found = cl, true
		}
	}
	return best, found
}

// Write emits the frame row by row. A nil palette writes no escape
// sequences. The last row is followed by a newline only when trailing is
// set.
func (f *Frame) Write(w io.Writer, p *Palette, trailing bool) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			cell := f.cells[row*f.cols+col]
			seq := p.Seq(cell.Class)
			if cell.Title && p != nil {
				seq = p.Title
			}
			if seq != "" {
				bw.WriteString(seq)
				bw.WriteRune(cell.Rune)
				bw.WriteString(p.Reset)
				continue
			}
			bw.WriteRune(cell.Rune)
		}
		if trailing || row+1 < f.rows {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// String renders the frame without colors and without a trailing newline.
func (f *Frame) String() string {
	var sb strings.Builder
	f.Write(&sb, nil, false)
	return sb.String()
}

// Options controls Render.
type Options struct {
	Glyphs Glyphs
	// Palette is nil for uncolored output.
	Palette         *Palette
	Title           string
	TrailingNewline bool
}

// Render quantizes c, overlays the title banner and writes the result.
func Render(w io.Writer, c *canvas.Canvas, opts Options) error {
	f := Quantize(c, opts.Glyphs)
	if opts.Title != "" {
		f.Banner(opts.Title)
	}
	return f.Write(w, opts.Palette, opts.TrailingNewline)
}
