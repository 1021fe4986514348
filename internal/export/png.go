// Package export writes a canvas as a PNG image, one fixed color per paint
// class.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"goworld/internal/canvas"
)

var (
	black   = colorful.Color{R: 0, G: 0, B: 0}
	land    = colorful.Color{R: 200.0 / 255, G: 200.0 / 255, B: 200.0 / 255}
	white   = colorful.Color{R: 1, G: 1, B: 1}
	red     = colorful.Color{R: 1, G: 0, B: 0}
	yellow  = colorful.Color{R: 1, G: 1, B: 0}
	blue    = colorful.Color{R: 0, G: 0, B: 1}
	green   = colorful.Color{R: 0, G: 1, B: 0}
	magenta = colorful.Color{R: 1, G: 0, B: 1}
)

// Palette returns the image color of every paint class, indexed by class.
// Shades run from blue (night) to green (day), tracks from magenta to red.
func Palette() color.Palette {
	p := make(color.Palette, canvas.NumClasses)
	for i := range p {
		p[i] = rgba(classColor(canvas.Class(i)))
	}
	return p
}

func classColor(c canvas.Class) colorful.Color {
	switch c.Kind() {
	case canvas.KindLand:
		return land
	case canvas.KindWorldBorder:
		return white
	case canvas.KindHighlight:
		return red
	case canvas.KindSun, canvas.KindSunBorder:
		return yellow
	case canvas.KindShade:
		return blue.BlendRgb(green, float64(c.Index())/(canvas.NumShades-1))
	case canvas.KindTrack:
		return magenta.BlendRgb(red, float64(c.Index())/(canvas.NumTracks-1))
	}
	return black
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Image converts c into a paletted image of the same size.
func Image(c *canvas.Canvas) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width(), c.Height()), Palette())
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			img.SetColorIndex(x, y, uint8(c.At(x, y)))
		}
	}
	return img
}

func WritePNG(w io.Writer, c *canvas.Canvas) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, Image(c))
}

// SavePNG writes c to path, replacing any existing file.
func SavePNG(path string, c *canvas.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := WritePNG(f, c); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
