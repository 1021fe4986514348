// Package render paints land, day/night shading, the sun and markers into
// a canvas of paint classes.
package render

import (
	"fmt"
	"io"
	"log"
	"time"

	plane "github.com/jbeda/geom"

	"goworld/internal/canvas"
	"goworld/internal/geom"
	"goworld/internal/markers"
	"goworld/internal/project"
	"goworld/internal/sun"
)

// Options fixes everything a render needs besides its inputs. A zero
// Options is completed by Defaults.
type Options struct {
	Width, Height int
	Projection    project.Kind

	// Outline strokes land rings instead of filling them.
	Outline bool
	// TrustSingleRingOrientation treats counter-clockwise rings as holes
	// even in shapes with only one ring.
	TrustSingleRingOrientation bool
	// Region, when valid, skips shapes whose bounds miss it.
	Region geom.BBox

	Sun sun.State
	// SunMarkers draws the sun point and the sun border when Sun is active.
	SunMarkers bool
	BorderMode BorderMode
	// Bands is the number of distinct shade bands, 2 to canvas.NumShades.
	Bands int
	// Dusk is the twilight width in degrees.
	Dusk float64
	// GridStep is the shading patch size in degrees.
	GridStep float64

	WorldBorder bool
}

const (
	DuskCivil        = 6.0
	DuskNautical     = 12.0
	DuskAstronomical = 18.0

	DefaultGridStep = 1.0
)

// Defaults fills unset shading parameters.
func (o Options) Defaults() Options {
	if o.Bands == 0 {
		o.Bands = canvas.NumShades
	}
	if o.Dusk == 0 {
		o.Dusk = DuskCivil
	}
	if o.GridStep == 0 {
		o.GridStep = DefaultGridStep
	}
	return o
}

func (o Options) validate() error {
	if o.Bands < 2 || o.Bands > canvas.NumShades {
		return fmt.Errorf("bands %d out of range [2, %d]", o.Bands, canvas.NumShades)
	}
	if !(o.Dusk > 0) {
		return fmt.Errorf("dusk width %v must be positive", o.Dusk)
	}
	if !(o.GridStep > 0) || o.GridStep > 90 {
		return fmt.Errorf("grid step %v out of range (0, 90]", o.GridStep)
	}
	return nil
}

// Context carries one render: its options, its canvas and a logger.
type Context struct {
	opts   Options
	canvas *canvas.Canvas
	log    *log.Logger
}

// New allocates the canvas. A nil logger discards.
func New(opts Options, logger *log.Logger) (*Context, error) {
	opts = opts.Defaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	c, err := canvas.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Context{opts: opts, canvas: c, log: logger}, nil
}

func (c *Context) Canvas() *canvas.Canvas { return c.canvas }
func (c *Context) Options() Options       { return c.opts }

// project maps a geographic point onto the canvas.
func (c *Context) project(p geom.Point) plane.Coord {
	x, y := c.opts.Projection.Project(p[0], p[1], c.canvas.Width(), c.canvas.Height())
	return plane.Coord{X: x, Y: y}
}

// Render runs the whole pipeline: land, shading and sun border, world
// border, markers, sun point.
func Render(opts Options, shapes []geom.Shape, marks *markers.Set, logger *log.Logger) (*canvas.Canvas, error) {
	c, err := New(opts, logger)
	if err != nil {
		return nil, err
	}
	if err := c.stage("map", func() error { return c.DrawShapes(shapes) }); err != nil {
		return nil, err
	}
	if c.opts.Sun.Active {
		if err := c.stage("shade", c.Shade); err != nil {
			return nil, err
		}
		if c.opts.SunMarkers {
			c.DrawSunBorder()
		}
	}
	if c.opts.WorldBorder {
		c.DrawWorldBorder()
	}
	if marks != nil {
		c.DrawMarkers(marks)
	}
	if c.opts.Sun.Active && c.opts.SunMarkers {
		c.DrawSun()
	}
	return c.canvas, nil
}

func (c *Context) stage(name string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return err
	}
	c.log.Printf("render: %s took %v", name, time.Since(start))
	return nil
}
