// Package config holds the settings of a goworld run: defaults, an optional
// YAML file, and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"goworld/internal/ascii"
	"goworld/internal/canvas"
	"goworld/internal/geom"
	"goworld/internal/project"
	"goworld/internal/render"
)

type Config struct {
	Map     MapConfig     `yaml:"map"`
	Sun     SunConfig     `yaml:"sun"`
	Markers MarkersConfig `yaml:"markers"`
	Output  OutputConfig  `yaml:"output"`
	// Debug names a file receiving the debug log.
	Debug string `yaml:"debug"`
}

type MapConfig struct {
	Path       string `yaml:"path"`
	Projection string `yaml:"projection"`
	Outline    bool   `yaml:"outline"`
	// TrustSingleRing treats counter-clockwise single rings as holes.
	TrustSingleRing bool   `yaml:"trust_single_ring"`
	Region          string `yaml:"region"`
	WorldBorder     bool   `yaml:"world_border"`
}

type SunConfig struct {
	Enabled bool `yaml:"enabled"`
	Markers bool `yaml:"markers"`
	// Dusk is civil, nautical, astronomical or a width in degrees.
	Dusk       string  `yaml:"dusk"`
	Bands      int     `yaml:"bands"`
	Step       float64 `yaml:"step"`
	BorderMode string  `yaml:"border_mode"`
	// Time is RFC 3339; empty means now.
	Time string `yaml:"time"`
}

type MarkersConfig struct {
	Files []string `yaml:"files"`
	GeoIP string   `yaml:"geoip"`
}

type OutputConfig struct {
	// Width and Height are in terminal cells; zero asks the terminal.
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Colors          int    `yaml:"colors"`
	Glyphs          string `yaml:"glyphs"`
	Title           string `yaml:"title"`
	TrailingNewline bool   `yaml:"trailing_newline"`
	// PNG, when set, writes an image instead of text.
	PNG string `yaml:"png"`
}

func Default() Config {
	return Config{
		Map: MapConfig{
			Projection: project.Equirectangular.String(),
		},
		Sun: SunConfig{
			Markers:    true,
			Dusk:       "civil",
			Bands:      canvas.NumShades,
			Step:       render.DefaultGridStep,
			BorderMode: render.BorderParametric.String(),
		},
		Output: OutputConfig{
			Colors:          256,
			Glyphs:          ascii.Blocks.String(),
			TrailingNewline: true,
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that is parsed later, so that a bad value
// fails before any file is read.
func (c Config) Validate() error {
	var errs []error
	if c.Map.Path == "" {
		errs = append(errs, errors.New("map: no path"))
	}
	if _, err := project.ParseKind(c.Map.Projection); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	if _, err := c.Region(); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	if _, err := ParseDusk(c.Sun.Dusk); err != nil {
		errs = append(errs, fmt.Errorf("sun: %w", err))
	}
	if c.Sun.Bands < 2 || c.Sun.Bands > canvas.NumShades {
		errs = append(errs, fmt.Errorf("sun: bands %d out of range [2, %d]", c.Sun.Bands, canvas.NumShades))
	}
	if !(c.Sun.Step > 0) || c.Sun.Step > 90 {
		errs = append(errs, fmt.Errorf("sun: step %v out of range (0, 90]", c.Sun.Step))
	}
	if _, err := render.ParseBorderMode(c.Sun.BorderMode); err != nil {
		errs = append(errs, fmt.Errorf("sun: %w", err))
	}
	if _, err := c.SunTime(); err != nil {
		errs = append(errs, fmt.Errorf("sun: %w", err))
	}
	if c.Output.Width < 0 || c.Output.Height < 0 {
		errs = append(errs, fmt.Errorf("output: negative size %dx%d", c.Output.Width, c.Output.Height))
	}
	if _, err := ascii.PaletteFor(c.Output.Colors); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if _, err := ascii.ParseGlyphs(c.Output.Glyphs); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	return errors.Join(errs...)
}

// Region returns the parsed map region, or an invalid box when unset.
func (c Config) Region() (geom.BBox, error) {
	if c.Map.Region == "" {
		return geom.BBox{}, nil
	}
	return geom.ParseBBox(c.Map.Region)
}

// SunTime returns the configured instant, the zero time meaning now.
func (c Config) SunTime() (time.Time, error) {
	if c.Sun.Time == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, c.Sun.Time)
}

// ParseDusk accepts civil, nautical or astronomical, matched on the first
// three letters like projection names, or a positive width in degrees.
func ParseDusk(s string) (float64, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		switch name[:3] {
		case "civ":
			return render.DuskCivil, nil
		case "nau":
			return render.DuskNautical, nil
		case "ast":
			return render.DuskAstronomical, nil
		}
	}
	v, err := strconv.ParseFloat(name, 64)
	if err != nil || !(v > 0) || v > 90 {
		return 0, fmt.Errorf("invalid dusk %q (want civil, nautical, astronomical or degrees in (0, 90])", s)
	}
	return v, nil
}

// RenderOptions converts the map and sun settings for a canvas of w x h
// cells. The config must be valid.
func (c Config) RenderOptions(w, h int) (render.Options, error) {
	kind, err := project.ParseKind(c.Map.Projection)
	if err != nil {
		return render.Options{}, err
	}
	region, err := c.Region()
	if err != nil {
		return render.Options{}, err
	}
	dusk, err := ParseDusk(c.Sun.Dusk)
	if err != nil {
		return render.Options{}, err
	}
	mode, err := render.ParseBorderMode(c.Sun.BorderMode)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width:                      w,
		Height:                     h,
		Projection:                 kind,
		Outline:                    c.Map.Outline,
		TrustSingleRingOrientation: c.Map.TrustSingleRing,
		Region:                     region,
		SunMarkers:                 c.Sun.Markers,
		BorderMode:                 mode,
		Bands:                      c.Sun.Bands,
		Dusk:                       dusk,
		GridStep:                   c.Sun.Step,
		WorldBorder:                c.Map.WorldBorder,
	}, nil
}

// ASCIIOptions converts the output settings for the text renderer.
func (c Config) ASCIIOptions() (ascii.Options, error) {
	p, err := ascii.PaletteFor(c.Output.Colors)
	if err != nil {
		return ascii.Options{}, err
	}
	g, err := ascii.ParseGlyphs(c.Output.Glyphs)
	if err != nil {
		return ascii.Options{}, err
	}
	return ascii.Options{
		Glyphs:          g,
		Palette:         p,
		Title:           c.Output.Title,
		TrailingNewline: c.Output.TrailingNewline,
	}, nil
}
