package main

import (
	"github.com/spf13/pflag"

	"goworld/internal/config"
)

// binding copies one flag's value into a config when the flag was given
// on the command line.
type binding struct {
	name  string
	apply func(dst *config.Config, f *flagValues)
}

// flagValues receives the parsed flags before they are merged into the
// config.
type flagValues struct {
	width, height   int
	mapPath         string
	locations       []string
	sun             bool
	noSunMarkers    bool
	noTrailing      bool
	projection      string
	worldBorder     bool
	colors          int
	outline         bool
	dusk            string
	png             string
	title           string
	bands           int
	step            float64
	borderMode      string
	glyphs          string
	geoip           string
	region          string
	at              string
	trustSingleRing bool
	debug           string
}

var bindings = []binding{
	{"width", func(c *config.Config, f *flagValues) { c.Output.Width = f.width }},
	{"height", func(c *config.Config, f *flagValues) { c.Output.Height = f.height }},
	{"map", func(c *config.Config, f *flagValues) { c.Map.Path = f.mapPath }},
	{"locations", func(c *config.Config, f *flagValues) { c.Markers.Files = f.locations }},
	{"sun", func(c *config.Config, f *flagValues) { c.Sun.Enabled = f.sun }},
	{"no-sun-markers", func(c *config.Config, f *flagValues) { c.Sun.Markers = !f.noSunMarkers }},
	{"no-trailing-newline", func(c *config.Config, f *flagValues) { c.Output.TrailingNewline = !f.noTrailing }},
	{"projection", func(c *config.Config, f *flagValues) { c.Map.Projection = f.projection }},
	{"border", func(c *config.Config, f *flagValues) { c.Map.WorldBorder = f.worldBorder }},
	{"colors", func(c *config.Config, f *flagValues) { c.Output.Colors = f.colors }},
	{"outline", func(c *config.Config, f *flagValues) { c.Map.Outline = f.outline }},
	{"dusk", func(c *config.Config, f *flagValues) { c.Sun.Dusk = f.dusk }},
	{"write-png", func(c *config.Config, f *flagValues) { c.Output.PNG = f.png }},
	{"title", func(c *config.Config, f *flagValues) { c.Output.Title = f.title }},
	{"bands", func(c *config.Config, f *flagValues) { c.Sun.Bands = f.bands }},
	{"step", func(c *config.Config, f *flagValues) { c.Sun.Step = f.step }},
	{"border-mode", func(c *config.Config, f *flagValues) { c.Sun.BorderMode = f.borderMode }},
	{"glyphs", func(c *config.Config, f *flagValues) { c.Output.Glyphs = f.glyphs }},
	{"geoip", func(c *config.Config, f *flagValues) { c.Markers.GeoIP = f.geoip }},
	{"region", func(c *config.Config, f *flagValues) { c.Map.Region = f.region }},
	{"time", func(c *config.Config, f *flagValues) { c.Sun.Time = f.at }},
	{"trust-single-ring", func(c *config.Config, f *flagValues) { c.Map.TrustSingleRing = f.trustSingleRing }},
	{"debug", func(c *config.Config, f *flagValues) { c.Debug = f.debug }},
}

func registerFlags(fs *pflag.FlagSet, f *flagValues) {
	d := config.Default()

	fs.IntVarP(&f.width, "width", "w", d.Output.Width, "output width in columns (default: terminal width, or 80)")
	fs.IntVarP(&f.height, "height", "h", d.Output.Height, "output height in rows (default: terminal height, or 24)")
	fs.StringVarP(&f.mapPath, "map", "m", d.Map.Path, "map file (.shp, .geojson, .json, .wkt)")
	fs.StringArrayVarP(&f.locations, "locations", "l", nil, "marker file (text, .csv, .kml, .gpx); repeatable")
	fs.BoolVarP(&f.sun, "sun", "s", d.Sun.Enabled, "shade day and night")
	fs.BoolVarP(&f.noSunMarkers, "no-sun-markers", "S", !d.Sun.Markers, "do not mark the sun and the sun border")
	fs.BoolVarP(&f.noTrailing, "no-trailing-newline", "T", !d.Output.TrailingNewline, "no newline after the last row")
	fs.StringVarP(&f.projection, "projection", "p", d.Map.Projection, "equirectangular, kavrayskiy, lambert or hammer")
	fs.BoolVarP(&f.worldBorder, "border", "b", d.Map.WorldBorder, "draw the outline of the globe")
	fs.IntVarP(&f.colors, "colors", "c", d.Output.Colors, "0, 8 or 256 colors")
	fs.BoolVarP(&f.outline, "outline", "o", d.Map.Outline, "stroke land outlines instead of filling")
	fs.StringVarP(&f.dusk, "dusk", "d", d.Sun.Dusk, "twilight: civil, nautical, astronomical or degrees")
	fs.StringVarP(&f.png, "write-png", "W", d.Output.PNG, "write a PNG image to this file instead of text")
	fs.StringVarP(&f.title, "title", "t", d.Output.Title, "title shown in a box at the top")

	fs.IntVar(&f.bands, "bands", d.Sun.Bands, "number of day/night shade bands (2-8)")
	fs.Float64Var(&f.step, "step", d.Sun.Step, "shading grid step in degrees")
	fs.StringVar(&f.borderMode, "border-mode", d.Sun.BorderMode, "sun border tracing: parametric or circle")
	fs.StringVar(&f.glyphs, "glyphs", d.Output.Glyphs, "blocks, ascii or braille")
	fs.StringVar(&f.geoip, "geoip", d.Markers.GeoIP, "MaxMind city database for IP address markers")
	fs.StringVar(&f.region, "region", d.Map.Region, "only draw shapes touching minlon,minlat,maxlon,maxlat")
	fs.StringVar(&f.at, "time", d.Sun.Time, "sun position at this RFC 3339 time instead of now")
	fs.BoolVar(&f.trustSingleRing, "trust-single-ring", d.Map.TrustSingleRing, "treat counter-clockwise single rings as holes")
	fs.StringVar(&f.debug, "debug", d.Debug, "append a debug log to this file")
}

// applyFlags overrides cfg with every flag the user set.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, f *flagValues) {
	for _, b := range bindings {
		if fs.Changed(b.name) {
			b.apply(cfg, f)
		}
	}
}
