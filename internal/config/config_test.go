package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goworld/internal/ascii"
	"goworld/internal/project"
	"goworld/internal/render"
)

func TestDefaultIsValidWithMap(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate(), "no map path")

	cfg.Map.Path = "land.shp"
	require.NoError(t, cfg.Validate())

	opts, err := cfg.RenderOptions(160, 48)
	require.NoError(t, err)
	assert.Equal(t, project.Equirectangular, opts.Projection)
	assert.Equal(t, render.DuskCivil, opts.Dusk)
	assert.Equal(t, 8, opts.Bands)
	assert.True(t, opts.SunMarkers)
	assert.False(t, opts.Region.Valid())

	aopts, err := cfg.ASCIIOptions()
	require.NoError(t, err)
	assert.Same(t, ascii.Palette256, aopts.Palette)
	assert.Equal(t, ascii.Blocks, aopts.Glyphs)
	assert.True(t, aopts.TrailingNewline)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
map:
  path: world.geojson
  projection: hammer
  region: "-20,-10,40,60"
sun:
  enabled: true
  dusk: nautical
  bands: 2
output:
  colors: 0
  glyphs: ascii
  title: Hello
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "world.geojson", cfg.Map.Path)
	assert.True(t, cfg.Sun.Enabled)
	// untouched keys keep their defaults
	assert.True(t, cfg.Sun.Markers)
	assert.Equal(t, render.DefaultGridStep, cfg.Sun.Step)
	assert.True(t, cfg.Output.TrailingNewline)

	opts, err := cfg.RenderOptions(80, 24)
	require.NoError(t, err)
	assert.Equal(t, project.Hammer, opts.Projection)
	assert.Equal(t, render.DuskNautical, opts.Dusk)
	assert.Equal(t, 2, opts.Bands)
	assert.True(t, opts.Region.Valid())
	assert.Equal(t, -20.0, opts.Region.MinX)
	assert.Equal(t, 60.0, opts.Region.MaxY)

	aopts, err := cfg.ASCIIOptions()
	require.NoError(t, err)
	assert.Nil(t, aopts.Palette)
	assert.Equal(t, ascii.ASCII, aopts.Glyphs)
	assert.Equal(t, "Hello", aopts.Title)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("map:\n  colour: red\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  path: land.shp\n  world_border: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "land.shp", cfg.Map.Path)
	assert.True(t, cfg.Map.WorldBorder)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("map: [\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, bad)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"projection", func(c *Config) { c.Map.Projection = "mercator" }},
		{"region", func(c *Config) { c.Map.Region = "1,2,3" }},
		{"dusk", func(c *Config) { c.Sun.Dusk = "dawn" }},
		{"bands low", func(c *Config) { c.Sun.Bands = 1 }},
		{"bands high", func(c *Config) { c.Sun.Bands = 9 }},
		{"step", func(c *Config) { c.Sun.Step = 0 }},
		{"border mode", func(c *Config) { c.Sun.BorderMode = "spiral" }},
		{"time", func(c *Config) { c.Sun.Time = "noon" }},
		{"size", func(c *Config) { c.Output.Width = -1 }},
		{"colors", func(c *Config) { c.Output.Colors = 16 }},
		{"glyphs", func(c *Config) { c.Output.Glyphs = "emoji" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Map.Path = "land.shp"
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseDusk(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
	}{
		{"civil", 6},
		{"civ", 6},
		{"nau", 12},
		{"Nautical", 12},
		{"astro", 18},
		{"9", 9},
		{" 4.5 ", 4.5},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDusk(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	for _, bad := range []string{"", "ci", "0", "-3", "91", "NaN", "dawn"} {
		_, err := ParseDusk(bad)
		assert.Error(t, err, bad)
	}
}

func TestSunTime(t *testing.T) {
	cfg := Default()
	ts, err := cfg.SunTime()
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	cfg.Sun.Time = "2024-03-20T12:00:00Z"
	ts, err = cfg.SunTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), ts.UTC())
}
