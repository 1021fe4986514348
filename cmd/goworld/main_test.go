package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goworld/internal/config"
)

const squareGeoJSON = `{"type":"Polygon","coordinates":[[[-10,-10],[10,-10],[10,10],[-10,10],[-10,-10]]]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	var f flagValues
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(fs, &f)
	require.NoError(t, fs.Parse([]string{"-s", "-S", "-c", "8", "-d", "ast", "-l", "a.txt", "-l", "b.gpx"}))

	cfg := config.Default()
	cfg.Map.Path = "from-file.shp"
	cfg.Output.Glyphs = "ascii"
	applyFlags(&cfg, fs, &f)

	assert.True(t, cfg.Sun.Enabled)
	assert.False(t, cfg.Sun.Markers)
	assert.Equal(t, 8, cfg.Output.Colors)
	assert.Equal(t, "ast", cfg.Sun.Dusk)
	assert.Equal(t, []string{"a.txt", "b.gpx"}, cfg.Markers.Files)
	// values from the file survive unless the flag is given
	assert.Equal(t, "from-file.shp", cfg.Map.Path)
	assert.Equal(t, "ascii", cfg.Output.Glyphs)
	assert.True(t, cfg.Output.TrailingNewline)
}

func TestBindingsMatchFlags(t *testing.T) {
	var f flagValues
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(fs, &f)
	for _, b := range bindings {
		assert.NotNil(t, fs.Lookup(b.name), b.name)
	}
}

func TestRunText(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Path = writeFile(t, "square.geojson", squareGeoJSON)
	cfg.Output.Width, cfg.Output.Height = 80, 24
	cfg.Output.Colors = 0

	var buf bytes.Buffer
	require.NoError(t, run(&buf, cfg, nil))

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat(" ", 38)+"████"+strings.Repeat(" ", 38), lines[11])
	assert.Equal(t, strings.Repeat(" ", 38)+"▄▄▄▄"+strings.Repeat(" ", 38), lines[10])
	assert.NotContains(t, out, "\033[")
}

func TestRunWithSunAndMarkers(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Path = writeFile(t, "square.geojson", squareGeoJSON)
	cfg.Markers.Files = []string{writeFile(t, "marks.txt", "points\n5 -5\n.\n")}
	cfg.Sun.Enabled = true
	cfg.Sun.Time = "2024-03-20T12:00:00Z"
	cfg.Output.Width, cfg.Output.Height = 80, 24
	cfg.Output.Title = "goworld"

	var buf bytes.Buffer
	require.NoError(t, run(&buf, cfg, nil))
	out := buf.String()
	assert.Contains(t, out, "\033[38;5;196mX\033[0m")
	assert.Contains(t, out, "\033[1mg\033[0m")
	assert.Contains(t, out, ":")
}

func TestRunPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Path = writeFile(t, "square.geojson", squareGeoJSON)
	cfg.Output.Width, cfg.Output.Height = 90, 45
	cfg.Output.PNG = filepath.Join(t.TempDir(), "map.png")

	var buf bytes.Buffer
	require.NoError(t, run(&buf, cfg, nil))
	assert.Zero(t, buf.Len())

	f, err := os.Open(cfg.Output.PNG)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 90, img.Bounds().Dx())
	assert.Equal(t, 45, img.Bounds().Dy())
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	assert.Error(t, run(&bytes.Buffer{}, cfg, nil), "no map")

	cfg.Map.Path = filepath.Join(t.TempDir(), "missing.shp")
	assert.Error(t, run(&bytes.Buffer{}, cfg, nil))

	cfg.Map.Path = writeFile(t, "square.geojson", squareGeoJSON)
	cfg.Markers.Files = []string{filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, run(&bytes.Buffer{}, cfg, nil))
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-m", writeFile(t, "square.geojson", squareGeoJSON), "-w", "80", "-h", "24", "-c", "0", "-T", "--glyphs", "ascii"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.False(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat(" ", 38)+"oooo"+strings.Repeat(" ", 38), lines[11])
	assert.Equal(t, strings.Repeat(" ", 38)+"____"+strings.Repeat(" ", 38), lines[10])
}

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "-h, --height")
	assert.Contains(t, buf.String(), "    --help")
}

func TestRootCommandConfigFile(t *testing.T) {
	mapPath := writeFile(t, "square.geojson", squareGeoJSON)
	cfgPath := writeFile(t, "goworld.yaml", "map:\n  path: "+mapPath+"\noutput:\n  width: 40\n  height: 10\n  colors: 0\n")

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", cfgPath, "-h", "12"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 12)
	assert.Len(t, []rune(lines[0]), 40)
}

func TestDebugLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-m", writeFile(t, "square.geojson", squareGeoJSON), "-w", "40", "-h", "10", "--debug", path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map: 1 shapes")
	assert.Contains(t, string(data), "render: map took")
}

func TestSunCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"sun", "--time", "2024-03-20T12:00:00Z"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "-0.0341 1.8063\n", buf.String())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"sun", "--time", "yesterday"})
	assert.Error(t, cmd.Execute())
}

func TestTerminalSizeExplicit(t *testing.T) {
	cols, rows := terminalSize(100, 30)
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)
}
