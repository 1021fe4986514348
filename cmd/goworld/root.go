package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"goworld/internal/ascii"
	"goworld/internal/config"
	"goworld/internal/export"
	"goworld/internal/geom"
	"goworld/internal/markers"
	"goworld/internal/render"
	"goworld/internal/sun"
)

const (
	defaultCols = 80
	defaultRows = 24
)

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		flags   flagValues
	)
	cmd := &cobra.Command{
		Use:   "goworld",
		Short: "Render a world map in the terminal",
		Long: `Render a world map as colored text, with optional day/night shading,
the sun position, point markers and tracks. With --write-png the map is
written as an image instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			applyFlags(&cfg, cmd.Flags(), &flags)

			logger, closeLog, err := debugLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer closeLog()
			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file; flags override its values")
	// -h is the height; help keeps only its long form
	cmd.Flags().Bool("help", false, "help for goworld")
	registerFlags(cmd.Flags(), &flags)
	cmd.AddCommand(newSunCmd())
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// debugLogger opens the debug log, or returns a logger that discards.
func debugLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log file %q: %w", path, err)
	}
	logger := log.New(file, "", log.LstdFlags|log.Lmicroseconds)
	logger.Printf("debug logging started, args %q", os.Args[1:])
	return logger, func() { file.Close() }, nil
}

// terminalSize fills unset dimensions from stdout when it is a terminal,
// else from the 80x24 default.
func terminalSize(cols, rows int) (int, int) {
	if cols > 0 && rows > 0 {
		return cols, rows
	}
	tc, tr := defaultCols, defaultRows
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			tc, tr = w, h
		}
	}
	if cols <= 0 {
		cols = tc
	}
	if rows <= 0 {
		rows = tr
	}
	return cols, rows
}

// run renders one map. Text output goes to out; a PNG goes to its file.
// A nil logger discards.
func run(out io.Writer, cfg config.Config, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	cols, rows := terminalSize(cfg.Output.Width, cfg.Output.Height)
	scale := 2
	if cfg.Output.PNG != "" {
		scale = 1
	}
	opts, err := cfg.RenderOptions(cols*scale, rows*scale)
	if err != nil {
		return err
	}
	if cfg.Sun.Enabled {
		at, err := cfg.SunTime()
		if err != nil {
			return err
		}
		if at.IsZero() {
			at = time.Now()
		}
		opts.Sun = sun.At(at)
		logger.Printf("sun: %s at lon %.3f lat %.3f", at.UTC().Format(time.RFC3339), opts.Sun.Lon, opts.Sun.Lat)
	}

	shapes, err := geom.Load(cfg.Map.Path)
	if err != nil {
		return err
	}
	logger.Printf("map: %d shapes from %s", len(shapes), cfg.Map.Path)

	marks, err := loadMarkers(cfg.Markers, logger)
	if err != nil {
		return err
	}

	c, err := render.Render(opts, shapes, marks, logger)
	if err != nil {
		return err
	}

	if cfg.Output.PNG != "" {
		if err := export.SavePNG(cfg.Output.PNG, c); err != nil {
			return err
		}
		logger.Printf("png: wrote %dx%d to %s", c.Width(), c.Height(), cfg.Output.PNG)
		return nil
	}
	aopts, err := cfg.ASCIIOptions()
	if err != nil {
		return err
	}
	return ascii.Render(out, c, aopts)
}

func loadMarkers(mc config.MarkersConfig, logger *log.Logger) (*markers.Set, error) {
	if len(mc.Files) == 0 {
		return nil, nil
	}
	p := &markers.Parser{Logger: logger}
	if mc.GeoIP != "" {
		db, err := markers.OpenGeoIP(mc.GeoIP)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		p.Resolver = db
	}
	return p.LoadAll(mc.Files...)
}

func newSunCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Print the sub-solar point as \"<lat> <lon>\"",
		Long: `Print the point where the sun is at the zenith, in the marker file
format, so that it can be fed back with --locations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			if at != "" {
				var err error
				if t, err = time.Parse(time.RFC3339, at); err != nil {
					return err
				}
			}
			lon, lat := sun.Position(t)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.4f %.4f\n", lat, lon)
			return err
		},
	}
	cmd.Flags().StringVar(&at, "time", "", "RFC 3339 time (default now)")
	return cmd
}
