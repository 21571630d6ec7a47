package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marzipan-term/marzipan/app"
	"github.com/marzipan-term/marzipan/config"
	"github.com/marzipan-term/marzipan/fractal"
	"github.com/marzipan-term/marzipan/palette"
	"github.com/marzipan-term/marzipan/viewport"
)

// Fallback frame size for batch mode when stdout is not a terminal
const (
	defaultBatchWidth  = 80
	defaultBatchHeight = 24
)

var flags struct {
	xrange  []float64
	yrange  []float64
	julia   []float64
	iter    int
	threads int
	pal     int
	colors  int
	mode    string
	symbols string
	region  string
	noColor bool
	half    bool
	batch   bool
	width   int
	height  int
}

var rootCmd = &cobra.Command{
	Use:   "marzipan",
	Short: "Interactive Mandelbrot/Julia viewer for the terminal",
	Long: `marzipan renders escape-time fractals as colored text.

Iteration counts are computed in parallel; glyph palettes, color schemes and
the modulo/linear mapping are applied at render time, so switching them is
instantaneous. Half-block mode doubles the vertical resolution using Unicode
block glyphs with independent top/bottom colors.

The header shows a command line that recreates the current view; exports
embed the same line as a comment.

Keys: arrows pan, Home/End/PgUp/PgDn pan diagonally, Insert/Enter zoom,
Shift+arrows stretch one axis, +/- iterations, / and * glyph palettes,
1 and 2 color schemes, c color, m mapping, j Julia, h half-block,
p/P export plain/colored, Esc reset, q quit.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.Float64SliceVarP(&flags.xrange, "xrange", "x", nil, "x-axis range as min,max")
	f.Float64SliceVarP(&flags.yrange, "yrange", "y", nil, "y-axis range as min,max")
	f.Float64SliceVarP(&flags.julia, "julia", "j", nil, "Julia mode with constant cr,ci")
	f.IntVarP(&flags.iter, "iterations", "i", viewport.DefaultIter, "iteration cap (1-10000)")
	f.IntVarP(&flags.threads, "threads", "t", 0, "worker count (0 = logical CPUs)")
	f.IntVar(&flags.pal, "palette", 0, fmt.Sprintf("glyph palette 1-%d", palette.BuiltinCount()))
	f.IntVar(&flags.colors, "colors", 0, fmt.Sprintf("color scheme 1-%d", palette.SchemeCount()))
	f.StringVarP(&flags.mode, "mode", "m", "", "iteration mapping: mod or lin")
	f.StringVar(&flags.symbols, "symbols", "", "custom glyph palette (2-256 characters)")
	f.StringVar(&flags.region, "region", "", "start at a named landmark (see 'marzipan regions')")
	f.BoolVar(&flags.noColor, "no-color", false, "disable color output")
	f.BoolVar(&flags.half, "half-block", false, "half-block rendering (2x vertical resolution)")
	f.BoolVarP(&flags.batch, "batch", "b", false, "render one frame to stdout and exit")
	f.IntVar(&flags.width, "width", 0, "frame width in batch mode (0 = detect)")
	f.IntVar(&flags.height, "height", 0, "frame height in batch mode (0 = detect)")

	rootCmd.AddCommand(regionsCmd)
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the named landmark regions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range viewport.RegionNames() {
			fmt.Println(name)
		}
	},
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := buildSession(cmd, cfg)
	if err != nil {
		return err
	}

	if flags.batch {
		w, h := batchSize()
		return app.RunBatch(s, w, h, os.Stdout)
	}
	return app.Run(s)
}

// buildSession merges config-file defaults and command-line flags into a
// validated session. Flags win over the file; the core packages receive only
// validated state.
func buildSession(cmd *cobra.Command, cfg config.Config) (*app.Session, error) {
	s := app.NewSession()

	// Config file layer
	s.Workers = cfg.Workers
	s.Opts.Color = cfg.Color
	s.Opts.Modulo = cfg.Modulo()
	s.Opts.HalfBlock = cfg.HalfBlock
	s.View.MaxIter = cfg.Iterations
	s.Palettes.Select(cfg.Palette - 1)
	s.Schemes.Select(cfg.Colors - 1)
	if cfg.Symbols != "" {
		if err := s.Palettes.AddCustom(cfg.Symbols); err != nil {
			return nil, err
		}
	}

	// Flag layer
	set := cmd.Flags().Changed

	if flags.region != "" {
		view, err := viewport.LookupRegion(flags.region)
		if err != nil {
			return nil, err
		}
		s.View = view
	}

	if set("xrange") {
		if len(flags.xrange) != 2 || flags.xrange[0] >= flags.xrange[1] {
			return nil, fmt.Errorf("--xrange needs min,max with min < max")
		}
		s.View.XMin, s.View.XMax = flags.xrange[0], flags.xrange[1]
	}
	if set("yrange") {
		if len(flags.yrange) != 2 || flags.yrange[0] >= flags.yrange[1] {
			return nil, fmt.Errorf("--yrange needs min,max with min < max")
		}
		s.View.YMin, s.View.YMax = flags.yrange[0], flags.yrange[1]
	}
	if set("iterations") {
		if flags.iter < viewport.MinIterations || flags.iter > viewport.MaxIterations {
			return nil, fmt.Errorf("iterations must be %d-%d", viewport.MinIterations, viewport.MaxIterations)
		}
		s.View.MaxIter = flags.iter
	}
	if set("threads") {
		if flags.threads < 0 || flags.threads > 256 {
			return nil, fmt.Errorf("threads must be 0-256")
		}
		s.Workers = flags.threads
	}
	if set("palette") {
		if err := s.Palettes.Select(flags.pal - 1); err != nil {
			return nil, fmt.Errorf("palette must be 1-%d", palette.BuiltinCount())
		}
	}
	if set("colors") {
		if err := s.Schemes.Select(flags.colors - 1); err != nil {
			return nil, fmt.Errorf("colors must be 1-%d", palette.SchemeCount())
		}
	}
	if set("mode") {
		switch flags.mode {
		case "mod", "modulo":
			s.Opts.Modulo = true
		case "lin", "linear":
			s.Opts.Modulo = false
		default:
			return nil, fmt.Errorf("mode must be 'mod' or 'lin'")
		}
	}
	if set("symbols") {
		if err := s.Palettes.AddCustom(flags.symbols); err != nil {
			return nil, err
		}
	}
	if set("no-color") {
		s.Opts.Color = !flags.noColor
	}
	if set("half-block") {
		s.Opts.HalfBlock = flags.half
	}
	if set("julia") {
		if len(flags.julia) != 2 {
			return nil, fmt.Errorf("--julia needs cr,ci")
		}
		s.View.JuliaC = complex(flags.julia[0], flags.julia[1])
		s.View.Mode = fractal.ModeJulia
	}

	return s, nil
}

func batchSize() (int, int) {
	w, h := flags.width, flags.height
	if w > 0 && h > 0 {
		return w, h
	}
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			h = th
		}
		return w, h
	}
	if w <= 0 {
		w = defaultBatchWidth
	}
	if h <= 0 {
		h = defaultBatchHeight
	}
	return w, h
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
