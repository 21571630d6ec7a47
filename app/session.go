package app

import (
	"github.com/marzipan-term/marzipan/fractal"
	"github.com/marzipan-term/marzipan/palette"
	"github.com/marzipan-term/marzipan/render"
	"github.com/marzipan-term/marzipan/viewport"
)

// Session is the single mutable application state: viewport, display options,
// palette/scheme selections, and the current iteration grid. It has one
// writer (the event loop); compute and render rounds read it between
// mutations, with the fork-join barrier ordering writes before reads.
type Session struct {
	View     viewport.State
	Opts     render.Options
	Palettes *palette.Set
	Schemes  *palette.Schemes

	// Workers is passed through to the compute round; 0 = auto
	Workers int

	// Grid is the last completed computation, nil before the first round.
	// Replaced wholesale on recompute, never mutated.
	Grid *fractal.Grid

	// Status is a transient message shown in place of the header command
	// line until the next keypress
	Status string
}

// NewSession builds a session with default viewport, palettes and options
func NewSession() *Session {
	return &Session{
		View:     viewport.Default(),
		Opts:     render.Options{Color: true, Modulo: true},
		Palettes: palette.NewSet(),
		Schemes:  palette.NewSchemes(),
	}
}

// Recompute runs one fork-join round for a view area of viewW×viewH cells and
// installs the resulting grid. Half-block mode computes twice the rows so
// each output row has two samples. The previous grid stays installed until
// the new round has fully completed.
func (s *Session) Recompute(viewW, viewH int) {
	gridH := viewH
	if s.Opts.HalfBlock {
		gridH *= 2
	}

	s.View.Snap(viewW, gridH)
	s.Grid = fractal.Compute(s.View.Request(viewW, gridH, s.Workers))
}

// Frame composes the current grid under the current display configuration.
// Returns nil when no grid has been computed yet.
func (s *Session) Frame() [][]render.Cell {
	if s.Grid == nil {
		return nil
	}
	return render.Compose(s.Grid, s.Opts, s.Palettes.Current(), s.Schemes.Current())
}

// Apply executes one command against the session and reports whether the
// grid must be recomputed or only re-rendered. Out-of-range iteration
// adjustments clamp silently and skip the recompute. CmdQuit and CmdNone are
// no-ops here; the event loop handles them.
func (s *Session) Apply(cmd Command) (recompute, redraw bool) {
	const (
		pan  = viewport.PanFraction
		zoom = viewport.ZoomFraction
	)

	switch cmd {
	case CmdPanN:
		s.View.Pan(0, pan)
	case CmdPanS:
		s.View.Pan(0, -pan)
	case CmdPanE:
		s.View.Pan(pan, 0)
	case CmdPanW:
		s.View.Pan(-pan, 0)
	case CmdPanNE:
		s.View.Pan(pan, pan)
	case CmdPanNW:
		s.View.Pan(-pan, pan)
	case CmdPanSE:
		s.View.Pan(pan, -pan)
	case CmdPanSW:
		s.View.Pan(-pan, -pan)

	case CmdZoomIn:
		s.View.Zoom(1 - zoom)
	case CmdZoomOut:
		s.View.Zoom(1 + zoom)
	case CmdStretchXIn:
		s.View.ZoomX(1 - zoom)
	case CmdStretchXOut:
		s.View.ZoomX(1 + zoom)
	case CmdStretchYIn:
		s.View.ZoomY(1 - zoom)
	case CmdStretchYOut:
		s.View.ZoomY(1 + zoom)

	case CmdIterUp:
		return s.View.AdjustIterations(viewport.IterationsStep), false
	case CmdIterDown:
		return s.View.AdjustIterations(-viewport.IterationsStep), false

	case CmdReset:
		s.View.Reset()
	case CmdToggleJulia:
		s.View.ToggleJulia()
	case CmdToggleHalfBlock:
		// Changes the grid resolution, so this display flag recomputes
		s.Opts.HalfBlock = !s.Opts.HalfBlock

	case CmdPaletteNext:
		s.Palettes.Cycle(1)
		return false, true
	case CmdPalettePrev:
		s.Palettes.Cycle(-1)
		return false, true
	case CmdSchemeNext:
		s.Schemes.Cycle(1)
		return false, true
	case CmdSchemePrev:
		s.Schemes.Cycle(-1)
		return false, true
	case CmdToggleColor:
		s.Opts.Color = !s.Opts.Color
		return false, true
	case CmdToggleMapping:
		s.Opts.Modulo = !s.Opts.Modulo
		return false, true

	case CmdExportPlain:
		s.Status = s.exportStatus(s.ExportPlain())
		return false, true
	case CmdExportColored:
		s.Status = s.exportStatus(s.ExportColored())
		return false, true

	default:
		return false, false
	}

	return true, false
}

func (s *Session) exportStatus(name string, err error) string {
	if err != nil {
		return "Export failed: " + err.Error()
	}
	return "Saved: " + name
}
