// Package viewport tracks the rectangular region of the complex plane mapped
// onto the output grid, and the navigation mutators that move it around.
package viewport

import (
	"math"

	"github.com/marzipan-term/marzipan/fractal"
)

// Iteration cap bounds and the per-keypress adjustment step
const (
	MinIterations  = 1
	MaxIterations  = 10000
	IterationsStep = 5
)

// Fractions of the current extent moved per pan / zoom step
const (
	PanFraction  = 0.1
	ZoomFraction = 0.3
)

// Default Mandelbrot framing and iteration cap
const (
	DefaultXMin = -2.0
	DefaultXMax = 1.0
	DefaultYMin = -1.0
	DefaultYMax = 1.0
	DefaultIter = 30
)

// Canonical Julia framing used when entering Julia mode, and the half-extents
// used to recenter the Mandelbrot view when leaving it
const (
	juliaXMin      = -2.0
	juliaXMax      = 2.0
	juliaYMin      = -1.5
	juliaYMax      = 1.5
	returnHalfWide = 1.5
	returnHalfHigh = 1.0
)

// DefaultJuliaC is the classic Julia constant used when Julia mode is
// requested directly from the command line
var DefaultJuliaC = complex(-0.7, 0.27015)

// State holds the plane bounds, iteration cap and fractal mode. Invariant
// (enforced at the CLI/config boundary, not here): XMin < XMax, YMin < YMax,
// MaxIter in [MinIterations, MaxIterations].
type State struct {
	XMin, XMax float64
	YMin, YMax float64
	MaxIter    int
	Mode       fractal.Mode
	JuliaC     complex128
}

// Default returns the standard Mandelbrot framing
func Default() State {
	return State{
		XMin:    DefaultXMin,
		XMax:    DefaultXMax,
		YMin:    DefaultYMin,
		YMax:    DefaultYMax,
		MaxIter: DefaultIter,
		Mode:    fractal.ModeMandelbrot,
		JuliaC:  DefaultJuliaC,
	}
}

// Center returns the midpoint of the current bounds
func (s *State) Center() (x, y float64) {
	return (s.XMin + s.XMax) / 2, (s.YMin + s.YMax) / 2
}

// Pan translates both axes by a fraction of the current extent
func (s *State) Pan(dxFrac, dyFrac float64) {
	dx := (s.XMax - s.XMin) * dxFrac
	dy := (s.YMax - s.YMin) * dyFrac
	s.XMin += dx
	s.XMax += dx
	s.YMin += dy
	s.YMax += dy
}

// Zoom rescales both extents around the center; factor < 1 zooms in
func (s *State) Zoom(factor float64) {
	s.ZoomX(factor)
	s.ZoomY(factor)
}

// ZoomX rescales only the horizontal extent around the center
func (s *State) ZoomX(factor float64) {
	cx := (s.XMin + s.XMax) / 2
	hw := (s.XMax - s.XMin) * factor / 2
	s.XMin = cx - hw
	s.XMax = cx + hw
}

// ZoomY rescales only the vertical extent around the center
func (s *State) ZoomY(factor float64) {
	cy := (s.YMin + s.YMax) / 2
	hh := (s.YMax - s.YMin) * factor / 2
	s.YMin = cy - hh
	s.YMax = cy + hh
}

// AdjustIterations moves the cap by delta, silently clamped to the valid
// range. Returns true when the cap actually changed (i.e. a recompute is
// needed).
func (s *State) AdjustIterations(delta int) bool {
	next := s.MaxIter + delta
	if next < MinIterations {
		next = MinIterations
	}
	if next > MaxIterations {
		next = MaxIterations
	}
	if next == s.MaxIter {
		return false
	}
	s.MaxIter = next
	return true
}

// Reset restores the default bounds and iteration cap and leaves Julia mode
func (s *State) Reset() {
	s.XMin, s.XMax = DefaultXMin, DefaultXMax
	s.YMin, s.YMax = DefaultYMin, DefaultYMax
	s.MaxIter = DefaultIter
	s.Mode = fractal.ModeMandelbrot
}

// ToggleJulia switches between Mandelbrot and Julia mode.
//
// Entering Julia captures the current Mandelbrot view center as the Julia
// constant and jumps to the canonical Julia framing. Leaving recenters the
// Mandelbrot view on that (possibly stale) constant with fixed half-extents
// rather than restoring the previous Mandelbrot bounds. The round trip is
// deliberately lossy; the asymmetry is part of the navigation contract.
func (s *State) ToggleJulia() {
	if s.Mode != fractal.ModeJulia {
		cx, cy := s.Center()
		s.JuliaC = complex(cx, cy)
		s.Mode = fractal.ModeJulia
		s.XMin, s.XMax = juliaXMin, juliaXMax
		s.YMin, s.YMax = juliaYMin, juliaYMax
		return
	}

	cx, cy := real(s.JuliaC), imag(s.JuliaC)
	s.Mode = fractal.ModeMandelbrot
	s.XMin, s.XMax = cx-returnHalfWide, cx+returnHalfWide
	s.YMin, s.YMax = cy-returnHalfHigh, cy+returnHalfHigh
}

// Snap aligns the bounds to the per-pixel sample lattice anchored at the
// plane origin: both minima are floored onto a multiple of the pixel pitch
// and the maxima shift by the same delta, preserving the extents exactly.
// Repeated fractional pans therefore sample the same lattice of points a
// neighboring view would, which keeps adjacent frames alias-free.
func (s *State) Snap(gridW, gridH int) {
	px := (s.XMax - s.XMin) / float64(gridW)
	py := (s.YMax - s.YMin) / float64(gridH)

	snappedX := math.Floor(s.XMin/px) * px
	snappedY := math.Floor(s.YMin/py) * py

	s.XMax += snappedX - s.XMin
	s.YMax += snappedY - s.YMin
	s.XMin = snappedX
	s.YMin = snappedY
}

// Request builds the compute request for the current state at the given grid
// resolution
func (s *State) Request(gridW, gridH, workers int) fractal.Request {
	return fractal.Request{
		XMin: s.XMin, XMax: s.XMax,
		YMin: s.YMin, YMax: s.YMax,
		Width:   gridW,
		Height:  gridH,
		MaxIter: s.MaxIter,
		Mode:    s.Mode,
		JuliaC:  s.JuliaC,
		Workers: workers,
	}
}
