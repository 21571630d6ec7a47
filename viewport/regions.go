package viewport

import (
	"fmt"
	"sort"
)

// Region is a named landmark framing of the Mandelbrot set
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
	MaxIter    int
}

// Well-known structures, reachable via the --region startup flag. Iteration
// caps are tuned so the landmark is visible without manual adjustment.
var regions = map[string]Region{
	// Dense filaments and repeating "seahorse" curls
	"seahorse": {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15, MaxIter: 150},

	// Procession of trunk-like tendrils east of the main cardioid
	"elephant": {XMin: 0.25, XMax: 0.35, YMin: -0.05, YMax: 0.05, MaxIter: 120},

	// Small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325, MaxIter: 400},

	// Threefold symmetric spiral structure
	"triple-spiral": {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980, MaxIter: 300},

	// Deep, highly detailed spiral filaments
	"dragon": {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850, MaxIter: 250},
}

// RegionNames returns the preset names in stable order
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRegion resolves a preset name to a viewport state
func LookupRegion(name string) (State, error) {
	r, ok := regions[name]
	if !ok {
		return State{}, fmt.Errorf("unknown region %q (have %v)", name, RegionNames())
	}

	s := Default()
	s.XMin, s.XMax = r.XMin, r.XMax
	s.YMin, s.YMax = r.YMin, r.YMax
	s.MaxIter = r.MaxIter
	return s, nil
}
