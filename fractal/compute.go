package fractal

import (
	"runtime"
	"sync"
)

// MaxWorkers caps the fork-join fan-out regardless of configuration
const MaxWorkers = 256

// Request carries every input of one compute round. Fields are copied into
// each worker, so a Request can be rebuilt freely between rounds without
// racing an in-flight computation.
type Request struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      int
	Height     int
	MaxIter    int
	Mode       Mode
	JuliaC     complex128

	// Workers is the requested fan-out; 0 means one per logical CPU.
	// Clamped to [1, min(MaxWorkers, Height)].
	Workers int
}

// Range is a half-open row interval [Start, End)
type Range struct {
	Start, End int
}

// Partition splits [0, rows) into workers contiguous, non-overlapping ranges.
// Each range gets rows/workers rows; the first rows%workers ranges get one
// extra, so the union covers [0, rows) exactly with no gaps or overlaps.
func Partition(rows, workers int) []Range {
	each := rows / workers
	extra := rows % workers

	ranges := make([]Range, workers)
	row := 0
	for i := range ranges {
		count := each
		if i < extra {
			count++
		}
		ranges[i] = Range{Start: row, End: row + count}
		row += count
	}
	return ranges
}

// clampWorkers resolves the effective fan-out for a request
func (r *Request) clampWorkers() int {
	w := r.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w < 1 {
		w = 1
	}
	if w > MaxWorkers {
		w = MaxWorkers
	}
	if w > r.Height {
		w = r.Height
	}
	return w
}

// Compute runs one fork-join round and returns the fully populated grid.
// Workers write into disjoint row ranges of a single shared buffer, so no
// locking is needed; the caller's goroutine blocks on the barrier and no
// partial grid is ever visible. Inputs are assumed validated (bounds
// non-degenerate, dimensions positive, iteration cap in range) by the
// boundary layer.
func Compute(req Request) *Grid {
	grid := &Grid{
		Width:   req.Width,
		Height:  req.Height,
		MaxIter: req.MaxIter,
		counts:  make([]int32, req.Width*req.Height),
	}

	workers := req.clampWorkers()
	if workers == 1 {
		computeRows(req, grid.counts, Range{0, req.Height})
		return grid
	}

	var wg sync.WaitGroup
	for _, rng := range Partition(req.Height, workers) {
		wg.Add(1)
		go func(rng Range) {
			defer wg.Done()
			computeRows(req, grid.counts, rng)
		}(rng)
	}
	wg.Wait()

	return grid
}

// computeRows fills the row range [rng.Start, rng.End) of out.
// Sample points lie at the top-left lattice of each pixel: row 0 samples
// ymax, column 0 samples xmin, matching the snap-to-grid anchoring.
func computeRows(req Request, out []int32, rng Range) {
	dx := (req.XMax - req.XMin) / float64(req.Width)
	dy := (req.YMax - req.YMin) / float64(req.Height)

	for row := rng.Start; row < rng.End; row++ {
		y := req.YMax - float64(row)*dy
		outRow := out[row*req.Width : (row+1)*req.Width]

		for col := 0; col < req.Width; col++ {
			x := req.XMin + float64(col)*dx
			outRow[col] = int32(EscapeTime(x, y, req.Mode, req.JuliaC, req.MaxIter))
		}
	}
}
