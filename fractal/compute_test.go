package fractal

import "testing"

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		workers int
		want    []Range
	}{
		{"Uneven split", 10, 3, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{"Even split", 12, 4, []Range{{0, 3}, {3, 6}, {6, 9}, {9, 12}}},
		{"Single worker", 7, 1, []Range{{0, 7}}},
		{"One row each", 3, 3, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{"More remainder than base", 5, 4, []Range{{0, 2}, {2, 3}, {3, 4}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.rows, tt.workers)

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d ranges, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Range %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestPartitionCoversExactly(t *testing.T) {
	for rows := 1; rows <= 64; rows++ {
		for workers := 1; workers <= rows; workers++ {
			ranges := Partition(rows, workers)

			covered := make([]bool, rows)
			for _, r := range ranges {
				if r.End < r.Start {
					t.Fatalf("rows=%d workers=%d: inverted range %v", rows, workers, r)
				}
				for row := r.Start; row < r.End; row++ {
					if covered[row] {
						t.Fatalf("rows=%d workers=%d: row %d covered twice", rows, workers, row)
					}
					covered[row] = true
				}
			}
			for row, ok := range covered {
				if !ok {
					t.Fatalf("rows=%d workers=%d: row %d not covered", rows, workers, row)
				}
			}
		}
	}
}

func TestComputeMatchesSerial(t *testing.T) {
	req := Request{
		XMin: -2, XMax: 1,
		YMin: -1, YMax: 1,
		Width: 40, Height: 17,
		MaxIter: 64,
		Mode:    ModeMandelbrot,
	}

	req.Workers = 1
	serial := Compute(req)
	req.Workers = 5
	parallel := Compute(req)

	for y := 0; y < req.Height; y++ {
		for x := 0; x < req.Width; x++ {
			if serial.At(x, y) != parallel.At(x, y) {
				t.Fatalf("Cell (%d,%d): serial %d, parallel %d", x, y, serial.At(x, y), parallel.At(x, y))
			}
		}
	}
}

func TestComputeGridShape(t *testing.T) {
	req := Request{
		XMin: -2, XMax: 2,
		YMin: -1.5, YMax: 1.5,
		Width: 8, Height: 6,
		MaxIter: 30,
		Mode:    ModeJulia,
		JuliaC:  complex(-0.7, 0.27015),
		Workers: 3,
	}
	g := Compute(req)

	if g.Width != 8 || g.Height != 6 || g.MaxIter != 30 {
		t.Fatalf("Unexpected grid shape %dx%d cap %d", g.Width, g.Height, g.MaxIter)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := g.At(x, y)
			if n < 0 || n > g.MaxIter {
				t.Fatalf("Cell (%d,%d) count %d outside [0,%d]", x, y, n, g.MaxIter)
			}
		}
	}
}

func TestComputeWorkerClamping(t *testing.T) {
	// More workers than rows must not panic or leave rows unwritten;
	// an interior-only view makes every count equal to the cap
	req := Request{
		XMin: -0.2, XMax: -0.1,
		YMin: -0.05, YMax: 0.05,
		Width: 4, Height: 3,
		MaxIter: 50,
		Mode:    ModeMandelbrot,
		Workers: 100,
	}
	g := Compute(req)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != 50 {
				t.Errorf("Cell (%d,%d): expected interior cap 50, got %d", x, y, g.At(x, y))
			}
		}
	}
}

func TestGridInterior(t *testing.T) {
	g := &Grid{MaxIter: 30}
	if g.Interior(29) {
		t.Error("Count below cap must not be interior")
	}
	if !g.Interior(30) {
		t.Error("Count at cap must be interior")
	}
}
