package fractal

// Grid is an immutable snapshot of escape-time counts for one viewport.
// Counts are row-major in [0, MaxIter]; a count equal to MaxIter marks an
// interior point that never escaped. A grid is produced wholesale by one
// fork-join Compute round and never mutated afterwards; navigation replaces
// it with a fresh one.
type Grid struct {
	Width   int
	Height  int
	MaxIter int

	counts []int32
}

// NewGrid wraps a row-major count buffer. The slice is taken over, not
// copied; len(counts) must be width*height.
func NewGrid(width, height, maxIter int, counts []int32) *Grid {
	return &Grid{Width: width, Height: height, MaxIter: maxIter, counts: counts}
}

// At returns the count at column x, row y. No bounds check; callers iterate
// within Width/Height.
func (g *Grid) At(x, y int) int {
	return int(g.counts[y*g.Width+x])
}

// Row returns the count slice for one row. Read-only by convention.
func (g *Grid) Row(y int) []int32 {
	return g.counts[y*g.Width : (y+1)*g.Width]
}

// Interior reports whether a count marks a point that never escaped.
func (g *Grid) Interior(n int) bool {
	return n >= g.MaxIter
}
