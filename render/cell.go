package render

// Attr flags which color channels of a cell are set (bitmask).
// A cell with no attrs is background: plain glyph, colors reset.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrFg   Attr = 1 << 0 // Fg holds an xterm 256-palette index
	AttrBg   Attr = 1 << 1 // Bg holds an xterm 256-palette index
)

// Cell is one composed output cell: a display glyph plus optional foreground
// and background 256-color indices
type Cell struct {
	Rune  rune
	Fg    uint8
	Bg    uint8
	Attrs Attr
}

// Options are the display-only settings a frame is composed under. They are
// independent of the iteration grid, which is what makes palette, scheme and
// mapping switches free of recomputation.
type Options struct {
	// Color enables the active color ramp; when off, standard rendering is
	// bare glyphs and half-block rendering falls back to the grayscale ramp
	Color bool

	// Modulo selects cyclic banding; false selects the linear gradient
	Modulo bool

	// HalfBlock merges pairs of grid rows into single cells with independent
	// top/bottom colors, doubling effective vertical resolution
	HalfBlock bool
}

// Block glyphs used by the half-block strategy
const (
	UpperHalf = '▀'
	LowerHalf = '▄'
	FullBlock = '█'
	Fill      = ' '
)
