package render

import (
	"github.com/marzipan-term/marzipan/fractal"
	"github.com/marzipan-term/marzipan/palette"
)

// Compose turns an iteration grid plus the current display configuration into
// rows of output cells. The grid is read-only; calling Compose repeatedly
// with the same inputs yields identical output, so display toggles only need
// a re-render, never a recompute.
//
// In half-block mode every output row merges two grid rows, so the returned
// frame has ceil(Height/2) rows; otherwise one output row per grid row.
func Compose(g *fractal.Grid, opts Options, glyphs []rune, ramp palette.Ramp) [][]Cell {
	if opts.HalfBlock {
		return composeHalfBlock(g, opts, ramp)
	}
	return composeStandard(g, opts, glyphs, ramp)
}

// composeStandard emits one glyph per grid cell. Interior points are blank
// background cells; exterior points carry the mapped glyph and, with color
// enabled, the mapped ramp color.
func composeStandard(g *fractal.Grid, opts Options, glyphs []rune, ramp palette.Ramp) [][]Cell {
	rows := make([][]Cell, g.Height)

	for y := 0; y < g.Height; y++ {
		row := make([]Cell, g.Width)
		for x := 0; x < g.Width; x++ {
			n := g.At(x, y)
			idx := MapIndex(n, g.MaxIter, len(glyphs), opts.Modulo)
			if idx < 0 {
				row[x] = Cell{Rune: Fill}
				continue
			}
			c := Cell{Rune: glyphs[idx]}
			if opts.Color {
				c.Fg = MapColor(n, g.MaxIter, ramp, opts.Modulo)
				c.Attrs = AttrFg
			}
			row[x] = c
		}
		rows[y] = row
	}
	return rows
}

// composeHalfBlock merges grid row pairs (2k, 2k+1) into single cells using
// block glyphs with independent foreground/background colors. With an odd
// row count the final row is self-paired, so every output row always has a
// top and a bottom sample. Per cell, exactly one of four cases applies:
//
//	both interior      → blank cell, colors reset
//	top interior only  → lower-half glyph, fg = bottom color
//	bottom interior    → upper-half glyph, fg = top color
//	neither interior   → upper-half glyph, fg = top, bg = bottom
func composeHalfBlock(g *fractal.Grid, opts Options, ramp palette.Ramp) [][]Cell {
	outRows := (g.Height + 1) / 2
	rows := make([][]Cell, outRows)

	for y := 0; y < outRows; y++ {
		top := g.Row(2 * y)
		bot := top
		if 2*y+1 < g.Height {
			bot = g.Row(2*y + 1)
		}

		row := make([]Cell, g.Width)
		for x := 0; x < g.Width; x++ {
			nTop := int(top[x])
			nBot := int(bot[x])
			inTop := g.Interior(nTop)
			inBot := g.Interior(nBot)

			switch {
			case inTop && inBot:
				row[x] = Cell{Rune: Fill}
			case inTop:
				row[x] = Cell{Rune: LowerHalf, Fg: sampleColor(nBot, g.MaxIter, opts, ramp), Attrs: AttrFg}
			case inBot:
				row[x] = Cell{Rune: UpperHalf, Fg: sampleColor(nTop, g.MaxIter, opts, ramp), Attrs: AttrFg}
			default:
				row[x] = Cell{
					Rune:  UpperHalf,
					Fg:    sampleColor(nTop, g.MaxIter, opts, ramp),
					Bg:    sampleColor(nBot, g.MaxIter, opts, ramp),
					Attrs: AttrFg | AttrBg,
				}
			}
		}
		rows[y] = row
	}
	return rows
}

// sampleColor maps an exterior count through the active ramp, or through the
// xterm grayscale ramp when color output is disabled
func sampleColor(n, maxIter int, opts Options, ramp palette.Ramp) uint8 {
	if !opts.Color {
		return palette.Gray(n)
	}
	return MapColor(n, maxIter, ramp, opts.Modulo)
}
