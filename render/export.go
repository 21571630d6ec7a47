package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/marzipan-term/marzipan/fractal"
	"github.com/marzipan-term/marzipan/palette"
)

// WritePlain writes the grid as a bare glyph-grid text file. Plain text has
// no color channel to carry two samples, so in half-block mode each row pair
// collapses to one row by averaging the two counts before mapping.
//
// A non-empty header is written first as a '#' comment line; callers pass the
// reconstruction command so exports stay self-documenting.
func WritePlain(w io.Writer, g *fractal.Grid, opts Options, glyphs []rune, header string) error {
	bw := bufio.NewWriter(w)

	if header != "" {
		fmt.Fprintf(bw, "# %s\n", header)
	}

	if opts.HalfBlock {
		for y := 0; y < g.Height; y += 2 {
			top := g.Row(y)
			bot := top
			if y+1 < g.Height {
				bot = g.Row(y + 1)
			}
			for x := 0; x < g.Width; x++ {
				avg := (int(top[x]) + int(bot[x])) / 2
				bw.WriteRune(MapGlyph(avg, g.MaxIter, glyphs, opts.Modulo))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			bw.WriteRune(MapGlyph(g.At(x, y), g.MaxIter, glyphs, opts.Modulo))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteColored writes the grid as ANSI-colored glyph-grid text. Color is
// always on in this format regardless of the interactive color toggle; the
// mapping mode and half-block flag are honored.
func WriteColored(w io.Writer, g *fractal.Grid, opts Options, glyphs []rune, ramp palette.Ramp, header string) error {
	bw := bufio.NewWriter(w)

	if header != "" {
		fmt.Fprintf(bw, "# %s\n", header)
	}

	var rows [][]Cell
	if opts.HalfBlock {
		rows = composeHalfBlockExport(g, opts, ramp)
	} else {
		forced := opts
		forced.Color = true
		rows = composeStandard(g, forced, glyphs, ramp)
	}

	return Encode(bw, rows)
}

// composeHalfBlockExport is the file variant of the half-block strategy:
// when top and bottom map to the same color the cell collapses to a single
// solid glyph (full block, or a half glyph when one sample is interior)
// instead of carrying a redundant background color.
func composeHalfBlockExport(g *fractal.Grid, opts Options, ramp palette.Ramp) [][]Cell {
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
			cTop := MapColor(nTop, g.MaxIter, ramp, opts.Modulo)
			cBot := MapColor(nBot, g.MaxIter, ramp, opts.Modulo)

			switch {
			case g.Interior(nTop) && g.Interior(nBot):
				row[x] = Cell{Rune: Fill}
			case cTop == cBot:
				switch {
				case g.Interior(nTop):
					row[x] = Cell{Rune: LowerHalf, Fg: cBot, Attrs: AttrFg}
				case g.Interior(nBot):
					row[x] = Cell{Rune: UpperHalf, Fg: cTop, Attrs: AttrFg}
				default:
					row[x] = Cell{Rune: FullBlock, Fg: cTop, Attrs: AttrFg}
				}
			default:
				row[x] = Cell{Rune: UpperHalf, Fg: cTop, Bg: cBot, Attrs: AttrFg | AttrBg}
			}
		}
		rows[y] = row
	}
	return rows
}
