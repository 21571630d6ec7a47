package render

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI fragments (avoid allocations while encoding frames)
var (
	csiReset = []byte("\x1b[0m")
	csiFg256 = []byte("\x1b[38;5;")
	sepBg256 = []byte(";48;5;")
	sepBgOff = []byte(";49")
)

// Encode writes composed cell rows as a 256-color ANSI byte stream.
//
// Color sequences are run-length compressed: an escape is emitted only when a
// cell's style differs from the running style. Background (attr-less) cells
// emit a reset when they end a colored run, and every row ends with a reset
// (if a style is still active) followed by a newline. Output is a pure
// function of the cells, byte-identical across calls.
func Encode(w io.Writer, rows [][]Cell) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriterSize(w, 1<<16)
	}

	var last Cell
	active := false

	for _, row := range rows {
		for _, c := range row {
			if c.Attrs == AttrNone {
				if active {
					bw.Write(csiReset)
					active = false
				}
			} else if !active || c.Fg != last.Fg || c.Bg != last.Bg || c.Attrs != last.Attrs {
				bw.Write(csiFg256)
				writeInt(bw, int(c.Fg))
				if c.Attrs&AttrBg != 0 {
					bw.Write(sepBg256)
					writeInt(bw, int(c.Bg))
				} else if active && last.Attrs&AttrBg != 0 {
					// Clear a background left over from the previous cell
					bw.Write(sepBgOff)
				}
				bw.WriteByte('m')
				last = c
				active = true
			}

			if c.Rune < 0x80 {
				bw.WriteByte(byte(c.Rune))
			} else {
				bw.WriteRune(c.Rune)
			}
		}

		if active {
			bw.Write(csiReset)
			active = false
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// writeInt writes a palette index (0-255) without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	w.WriteByte(byte(n/100) + '0')
	w.WriteByte(byte(n/10%10) + '0')
	w.WriteByte(byte(n%10) + '0')
}
