package render

import "github.com/marzipan-term/marzipan/palette"

// MapIndex translates an escape count into a palette/ramp index, or -1 for
// interior points (n ≥ maxIter).
//
// Modulo mode cycles through the ramp (classic banding); linear mode scales
// escape speed onto the ramp monotonically, saturating near length-1 as n
// approaches the cap. Arithmetic and a table lookup only, evaluated per pixel
// at render time.
func MapIndex(n, maxIter, length int, modulo bool) int {
	if n >= maxIter {
		return -1
	}
	if modulo {
		return n % length
	}
	return n * length / maxIter
}

// MapGlyph returns the display glyph for an escape count; interior points get
// the fill character
func MapGlyph(n, maxIter int, glyphs []rune, modulo bool) rune {
	idx := MapIndex(n, maxIter, len(glyphs), modulo)
	if idx < 0 {
		return Fill
	}
	return glyphs[idx]
}

// MapColor returns the ramp color for an escape count. Interior points map to
// 0; callers handle interior cells separately, the zero is only the sentinel
// the colored-export comparison path relies on.
func MapColor(n, maxIter int, ramp palette.Ramp, modulo bool) uint8 {
	idx := MapIndex(n, maxIter, palette.RampLen, modulo)
	if idx < 0 {
		return 0
	}
	return ramp[idx]
}
