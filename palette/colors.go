package palette

import "fmt"

// RampLen is the fixed length of every color ramp
const RampLen = 16

// Ramp is a fixed-length sequence of xterm 256-palette indices,
// ordered by escape speed (fast escape first)
type Ramp [RampLen]uint8

// Builtin color schemes. Values are xterm 256-palette indices:
// color cube index = 16 + 36r + 6g + b for r,g,b in [0,5],
// grayscale ramp indices 232-255.
var schemes = []Ramp{
	{0x11, 0x12, 0x13, 0x14, 0x15, 0x1B, 0x21, 0x27, 0x2D, 0x33, 0x32, 0x31, 0x30, 0x2F, 0x2E, 0x2D},
	{0x10, 0x34, 0x58, 0x7C, 0xA0, 0xC4, 0xCA, 0xD0, 0xD6, 0xDC, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, 0xE7},
	{0x16, 0x1C, 0x22, 0x28, 0x2E, 0x2F, 0x30, 0x31, 0x32, 0x33, 0x2D, 0x27, 0x21, 0x1B, 0x15, 0x39},
	{0x16, 0x1C, 0x22, 0x40, 0x46, 0x6A, 0x8E, 0xB2, 0xB3, 0x8F, 0x6B, 0x47, 0x23, 0x1D, 0x17, 0x16},
	{0x35, 0x36, 0x37, 0x38, 0x39, 0x5D, 0x81, 0xA5, 0xC9, 0xC8, 0xC7, 0xB2, 0xD6, 0xDC, 0xDD, 0xDE},
	{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xC3, 0xBD, 0x99, 0x75, 0x51, 0x2D, 0x27, 0x21, 0x1B, 0x15, 0x14},
	{0xC9, 0xC8, 0xC7, 0xC6, 0xC5, 0xC4, 0xCA, 0xD0, 0xD6, 0xDC, 0xE2, 0xBE, 0x9A, 0x76, 0x52, 0x2E},
	{0xE8, 0xE9, 0xEA, 0xEB, 0xEC, 0xED, 0xEE, 0xEF, 0xF0, 0xF1, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6, 0xF7},
	{0xD8, 0xD9, 0xDA, 0xDB, 0xB7, 0x93, 0x6F, 0x4B, 0x45, 0x3F, 0x39, 0x5D, 0x81, 0xA5, 0xC9, 0xCF},
	{0x10, 0x16, 0x1C, 0x22, 0x28, 0x2E, 0x52, 0x76, 0x9A, 0xBE, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, 0xE7},
	{0xDA, 0xDB, 0xB7, 0x93, 0x99, 0xBD, 0xE1, 0xE0, 0xDF, 0xDE, 0xDD, 0xD7, 0xD1, 0xCB, 0xCC, 0xD2},
	{0x5E, 0x82, 0xA6, 0xAC, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7, 0xB8, 0xB9, 0xBA, 0xBB, 0xDF, 0xE7},
	{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x39, 0x5D, 0x81, 0xA5, 0xC9, 0xCF, 0xD5, 0xDB, 0xE1, 0xE7},
	{0xC4, 0xCA, 0xD0, 0xD6, 0xDC, 0xE2, 0xBE, 0x9A, 0x76, 0x52, 0x2E, 0x2F, 0x30, 0x31, 0x32, 0x33},
	{0x34, 0x58, 0x7C, 0x7D, 0x7E, 0x7F, 0xA3, 0xC7, 0xC6, 0xC5, 0xC4, 0xA0, 0x7C, 0x58, 0x34, 0x35},
	{0x11, 0x12, 0x13, 0x14, 0x15, 0x1B, 0x21, 0x27, 0x2D, 0x33, 0x57, 0x7B, 0x9F, 0xC3, 0xE7, 0xFF},
}

// Schemes is the fixed collection of color ramps with a current selection
type Schemes struct {
	current int
}

// NewSchemes returns the scheme collection at the first ramp
func NewSchemes() *Schemes {
	return &Schemes{}
}

// SchemeCount returns the number of builtin ramps
func SchemeCount() int {
	return len(schemes)
}

// Index returns the current selection
func (c *Schemes) Index() int {
	return c.current
}

// Select sets the current ramp; out-of-range indices are rejected
func (c *Schemes) Select(i int) error {
	if i < 0 || i >= len(schemes) {
		return fmt.Errorf("color scheme index %d out of range [0,%d)", i, len(schemes))
	}
	c.current = i
	return nil
}

// Cycle advances the selection by delta, wrapping at both ends
func (c *Schemes) Cycle(delta int) {
	n := len(schemes)
	c.current = (c.current + delta%n + n) % n
}

// Current returns the active ramp
func (c *Schemes) Current() Ramp {
	return schemes[c.current]
}

// Gray returns the xterm grayscale index for an escape count, used instead of
// the active ramp when color output is disabled. The grayscale ramp occupies
// indices 232-255 (24 levels).
func Gray(n int) uint8 {
	return 232 + uint8(n%24)
}
