// Package palette holds the glyph palettes and 256-color ramps that map
// escape counts to terminal output. Selection state lives here; the grids it
// is applied to live in fractal. Keeping the two independent is what makes
// palette switching instantaneous.
package palette

import "fmt"

// Custom glyph palette length bounds (in runes)
const (
	MinGlyphs = 2
	MaxGlyphs = 256
)

// Builtin glyph palettes, ordered roughly by visual density. Entries are
// decoded to runes once at startup; the last one uses Unicode shade blocks.
var builtin = []string{
	" #",
	".,:;!?%$#@",
	" .,:;i1tfLCG08@",
	" .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	" .:-=+*#%@",
	"@%#*+=-:. ",
	" .:-=+*#",
	" .oO@*",
	" .:+*#%@",
	" ~-=oO0@",
	" .'\"*+oO#",
	" .<>^v*#@",
	" .-~=o*O@#",
	" ._-~:;!*",
	" .,;:!|I#",
	" ░▒▓█",
}

// DefaultIndex is the startup glyph palette (the dotted ASCII ramp)
const DefaultIndex = 1

// Set is the ordered collection of glyph palettes: the fixed builtins plus at
// most one user-supplied custom entry appended at the end, with a current
// selection index.
type Set struct {
	entries [][]rune
	current int
}

// NewSet builds the builtin palette collection
func NewSet() *Set {
	entries := make([][]rune, len(builtin))
	for i, s := range builtin {
		entries[i] = []rune(s)
	}
	return &Set{entries: entries, current: DefaultIndex}
}

// AddCustom validates and appends a user palette, selecting it. At most one
// custom palette exists; a second call replaces the first.
func (s *Set) AddCustom(symbols string) error {
	glyphs := []rune(symbols)
	if len(glyphs) < MinGlyphs || len(glyphs) > MaxGlyphs {
		return fmt.Errorf("custom palette needs %d-%d symbols, got %d", MinGlyphs, MaxGlyphs, len(glyphs))
	}
	if s.HasCustom() {
		s.entries[len(s.entries)-1] = glyphs
	} else {
		s.entries = append(s.entries, glyphs)
	}
	s.current = len(s.entries) - 1
	return nil
}

// HasCustom reports whether a custom palette has been appended
func (s *Set) HasCustom() bool {
	return len(s.entries) > len(builtin)
}

// BuiltinCount returns the number of fixed palettes
func BuiltinCount() int {
	return len(builtin)
}

// Len returns the number of selectable palettes
func (s *Set) Len() int {
	return len(s.entries)
}

// Index returns the current selection
func (s *Set) Index() int {
	return s.current
}

// Select sets the current palette; out-of-range indices are rejected
func (s *Set) Select(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("palette index %d out of range [0,%d)", i, len(s.entries))
	}
	s.current = i
	return nil
}

// Cycle advances the selection by delta, wrapping at both ends
func (s *Set) Cycle(delta int) {
	n := len(s.entries)
	s.current = (s.current + delta%n + n) % n
}

// Current returns the active glyph ramp
func (s *Set) Current() []rune {
	return s.entries[s.current]
}
