package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestWritePlain(t *testing.T) {
	g := grid(3, 30, []int32{0, 5, 30})
	glyphs := []rune(" .:#")

	var buf bytes.Buffer
	if err := WritePlain(&buf, g, Options{Modulo: true}, glyphs, "marzipan -i 30"); err != nil {
		t.Fatalf("WritePlain: %v", err)
	}

	want := "# marzipan -i 30\n . \n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWritePlainNoHeader(t *testing.T) {
	g := grid(1, 30, []int32{30})

	var buf bytes.Buffer
	if err := WritePlain(&buf, g, Options{Modulo: true}, []rune(" #"), ""); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "#") && buf.String() != " \n" {
		t.Errorf("Empty header must not emit a comment line, got %q", buf.String())
	}
}

func TestWritePlainHalfBlockAverages(t *testing.T) {
	// Half-block exports have no second color channel, so each row pair
	// collapses to the glyph of the averaged count
	g := grid(2, 30,
		[]int32{4, 30},
		[]int32{8, 30},
	)
	glyphs := []rune("0123456789")

	var buf bytes.Buffer
	opts := Options{Modulo: true, HalfBlock: true}
	if err := WritePlain(&buf, g, opts, glyphs, ""); err != nil {
		t.Fatal(err)
	}

	// (4+8)/2 = 6; both interior stays the fill glyph
	want := "6 \n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteColoredForcesColor(t *testing.T) {
	g := grid(1, 30, []int32{5})

	var buf bytes.Buffer
	opts := Options{Color: false, Modulo: true}
	if err := WriteColored(&buf, g, opts, []rune(" .:#"), testRamp, ""); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[38;5;105m.\x1b[0m\n"
	if buf.String() != want {
		t.Errorf("Interactive color toggle must not leak into colored exports: expected %q, got %q", want, buf.String())
	}
}

func TestComposeHalfBlockExportCollapse(t *testing.T) {
	// maxIter 32 with the 16-entry ramp: counts 3 and 19 map to the same
	// ramp color under modulo, so the pair collapses to a full block
	g := grid(4, 32,
		[]int32{3, 32, 3, 3},
		[]int32{19, 5, 32, 7},
	)

	rows := composeHalfBlockExport(g, Options{Modulo: true}, testRamp)

	// A single interior sample carries the sentinel color 0, which differs
	// from any ramp entry here, so those pairs keep the fg/bg form with the
	// interior side black
	want := []Cell{
		{Rune: FullBlock, Fg: 103, Attrs: AttrFg},
		{Rune: UpperHalf, Fg: 0, Bg: 105, Attrs: AttrFg | AttrBg},
		{Rune: UpperHalf, Fg: 103, Bg: 0, Attrs: AttrFg | AttrBg},
		{Rune: UpperHalf, Fg: 103, Bg: 107, Attrs: AttrFg | AttrBg},
	}
	for i, c := range rows[0] {
		if c != want[i] {
			t.Errorf("Cell %d: expected %+v, got %+v", i, want[i], c)
		}
	}
}

func TestComposeHalfBlockExportBothInterior(t *testing.T) {
	g := grid(1, 30, []int32{30}, []int32{30})

	rows := composeHalfBlockExport(g, Options{Modulo: true}, testRamp)

	if rows[0][0] != (Cell{Rune: Fill}) {
		t.Errorf("Expected blank cell for interior pair, got %+v", rows[0][0])
	}
}

func TestWriteColoredHalfBlockEndToEnd(t *testing.T) {
	g := grid(2, 32,
		[]int32{3, 19},
		[]int32{19, 3},
	)

	var buf bytes.Buffer
	opts := Options{Modulo: true, HalfBlock: true}
	if err := WriteColored(&buf, g, opts, nil, testRamp, "cmd"); err != nil {
		t.Fatal(err)
	}

	// Equal colors collapse both cells to one full-block run
	want := "# cmd\n\x1b[38;5;103m██\x1b[0m\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
