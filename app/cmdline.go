package app

import (
	"fmt"
	"strings"

	"github.com/marzipan-term/marzipan/fractal"
	"github.com/marzipan-term/marzipan/palette"
)

// Cmdline builds a command invocation that recreates the current viewport and
// display state when parsed back by the CLI. Bounds carry 9 significant
// digits, enough to survive a print/parse round trip at interactive zoom
// depths. Shown in the header and embedded in export files.
func (s *Session) Cmdline() string {
	var b strings.Builder

	fmt.Fprintf(&b, "marzipan -x=%.9g,%.9g -y=%.9g,%.9g -i %d",
		s.View.XMin, s.View.XMax, s.View.YMin, s.View.YMax, s.View.MaxIter)

	if !s.Opts.Color {
		b.WriteString(" --no-color")
	}
	if !s.Opts.Modulo {
		b.WriteString(" -m lin")
	}
	if s.Opts.HalfBlock {
		b.WriteString(" --half-block")
	}
	if s.View.Mode == fractal.ModeJulia {
		fmt.Fprintf(&b, " -j=%.9g,%.9g", real(s.View.JuliaC), imag(s.View.JuliaC))
	}

	fmt.Fprintf(&b, " --colors %d", s.Schemes.Index()+1)

	if s.Palettes.Index() < palette.BuiltinCount() {
		fmt.Fprintf(&b, " --palette %d", s.Palettes.Index()+1)
	} else {
		fmt.Fprintf(&b, " --symbols %s", shellQuote(string(s.Palettes.Current())))
	}

	return b.String()
}

// shellQuote single-quotes a custom symbol string so the command line stays
// copy-pasteable into a shell
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
