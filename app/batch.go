package app

import (
	"io"

	"github.com/marzipan-term/marzipan/render"
)

// RunBatch computes one frame at the given view size and writes it to out as
// an ANSI stream, without entering the alternate screen. Used by --batch and
// suitable for piping or redirecting. Sizes are clamped to the supported
// frame range before the computation.
func RunBatch(s *Session, viewW, viewH int, out io.Writer) error {
	viewW, viewH = clampFrame(viewW, viewH)
	s.Recompute(viewW, viewH)
	return render.Encode(out, s.Frame())
}
