package fractal

// Mode selects which escape-time set the kernel iterates
type Mode uint8

const (
	ModeMandelbrot Mode = iota
	ModeJulia
)

// String returns human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeMandelbrot:
		return "Mandelbrot"
	case ModeJulia:
		return "Julia"
	default:
		return "Unknown"
	}
}

// Escape radius squared; |z| > 2 guarantees divergence
const bailout = 4.0

// EscapeTime returns the number of z←z²+c iterations before the orbit of the
// plane point (x, y) escapes, or maxIter if it never does (interior point).
//
// Mandelbrot: z₀ = 0, c = point. Julia: z₀ = point, c = the fixed constant.
//
// Pure function over its arguments; safe to call concurrently. The complex
// square is unrolled over float64 pairs to keep the inner loop free of
// complex128 call overhead.
func EscapeTime(x, y float64, mode Mode, juliaC complex128, maxIter int) int {
	var zr, zi, cr, ci float64

	if mode == ModeJulia {
		zr, zi = x, y
		cr, ci = real(juliaC), imag(juliaC)
	} else {
		cr, ci = x, y
	}

	n := 0
	for n < maxIter {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 > bailout {
			break
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		n++
	}
	return n
}
