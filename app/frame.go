package app

// Frame size bounds enforced before any computation. A degenerate width would
// poison the viewport through the snap division; an unbounded one would let a
// single allocation take the process down.
const (
	MinFrameSize   = 4
	MaxFrameWidth  = 1000
	MaxFrameHeight = 2000
)

// clampFrame bounds a requested frame size to the supported range. Applied to
// terminal dimensions on entry to the event loop and to batch sizes, so the
// core packages only ever see usable dimensions.
func clampFrame(w, h int) (int, int) {
	if w < MinFrameSize {
		w = MinFrameSize
	}
	if w > MaxFrameWidth {
		w = MaxFrameWidth
	}
	if h < MinFrameSize {
		h = MinFrameSize
	}
	if h > MaxFrameHeight {
		h = MaxFrameHeight
	}
	return w, h
}
