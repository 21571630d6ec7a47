package app

import "testing"

func TestClampFrame(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"In range untouched", 80, 24, 80, 24},
		{"Zero size", 0, 0, MinFrameSize, MinFrameSize},
		{"Negative size", -3, -7, MinFrameSize, MinFrameSize},
		{"Below minimum", 2, 3, MinFrameSize, MinFrameSize},
		{"At minimum", MinFrameSize, MinFrameSize, MinFrameSize, MinFrameSize},
		{"Width capped", 5000, 24, MaxFrameWidth, 24},
		{"Height capped", 80, 99999, 80, MaxFrameHeight},
		{"Both capped", 1 << 20, 1 << 20, MaxFrameWidth, MaxFrameHeight},
		{"At maximum", MaxFrameWidth, MaxFrameHeight, MaxFrameWidth, MaxFrameHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := clampFrame(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("clampFrame(%d,%d): expected (%d,%d), got (%d,%d)",
					tt.w, tt.h, tt.wantW, tt.wantH, w, h)
			}
		})
	}
}
