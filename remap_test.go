package quantizr

import "testing"

func TestRemapNoDitherPicksNearest(t *testing.T) {
	entries := []HistogramEntry{
		{Color: Color{R: 0, G: 0, B: 0, A: 255}, Weight: 1},
		{Color: Color{R: 255, G: 255, B: 255, A: 255}, Weight: 1},
	}
	cm := colormapFromHistogram(entries)

	img := makeImage(t, 2, 1, []Color{
		{R: 10, G: 10, B: 10, A: 255},
		{R: 240, G: 240, B: 240, A: 255},
	})

	out := make([]byte, 2)
	remapNoDither(img, cm, out)

	blackIdx := cm.nearestIndex(Color{A: 255})
	whiteIdx := cm.nearestIndex(Color{R: 255, G: 255, B: 255, A: 255})
	if out[0] != byte(blackIdx) {
		t.Errorf("out[0] = %d, want %d (nearest to black)", out[0], blackIdx)
	}
	if out[1] != byte(whiteIdx) {
		t.Errorf("out[1] = %d, want %d (nearest to white)", out[1], whiteIdx)
	}
}

func TestRemapDitherStaysWithinPaletteBounds(t *testing.T) {
	entries := []HistogramEntry{
		{Color: Color{R: 0, G: 0, B: 0, A: 255}, Weight: 1},
		{Color: Color{R: 128, G: 128, B: 128, A: 255}, Weight: 1},
		{Color: Color{R: 255, G: 255, B: 255, A: 255}, Weight: 1},
	}
	cm := colormapFromHistogram(entries)

	pixels := make([]Color, 16)
	for i := range pixels {
		v := uint8((i * 17) % 256)
		pixels[i] = Color{R: v, G: v, B: v, A: 255}
	}
	img := makeImage(t, 16, 1, pixels)

	out := make([]byte, 16)
	remapDither(img, cm, 1.0, out)

	for i, idx := range out {
		if int(idx) >= cm.Count() {
			t.Errorf("out[%d] = %d out of range for palette count %d", i, idx, cm.Count())
		}
	}
}

func TestRemapDitherTransparentPixelsNormalized(t *testing.T) {
	entries := []HistogramEntry{
		{Color: Color{}, Weight: 1},
		{Color: Color{R: 255, G: 0, B: 0, A: 255}, Weight: 1},
	}
	cm := colormapFromHistogram(entries)

	imgA := makeImage(t, 2, 1, []Color{
		{R: 1, G: 2, B: 3, A: 0},
		{R: 255, G: 0, B: 0, A: 255},
	})
	imgB := makeImage(t, 2, 1, []Color{
		{R: 0, G: 0, B: 0, A: 0},
		{R: 255, G: 0, B: 0, A: 255},
	})

	outA := make([]byte, 2)
	outB := make([]byte, 2)
	remapDither(imgA, cm, 1.0, outA)
	remapDither(imgB, cm, 1.0, outB)

	if outA[0] != outB[0] {
		t.Errorf("transparent pixels with different RGB mapped to different indices: %d vs %d", outA[0], outB[0])
	}
}
