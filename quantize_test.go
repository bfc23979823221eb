package quantizr

import "testing"

func TestQuantizeSinglePixel(t *testing.T) {
	img := makeImage(t, 1, 1, []Color{{R: 255, G: 0, B: 0, A: 255}})
	opts := NewOptions()

	result := Quantize(img, opts)
	pal := result.Palette()
	if pal.Count != 1 {
		t.Fatalf("palette count = %d, want 1", pal.Count)
	}
	if pal.Entries[0] != (Color{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("palette entry = %+v, want the source pixel unchanged", pal.Entries[0])
	}
	if result.QuantizationError() != 0 {
		t.Errorf("error = %v, want 0 for the exact-fit fast path", result.QuantizationError())
	}

	out := make([]byte, 1)
	if err := result.SetDitheringLevel(0); err != nil {
		t.Fatalf("SetDitheringLevel: %v", err)
	}
	if err := result.RemapImage(img, out); err != nil {
		t.Fatalf("RemapImage: %v", err)
	}
	if out[0] != 0 {
		t.Errorf("remap index = %d, want 0", out[0])
	}
}

func TestQuantizeTransparentAndOpaquePair(t *testing.T) {
	img := makeImage(t, 2, 1, []Color{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 10, G: 20, B: 30, A: 0},
	})
	opts := NewOptions()
	result := Quantize(img, opts)

	pal := result.Palette()
	if pal.Count != 2 {
		t.Fatalf("palette count = %d, want 2", pal.Count)
	}
	// Ascending-alpha sort puts the normalized transparent entry first.
	if pal.Entries[0] != (Color{}) {
		t.Errorf("palette[0] = %+v, want zero color first (ascending alpha sort)", pal.Entries[0])
	}
	if pal.Entries[1] != (Color{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("palette[1] = %+v, want the opaque red pixel", pal.Entries[1])
	}
}

func TestQuantizeFourDistinctPrimariesInsertionOrder(t *testing.T) {
	red := Color{R: 255, G: 0, B: 0, A: 255}
	green := Color{R: 0, G: 255, B: 0, A: 255}
	blue := Color{R: 0, G: 0, B: 255, A: 255}
	white := Color{R: 255, G: 255, B: 255, A: 255}

	img := makeImage(t, 2, 2, []Color{red, green, blue, white})
	opts := NewOptions()
	result := Quantize(img, opts)

	pal := result.Palette()
	if pal.Count != 4 {
		t.Fatalf("palette count = %d, want 4", pal.Count)
	}
	want := []Color{red, green, blue, white}
	for i, w := range want {
		if pal.Entries[i] != w {
			t.Errorf("palette[%d] = %+v, want %+v (insertion-stable order, all alpha=255 ties)", i, pal.Entries[i], w)
		}
	}
}

func TestQuantizeAllTransparentCollapses(t *testing.T) {
	img := makeImage(t, 3, 1, []Color{
		{R: 1, G: 2, B: 3, A: 0},
		{R: 4, G: 5, B: 6, A: 0},
		{R: 7, G: 8, B: 9, A: 0},
	})
	opts := NewOptions()
	result := Quantize(img, opts)

	pal := result.Palette()
	if pal.Count != 1 {
		t.Fatalf("palette count = %d, want 1", pal.Count)
	}
	if pal.Entries[0] != (Color{}) {
		t.Errorf("palette[0] = %+v, want zero color", pal.Entries[0])
	}
}

func TestRemapImageBufferTooSmall(t *testing.T) {
	img := makeImage(t, 2, 1, []Color{{A: 255}, {R: 1, A: 255}})
	result := Quantize(img, NewOptions())

	out := make([]byte, 1)
	err := result.RemapImage(img, out)
	if err == nil {
		t.Fatal("expected BufferTooSmall error, got nil")
	}
	qerr, ok := err.(*Error)
	if !ok || qerr.Kind != BufferTooSmall {
		t.Errorf("err = %v, want BufferTooSmall", err)
	}
}

func TestSetMaxColorsValidation(t *testing.T) {
	opts := NewOptions()
	if err := opts.SetMaxColors(1); err == nil {
		t.Error("expected error for max_colors=1")
	}
	if err := opts.SetMaxColors(257); err == nil {
		t.Error("expected error for max_colors=257")
	}
	if err := opts.SetMaxColors(16); err != nil {
		t.Errorf("SetMaxColors(16) unexpected error: %v", err)
	}
	if opts.MaxColors() != 16 {
		t.Errorf("MaxColors() = %d, want 16", opts.MaxColors())
	}
}

func TestSetDitheringLevelValidation(t *testing.T) {
	img := makeImage(t, 1, 1, []Color{{A: 255}})
	result := Quantize(img, NewOptions())

	if err := result.SetDitheringLevel(-0.1); err == nil {
		t.Error("expected error for negative dithering level")
	}
	if err := result.SetDitheringLevel(1.1); err == nil {
		t.Error("expected error for dithering level > 1")
	}
	if err := result.SetDitheringLevel(0.5); err != nil {
		t.Errorf("SetDitheringLevel(0.5) unexpected error: %v", err)
	}
}

func TestQuantizeGradientReducesToBudget(t *testing.T) {
	pixels := make([]Color, 4)
	for i := range pixels {
		v := uint8(i * 85)
		pixels[i] = Color{R: v, G: v, B: v, A: 255}
	}
	img := makeImage(t, 4, 1, pixels)

	opts := NewOptions()
	if err := opts.SetMaxColors(2); err != nil {
		t.Fatalf("SetMaxColors: %v", err)
	}
	result := Quantize(img, opts)
	pal := result.Palette()
	if pal.Count > 2 {
		t.Fatalf("palette count = %d, want <= 2", pal.Count)
	}

	out := make([]byte, 4)
	if err := result.RemapImage(img, out); err != nil {
		t.Fatalf("RemapImage: %v", err)
	}
	for _, idx := range out {
		if int(idx) >= pal.Count {
			t.Errorf("remap index %d out of range for palette count %d", idx, pal.Count)
		}
	}
}

func TestQuantizeZeroDimensions(t *testing.T) {
	img, err := NewImage(nil, 0, 0)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	result := Quantize(img, NewOptions())
	if result.Palette().Count != 0 {
		t.Errorf("palette count = %d, want 0 for an empty image", result.Palette().Count)
	}
	out := make([]byte, 0)
	if err := result.RemapImage(img, out); err != nil {
		t.Errorf("RemapImage on empty image: %v", err)
	}
}

func TestQuantizeAddFixedColors(t *testing.T) {
	img := makeImage(t, 1, 1, []Color{{R: 10, G: 10, B: 10, A: 255}})
	opts := NewOptions()
	opts.AddFixedColors = true

	result := Quantize(img, opts)
	pal := result.Palette()
	if pal.Count < 2 {
		t.Fatalf("palette count = %d, want at least the source color plus a fixed color", pal.Count)
	}

	foundWhite := false
	for i := 0; i < pal.Count; i++ {
		if pal.Entries[i] == (Color{R: 255, G: 255, B: 255, A: 255}) {
			foundWhite = true
		}
	}
	if !foundWhite {
		t.Error("expected fixed white entry to be present in the palette")
	}
}
