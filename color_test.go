package quantizr

import "testing"

func TestColorKeyDistinguishesColors(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 40}
	k := c.key()
	other := Color{R: 10, G: 20, B: 30, A: 40}
	if other.key() != k {
		t.Fatalf("equal colors produced different keys: %d vs %d", k, other.key())
	}

	different := Color{R: 10, G: 20, B: 30, A: 41}
	if different.key() == k {
		t.Fatalf("different colors produced the same key")
	}
}

func TestNormalizeTransparent(t *testing.T) {
	cases := []Color{
		{R: 255, G: 0, B: 0, A: 0},
		{R: 1, G: 2, B: 3, A: 0},
		{R: 0, G: 0, B: 0, A: 0},
	}
	for _, c := range cases {
		got := normalizeTransparent(c)
		if got != (Color{}) {
			t.Errorf("normalizeTransparent(%+v) = %+v, want zero color", c, got)
		}
	}

	opaque := Color{R: 1, G: 2, B: 3, A: 255}
	if normalizeTransparent(opaque) != opaque {
		t.Errorf("normalizeTransparent changed an opaque color")
	}
}

func TestClampChannelRoundsAndClamps(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-5, 0},
		{0.4, 0},
		{0.5, 0},   // round-to-even: 0.5 -> 0
		{1.5, 2},   // round-to-even: 1.5 -> 2
		{254.6, 255},
		{300, 255},
	}
	for _, tc := range tests {
		if got := clampChannel(tc.in); got != tc.want {
			t.Errorf("clampChannel(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
