package quantizr

import "math"

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// key packs the four channels into a u32 used as the histogram's map key.
// The exact bit layout is an implementation detail; only distinctness
// across colors is observable.
func (c Color) key() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// point4 returns the color's coordinate in the 4-D float space used by
// cluster statistics, the VP-tree and k-means refinement.
func (c Color) point4() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// colorFromPoint4 rounds each channel to the nearest integer (ties to even)
// and clamps to [0, 255].
func colorFromPoint4(p [4]float32) Color {
	return Color{
		R: clampChannel(p[0]),
		G: clampChannel(p[1]),
		B: clampChannel(p[2]),
		A: clampChannel(p[3]),
	}
}

func clampChannel(v float32) uint8 {
	v = float32(math.RoundToEven(float64(v)))
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// normalizeTransparent collapses any fully transparent pixel onto the
// canonical (0,0,0,0) color, regardless of its RGB channels.
func normalizeTransparent(c Color) Color {
	if c.A == 0 {
		return Color{}
	}
	return c
}

func sqDist4(a, b [4]float32) float32 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	d3 := a[3] - b[3]
	return d0*d0 + d1*d1 + d2*d2 + d3*d3
}

func sqMag4(v [4]float32) float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}
