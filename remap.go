package quantizr

// remapNoDither writes each pixel's nearest palette index directly into
// out, with no error diffusion.
func remapNoDither(img *Image, cm *Colormap, out []byte) {
	n := img.pixelCount()
	for i := 0; i < n; i++ {
		c := normalizeTransparent(img.at(i))
		out[i] = byte(cm.nearestIndex(c))
	}
}

// remapDither runs serpentine Floyd-Steinberg error diffusion at the given
// level (0 excluded; callers route level 0 to remapNoDither).
//
// Two f32x4 error accumulator rows carry diffused error across and between
// rows: errorCurr holds error still to be applied to the row in progress,
// errorNext accumulates error for the row below. Each row is w+2 wide so
// index err_ind = x+1 can always spill one column either side into a
// sentinel slot without a bounds check; those sentinel slots are never
// read back as a pixel's own error.
//
// Traversal direction alternates every row (serpentine) so diffusion
// doesn't develop a directional bias; the first row runs left-to-right.
func remapDither(img *Image, cm *Colormap, ditheringLevel float32, out []byte) {
	w, h := img.Width, img.Height
	if w == 0 || h == 0 {
		return
	}
	threshold := cm.Error
	coeff := ditheringLevel * (15.0 / 16.0) / 16.0

	rowLen := w + 2
	errorCurr := make([][4]float32, rowLen)
	errorNext := make([][4]float32, rowLen)

	reverse := true
	for y := 0; y < h; y++ {
		reverse = !reverse

		process := func(x int) {
			errInd := x + 1

			var back, mid, fwd int
			if reverse {
				back, mid, fwd = errInd+1, errInd, errInd-1
			} else {
				back, mid, fwd = errInd-1, errInd, errInd+1
			}

			acc := errorCurr[errInd]
			if sqMag4(acc) > threshold {
				acc[0] *= 0.8
				acc[1] *= 0.8
				acc[2] *= 0.8
				acc[3] *= 0.8
				errorCurr[errInd] = acc
			}

			src := normalizeTransparent(img.at(y*w + x))
			sp := src.point4()
			dith := [4]float32{
				sp[0] + acc[0],
				sp[1] + acc[1],
				sp[2] + acc[2],
				sp[3] + acc[3],
			}

			idx, palettePoint := cm.nearestIndexPoint(dith)
			out[y*w+x] = byte(idx)

			e := [4]float32{
				dith[0] - palettePoint[0],
				dith[1] - palettePoint[1],
				dith[2] - palettePoint[2],
				dith[3] - palettePoint[3],
			}
			if sqMag4(e) > threshold {
				e[0] *= 0.75
				e[1] *= 0.75
				e[2] *= 0.75
				e[3] *= 0.75
			}
			for c := 0; c < 4; c++ {
				e[c] *= coeff
			}

			for c := 0; c < 4; c++ {
				errorNext[back][c] += e[c] * 3
				errorNext[mid][c] += e[c] * 5
				errorNext[fwd][c] += e[c] * 1
				errorCurr[fwd][c] += e[c] * 7
			}
		}

		if reverse {
			for x := w - 1; x >= 0; x-- {
				process(x)
			}
		} else {
			for x := 0; x < w; x++ {
				process(x)
			}
		}

		errorCurr, errorNext = errorNext, errorCurr
		for i := range errorNext {
			errorNext[i] = [4]float32{}
		}
	}
}
