package quantizr

// QuantizeResult owns a built Colormap and the caller-controlled dithering
// level used by RemapImage. RemapImage is stateless between calls: remapping
// the same image twice with the same dithering level produces identical
// output.
type QuantizeResult struct {
	colormap       *Colormap
	ditheringLevel float32
}

// Quantize builds a palette for a single image. It is equivalent to
// building a Histogram from img and calling QuantizeHistogram.
func Quantize(img *Image, opts *Options) *QuantizeResult {
	hist := NewHistogram()
	hist.AddImage(img)
	return QuantizeHistogram(hist, opts)
}

// QuantizeHistogram builds a palette of at most opts.MaxColors() colors
// (fewer, if hist has fewer unique colors) from hist.
func QuantizeHistogram(hist *Histogram, opts *Options) *QuantizeResult {
	entries := hist.orderedEntries()
	budget := splitterBudget(opts)

	var cm *Colormap
	if len(entries) <= budget {
		cm = colormapFromHistogram(entries)
	} else {
		root := newCluster(entries)
		clusters := splitClusters(root, budget)
		cm = colormapFromClusters(clusters)
	}

	if opts.AddFixedColors {
		cm = appendFixedColors(cm, opts.maxColors)
	}

	return &QuantizeResult{colormap: cm, ditheringLevel: 1.0}
}

// splitterBudget returns the palette size the splitter should target,
// reserving slots for AddFixedColors when set.
func splitterBudget(opts *Options) int {
	budget := opts.maxColors
	if opts.AddFixedColors {
		budget -= len(fixedColors)
	}
	if budget < 1 {
		budget = 1
	}
	return budget
}

// appendFixedColors adds the bonus fixed-color set to cm, dropping fixed
// colors that would take the palette past limit (the caller's max colors),
// and rebuilds the search index.
func appendFixedColors(cm *Colormap, limit int) *Colormap {
	points := append([][4]float32{}, cm.points...)
	weights := append([]float32{}, cm.weights...)

	for _, fc := range fixedColors {
		if len(points) >= limit {
			break
		}
		points = append(points, fc.point4())
		weights = append(weights, 0)
	}

	sortByAlpha(points, weights)
	return &Colormap{
		points:  points,
		weights: weights,
		tree:    buildVPTree(points, weights),
		Error:   cm.Error,
	}
}

// SetDitheringLevel sets the strength of Floyd-Steinberg error diffusion
// used by RemapImage. level must be in [0, 1]; 0 disables dithering
// entirely.
func (r *QuantizeResult) SetDitheringLevel(level float32) error {
	if level < 0 || level > 1 {
		return errOutOfRange()
	}
	r.ditheringLevel = level
	return nil
}

// QuantizationError returns the mean squared color error introduced by
// reducing the source histogram to this palette (0 for the exact-fit fast
// path).
func (r *QuantizeResult) QuantizationError() float32 { return r.colormap.Error }

// Palette returns the built palette.
func (r *QuantizeResult) Palette() *Palette { return r.colormap.Palette() }

// RemapImage writes one palette index per pixel of img into out, which
// must be at least img.Width*img.Height bytes long.
func (r *QuantizeResult) RemapImage(img *Image, out []byte) error {
	if len(out) < img.pixelCount() {
		return errBufferSmall()
	}
	if r.ditheringLevel == 0 {
		remapNoDither(img, r.colormap, out)
	} else {
		remapDither(img, r.colormap, r.ditheringLevel, out)
	}
	return nil
}
