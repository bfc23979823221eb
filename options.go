package quantizr

// Options controls palette construction parameters accepted by Quantize and
// QuantizeHistogram.
type Options struct {
	maxColors int

	// AddFixedColors reserves slots in every generated palette for a small
	// bonus set of common colors (white, black, red, green, blue). Off by
	// default; turning it on never changes the algorithm used to build the
	// rest of the palette, only its capacity.
	AddFixedColors bool
}

// fixedColors is the bonus palette appended when Options.AddFixedColors is
// set.
var fixedColors = [5]Color{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
}

// NewOptions returns Options defaulting to a 256-color budget.
func NewOptions() *Options {
	return &Options{maxColors: 256}
}

// MaxColors returns the current palette size budget.
func (o *Options) MaxColors() int { return o.maxColors }

// SetMaxColors sets the maximum palette size. n must be in [2, 256].
func (o *Options) SetMaxColors(n int) error {
	if n < 2 || n > 256 {
		return errOutOfRange()
	}
	o.maxColors = n
	return nil
}
