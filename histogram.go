package quantizr

import "math"

// maxCapacityHint bounds the map pre-sizing below so a single pathological
// image can't force a multi-gigabyte allocation up front.
const maxCapacityHint = 512 * 512

// HistogramEntry pairs a color with its accumulated weight. Weight is
// always >= 1 and saturates at math.MaxUint32 rather than wrapping.
type HistogramEntry struct {
	Color  Color
	Weight uint32
}

// Histogram accumulates weighted RGBA occurrence counts across one or more
// images. Fully transparent pixels collapse onto a single (0,0,0,0) bucket
// regardless of their RGB channels.
type Histogram struct {
	entries map[uint32]*HistogramEntry
	order   []uint32
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{entries: make(map[uint32]*HistogramEntry)}
}

// AddImage folds every pixel of img into the histogram. Calling AddImage
// for the same set of images in a different order produces an equal
// histogram (same colors, same weights); only the bookkeeping order used
// to break sort ties downstream can differ.
func (h *Histogram) AddImage(img *Image) {
	count := img.pixelCount()
	if count == 0 {
		return
	}

	if len(h.entries) == 0 {
		h.grow(count / 7)
	} else {
		h.grow(count / 21)
	}

	for i := 0; i < count; i++ {
		c := normalizeTransparent(img.at(i))
		key := c.key()
		if e, ok := h.entries[key]; ok {
			if e.Weight < math.MaxUint32 {
				e.Weight++
			}
			continue
		}
		h.entries[key] = &HistogramEntry{Color: c, Weight: 1}
		h.order = append(h.order, key)
	}
}

// grow reallocates the backing map with extra headroom so AddImage doesn't
// pay for a rehash storm on every call for large images.
func (h *Histogram) grow(extra int) {
	if extra <= 0 {
		return
	}
	target := len(h.entries) + extra
	if target > maxCapacityHint {
		target = maxCapacityHint
	}
	if target <= len(h.entries) {
		return
	}
	grown := make(map[uint32]*HistogramEntry, target)
	for k, v := range h.entries {
		grown[k] = v
	}
	h.entries = grown
}

// Len reports the number of unique colors currently recorded.
func (h *Histogram) Len() int { return len(h.entries) }

// orderedEntries returns histogram entries in first-insertion order. This
// ordering is bookkeeping for the colormap's alpha-sort tie-break only; it
// has no bearing on the histogram's own content equality.
func (h *Histogram) orderedEntries() []HistogramEntry {
	out := make([]HistogramEntry, 0, len(h.order))
	for _, k := range h.order {
		out = append(out, *h.entries[k])
	}
	return out
}
