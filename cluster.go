package quantizr

// Cluster is a contiguous slice of histogram entries together with the
// weighted statistics the splitter needs to prioritize and partition it:
// the weighted mean, the per-channel mean absolute deviation of the widest
// channel (chanDiff), and which channel is widest.
type Cluster struct {
	entries    []HistogramEntry
	mean       [4]float32
	weight     float32
	chanDiff   float32
	widestChan int
}

// newCluster builds a Cluster over entries (which it may reorder in place
// during split) and computes its statistics.
func newCluster(entries []HistogramEntry) *Cluster {
	c := &Cluster{entries: entries}
	c.recompute()
	return c
}

func (c *Cluster) recompute() {
	if len(c.entries) == 0 {
		*c = Cluster{entries: c.entries}
		return
	}

	var sum [4]float64
	var weight float64
	for _, e := range c.entries {
		w := float64(e.Weight)
		p := e.Color.point4()
		sum[0] += float64(p[0]) * w
		sum[1] += float64(p[1]) * w
		sum[2] += float64(p[2]) * w
		sum[3] += float64(p[3]) * w
		weight += w
	}

	var mean [4]float32
	for ch := 0; ch < 4; ch++ {
		mean[ch] = float32(sum[ch] / weight)
	}

	var diffSum [4]float64
	for _, e := range c.entries {
		w := float64(e.Weight)
		p := e.Color.point4()
		for ch := 0; ch < 4; ch++ {
			d := float64(p[ch]) - float64(mean[ch])
			if d < 0 {
				d = -d
			}
			diffSum[ch] += d * w
		}
	}

	widest := 0
	var maxDiff float64
	for ch := 0; ch < 4; ch++ {
		d := diffSum[ch] / weight
		if d > maxDiff {
			maxDiff = d
			widest = ch
		}
	}

	c.mean = mean
	c.weight = float32(weight)
	c.chanDiff = float32(maxDiff)
	c.widestChan = widest
}

// split partitions entries along widestChan relative to mean[widestChan]
// using a three-way Dutch-flag partition in place, yielding three
// contiguous regions: < mean, == mean, > mean. The weighted sums of the
// strictly-less and strictly-greater regions decide the split point: by
// default the left child is exactly the strictly-less region and the == band
// joins the right (>= mean) side; if the strictly-less side carries more
// weight than the strictly-greater side, the split point moves back one slot,
// so the entry at the end of the strictly-less region also goes to the right
// child, to keep the two children from drifting too far apart in total
// weight. The == band joins the right side in both cases.
//
// Either returned cluster may be empty; callers must handle that case.
func (c *Cluster) split() (*Cluster, *Cluster) {
	ch := c.widestChan
	pivot := c.mean[ch]
	entries := c.entries

	lt, i, gt := 0, 0, len(entries)-1
	var ltWeight, gtWeight uint64
	for i <= gt {
		v := entries[i].Color.point4()[ch]
		switch {
		case v < pivot:
			entries[lt], entries[i] = entries[i], entries[lt]
			ltWeight += uint64(entries[lt].Weight)
			lt++
			i++
		case v > pivot:
			gtWeight += uint64(entries[i].Weight)
			entries[gt], entries[i] = entries[i], entries[gt]
			gt--
		default:
			i++
		}
	}

	splitPos := lt
	if ltWeight > gtWeight {
		splitPos = lt - 1
	}

	left := newCluster(entries[:splitPos])
	right := newCluster(entries[splitPos:])
	return left, right
}
