package quantizr

import "sort"

// Colormap owns a constructed palette alongside the VP-tree search index
// built over it and the scalar quantization error produced while building
// it.
type Colormap struct {
	points  [][4]float32
	weights []float32
	tree    *vpTree
	Error   float32
}

// colormapFromHistogram implements the fast path: when the number of
// unique histogram colors is already <= the palette budget, every
// histogram entry becomes its own palette entry verbatim and the
// quantization error is exactly 0.
func colormapFromHistogram(entries []HistogramEntry) *Colormap {
	points := make([][4]float32, len(entries))
	weights := make([]float32, len(entries))
	for i, e := range entries {
		points[i] = e.Color.point4()
		weights[i] = float32(e.Weight)
	}
	sortByAlpha(points, weights)
	return &Colormap{
		points:  points,
		weights: weights,
		tree:    buildVPTree(points, weights),
	}
}

// colormapFromClusters builds a palette from the splitter's clusters by
// seeding one palette point per cluster mean, then refining with up to two
// passes of weighted k-means (reassign every histogram entry to its
// nearest current palette point via the VP-tree, then replace each palette
// point by its assigned entries' weighted mean). A second pass only runs
// if the first pass's mean squared error stays above a small threshold.
func colormapFromClusters(clusters []*Cluster) *Colormap {
	n := len(clusters)
	points := make([][4]float32, n)
	weights := make([]float32, n)
	var totalWeight float64
	for i, c := range clusters {
		points[i] = c.mean
		weights[i] = c.weight
		totalWeight += float64(c.weight)
	}

	tree := buildVPTree(points, weights)
	points, weights, errVal := kmeansPass(clusters, tree, points, totalWeight)

	if errVal > 0.001 {
		tree = buildVPTree(points, weights)
		points, weights, errVal = kmeansPass(clusters, tree, points, totalWeight)
	}

	for i := range points {
		points[i] = clampRoundPoint(points[i])
	}
	sortByAlpha(points, weights)

	return &Colormap{
		points:  points,
		weights: weights,
		tree:    buildVPTree(points, weights),
		Error:   errVal,
	}
}

// kmeansPass assigns every histogram entry in every cluster to its nearest
// current palette point via tree, then recomputes each palette point as
// the weighted mean of its assigned entries. Points with no assigned
// weight are left unchanged. It returns the updated points, the updated
// per-point weights (used to rebuild the tree for a possible second pass)
// and the resulting mean squared error.
func kmeansPass(clusters []*Cluster, tree *vpTree, points [][4]float32, totalWeight float64) ([][4]float32, []float32, float32) {
	n := len(points)
	sums := make([][4]float64, n)
	outWeights := make([]float64, n)
	var totalErrSq float64

	for _, c := range clusters {
		for _, e := range c.entries {
			p := e.Color.point4()
			w := float64(e.Weight)
			res := tree.findNearest(p, points)
			k := res.idx
			sums[k][0] += float64(p[0]) * w
			sums[k][1] += float64(p[1]) * w
			sums[k][2] += float64(p[2]) * w
			sums[k][3] += float64(p[3]) * w
			outWeights[k] += w
			totalErrSq += float64(res.distance) * float64(res.distance) * w
		}
	}

	newPoints := make([][4]float32, n)
	newWeights := make([]float32, n)
	for k := 0; k < n; k++ {
		newWeights[k] = float32(outWeights[k])
		if outWeights[k] > 0 {
			newPoints[k] = [4]float32{
				float32(sums[k][0] / outWeights[k]),
				float32(sums[k][1] / outWeights[k]),
				float32(sums[k][2] / outWeights[k]),
				float32(sums[k][3] / outWeights[k]),
			}
		} else {
			newPoints[k] = points[k]
		}
	}

	var errVal float32
	if totalWeight > 0 {
		errVal = float32(totalErrSq / totalWeight)
	}
	return newPoints, newWeights, errVal
}

func clampRoundPoint(p [4]float32) [4]float32 {
	return [4]float32{
		float32(clampChannel(p[0])),
		float32(clampChannel(p[1])),
		float32(clampChannel(p[2])),
		float32(clampChannel(p[3])),
	}
}

// sortByAlpha stably sorts points and their parallel weights by ascending
// alpha channel, ties broken by original (insertion) order.
func sortByAlpha(points [][4]float32, weights []float32) {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return points[idx[i]][3] < points[idx[j]][3]
	})

	sortedPoints := make([][4]float32, len(points))
	sortedWeights := make([]float32, len(weights))
	for newPos, oldPos := range idx {
		sortedPoints[newPos] = points[oldPos]
		sortedWeights[newPos] = weights[oldPos]
	}
	copy(points, sortedPoints)
	copy(weights, sortedWeights)
}

// Count reports the number of colors in the palette.
func (cm *Colormap) Count() int { return len(cm.points) }

// ColorAt returns the i'th palette color.
func (cm *Colormap) ColorAt(i int) Color { return colorFromPoint4(cm.points[i]) }

// nearestIndex returns the index of the palette entry nearest c.
func (cm *Colormap) nearestIndex(c Color) int {
	res := cm.tree.findNearest(c.point4(), cm.points)
	return res.idx
}

// nearestIndexPoint is the raw-float variant used by the dithering
// remapper, which queries with points that may fall outside [0,255] or
// carry fractional components (source pixel plus accumulated error).
func (cm *Colormap) nearestIndexPoint(p [4]float32) (int, [4]float32) {
	res := cm.tree.findNearest(p, cm.points)
	return res.idx, cm.points[res.idx]
}

// Palette materializes the colormap's points as a caller-facing Palette.
func (cm *Colormap) Palette() *Palette {
	pal := &Palette{Count: len(cm.points)}
	for i, p := range cm.points {
		pal.Entries[i] = colorFromPoint4(p)
	}
	return pal
}
