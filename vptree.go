package quantizr

import (
	"math"
	"sort"
)

// restLeafSize is the maximum number of non-vantage points a vpNode stores
// as a flat "rest" list instead of splitting further into near/far
// subtrees.
const restLeafSize = 6

// vpNode is a vantage-point tree node over palette points.
type vpNode struct {
	idx  int
	rest []int

	near, far *vpNode
	radius    float32
	radiusSq  float32
}

// vpTree is a nearest-neighbor index over a fixed, small (<=256) set of
// 4-D points, built once per Colormap construction pass.
type vpTree struct {
	root *vpNode
}

type vpItem struct {
	idx        int
	weight     float32
	distanceSq float32
}

// buildVPTree builds a tree over points, using weights only to choose
// vantage points (the point with the greatest weight in its subset becomes
// the vantage point, ties broken toward the first one found).
func buildVPTree(points [][4]float32, weights []float32) *vpTree {
	if len(points) == 0 {
		return &vpTree{}
	}
	items := make([]vpItem, len(points))
	for i := range points {
		items[i] = vpItem{idx: i, weight: weights[i]}
	}
	return &vpTree{root: buildVPNode(items, points)}
}

func buildVPNode(items []vpItem, points [][4]float32) *vpNode {
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return &vpNode{idx: items[0].idx, radius: float32(math.Inf(1)), radiusSq: float32(math.Inf(1))}
	}

	vp := 0
	for i := 1; i < len(items); i++ {
		if items[i].weight > items[vp].weight {
			vp = i
		}
	}
	items[0], items[vp] = items[vp], items[0]
	vpPoint := points[items[0].idx]
	node := &vpNode{idx: items[0].idx}

	rest := items[1:]
	for i := range rest {
		rest[i].distanceSq = sqDist4(vpPoint, points[rest[i].idx])
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].distanceSq < rest[j].distanceSq })

	if len(rest) <= restLeafSize {
		restIdx := make([]int, len(rest))
		for i, it := range rest {
			restIdx[i] = it.idx
		}
		node.rest = restIdx
		node.radius = float32(math.Inf(1))
		node.radiusSq = float32(math.Inf(1))
		return node
	}

	half := len(rest) / 2
	radiusSq := rest[half].distanceSq
	node.near = buildVPNode(rest[:half], points)
	node.far = buildVPNode(rest[half:], points)
	node.radiusSq = radiusSq
	node.radius = float32(math.Sqrt(float64(radiusSq)))
	return node
}

// vpResult is the outcome of a nearest-neighbor query: the index of the
// winning point and its Euclidean (not squared) distance from the query.
type vpResult struct {
	idx      int
	distance float32
}

// findNearest returns the point in points nearest to query.
func (t *vpTree) findNearest(query [4]float32, points [][4]float32) vpResult {
	best := vpResult{distance: float32(math.Inf(1))}
	bestSq := float32(math.Inf(1))
	if t.root != nil {
		t.root.visit(query, points, &best, &bestSq)
	}
	return best
}

func (n *vpNode) visit(query [4]float32, points [][4]float32, best *vpResult, bestSq *float32) {
	d := sqDist4(points[n.idx], query)
	if d < *bestSq {
		*bestSq = d
		best.idx = n.idx
		best.distance = float32(math.Sqrt(float64(d)))
	}

	if n.rest != nil {
		for _, ri := range n.rest {
			rd := sqDist4(points[ri], query)
			if rd < *bestSq {
				*bestSq = rd
				best.idx = ri
				best.distance = float32(math.Sqrt(float64(rd)))
			}
		}
		return
	}

	dist := float32(math.Sqrt(float64(d)))
	if dist < n.radius {
		if n.near != nil {
			n.near.visit(query, points, best, bestSq)
		}
		if dist >= n.radius-best.distance && n.far != nil {
			n.far.visit(query, points, best, bestSq)
		}
	} else {
		if n.far != nil {
			n.far.visit(query, points, best, bestSq)
		}
		if dist <= n.radius+best.distance && n.near != nil {
			n.near.visit(query, points, best, bestSq)
		}
	}
}
