package quantizr

import "math"

// splitClusters runs the priority-driven splitter: starting from a single
// root cluster, it repeatedly splits the highest-priority splittable
// cluster until at most n clusters remain or no cluster can be split
// further.
//
// Priority balances two concerns: splitting populous clusters early (so
// the palette doesn't waste colors refining a already-small cluster) and
// splitting high-spread clusters late (so fine color distinctions aren't
// lost to an early, coarse split). weightRatio walks from favoring weight
// toward favoring spread as the palette fills up.
func splitClusters(root *Cluster, n int) []*Cluster {
	clusters := []*Cluster{root}

	for len(clusters) < n {
		weightRatio := 0.75 - float64(len(clusters)+1)/(2*float64(n))

		best := -1
		var bestPriority float64
		for idx, c := range clusters {
			if c.chanDiff <= 0 {
				continue
			}
			priority := float64(c.chanDiff) * math.Pow(float64(c.weight), weightRatio)
			if best == -1 || priority > bestPriority {
				best = idx
				bestPriority = priority
			}
		}
		if best == -1 {
			break
		}

		target := clusters[best]
		clusters = append(clusters[:best], clusters[best+1:]...)

		left, right := target.split()
		switch {
		case len(left.entries) == 0:
			right.chanDiff = 0
			clusters = append(clusters, right)
		case len(right.entries) == 0:
			left.chanDiff = 0
			clusters = append(clusters, left)
		default:
			clusters = append(clusters, left, right)
		}
	}

	return clusters
}
