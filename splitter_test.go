package quantizr

import "testing"

func TestSplitClustersRespectsBudget(t *testing.T) {
	entries := make([]HistogramEntry, 0, 20)
	for i := 0; i < 20; i++ {
		v := uint8(i * 12)
		entries = append(entries, HistogramEntry{Color: Color{R: v, G: 0, B: 0, A: 255}, Weight: 1})
	}
	root := newCluster(entries)
	clusters := splitClusters(root, 5)

	if len(clusters) > 5 {
		t.Fatalf("got %d clusters, want <= 5", len(clusters))
	}
	total := 0
	for _, c := range clusters {
		total += len(c.entries)
	}
	if total != 20 {
		t.Errorf("total entries across clusters = %d, want 20", total)
	}
}

func TestSplitClustersStopsWhenUnsplittable(t *testing.T) {
	entries := []HistogramEntry{
		{Color: Color{R: 5, G: 5, B: 5, A: 255}, Weight: 1},
		{Color: Color{R: 5, G: 5, B: 5, A: 255}, Weight: 1},
	}
	root := newCluster(entries)
	clusters := splitClusters(root, 10)

	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 (identical entries can't be split)", len(clusters))
	}
}
