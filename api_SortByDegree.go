package forGraphSampleGo

import "github.com/intel/forGoParallel/psort"

// SortByDegree returns the nodes of G ordered by in-degree, ties by node id.
// It requires the InDegree property.
func (G *Graph) SortByDegree(ascending bool) []int {
	if G.InDegree == nil {
		panic("in-degree property unknown")
	}
	n := len(G.InDegree)
	P := make([]int, n)
	D := make([]int, n)
	forRange(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			P[i] = i
			if ascending {
				D[i] = G.InDegree[i]
			} else {
				D[i] = -G.InDegree[i]
			}
		}
	})
	psort.StableSort(keyedNodeSorter{keys: D, nodes: P})
	return P
}
