package forGraphSampleGo

import (
	"time"

	"github.com/plan-systems/klog"
)

// InSubgraph returns every incoming edge of the given nodes, in input order,
// with original edge ids. It is the sampling-free counterpart of
// SampleNeighbors and fails only on malformed input.
func InSubgraph(G *Graph, nodes []int) (sub *FusedSampledSubgraph, err error) {
	tic := time.Now()
	defer func() {
		observe(opInSubgraph, "all", tic, sub, err)
	}()

	if err = G.Check(); err != nil {
		return nil, err
	}
	if err = checkNodes(nodes, G.NumNodes()); err != nil {
		return nil, err
	}
	n := len(nodes)
	degrees := make([]int, n)
	forRange(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			degrees[i] = G.Degree(nodes[i])
		}
	})
	offsets, err := exclusiveScan(degrees)
	if err != nil {
		return nil, err
	}
	eids, err := allocInts(offsets[n], 0)
	if err != nil {
		return nil, err
	}
	forRange(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			lo := G.Indptr[nodes[i]]
			out := eids[offsets[i]:offsets[i+1]]
			for j := range out {
				out[j] = lo + j
			}
		}
	})
	klog.V(2).Infof("InSubgraph: %v nodes, %v edges", n, len(eids))
	return assemble(G, nodes, offsets, eids)
}
