package forGraphSampleGo

import "math"

// sampleTwoPass runs the count pass, sizes the output from the exclusive
// prefix sum of the counts and runs the fill pass. Every node writes only to
// its own precomputed output range, so neither pass synchronizes.
func sampleTwoPass(ctx *sampleContext, nodes []int, maxEdges int) (*FusedSampledSubgraph, error) {
	impl := strategyTable[ctx.strategy]
	ntypes := len(ctx.fanouts)
	n := len(nodes)

	counts := make([]int, n*ntypes)
	nodeCounts := make([]int, n)
	forRange(0, n, func(low, high int) {
		avail := make([]int, ntypes)
		for i := low; i < high; i++ {
			ctx.availablePerType(nodes[i], avail)
			total := 0
			for t, a := range avail {
				k := effectiveCap(ctx.fanouts[t], a, ctx.replace)
				counts[i*ntypes+t] = k
				if k > math.MaxInt-total {
					total = math.MaxInt
				} else {
					total += k
				}
			}
			nodeCounts[i] = total
		}
	})

	offsets, err := exclusiveScan(nodeCounts)
	if err != nil {
		return nil, err
	}
	eids, err := allocInts(offsets[n], maxEdges)
	if err != nil {
		return nil, err
	}

	forRange(0, n, func(low, high int) {
		sc := newScratch(ntypes)
		for i := low; i < high; i++ {
			node := nodes[i]
			off := offsets[i]
			ctx.forEachCandidateSet(node, sc, func(t int, c candidates) {
				k := counts[i*ntypes+t]
				if k == 0 {
					return
				}
				if ctx.fanouts[t] == -1 {
					// -1 takes every candidate once, with or without replacement.
					copyAll(c, eids[off:off+k])
				} else {
					rng := newStream(ctx.seed1, node, t, impl.salt)
					impl.fill(ctx, sc, c, k, rng, eids[off:off+k])
				}
				off += k
			})
		}
	})
	return assemble(ctx.G, nodes, offsets, eids)
}
