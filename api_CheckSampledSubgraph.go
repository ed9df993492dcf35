package forGraphSampleGo

import (
	"slices"

	"github.com/pkg/errors"
)

func invalidSubgraphf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSubgraph, format, args...)
}

// CheckSampledSubgraph verifies that sub is a valid result of
// SampleNeighbors(G, nodes, params): row structure, exact per-type edge
// counts, consistency of neighbor ids, edge ids and edge types with G,
// distinct edges without replacement and no zero-weight edges. Pass
// SampleParams{Fanouts: []int{-1}, ReturnEIDs: true} to check an InSubgraph
// result.
func CheckSampledSubgraph(G *Graph, nodes []int, params SampleParams, sub *FusedSampledSubgraph) error {
	if err := G.Check(); err != nil {
		return err
	}
	if err := checkParams(G, params); err != nil {
		return err
	}
	if sub == nil {
		return invalidSubgraphf("nil subgraph")
	}
	if nodes == nil {
		nodes = allNodes(G.NumNodes())
	}
	n := len(nodes)
	if len(sub.Indptr) != n+1 || sub.Indptr[0] != 0 {
		return invalidSubgraphf("indptr must have %v entries starting at 0", n+1)
	}
	if !slices.Equal(sub.OriginalColumnNodeIDs, nodes) {
		return invalidSubgraphf("original column node ids differ from the seed nodes")
	}
	for i := 0; i < n; i++ {
		if sub.Indptr[i+1] < sub.Indptr[i] {
			return invalidSubgraphf("indptr decreases at row %v", i)
		}
	}
	nedges := sub.Indptr[n]
	if len(sub.Indices) != nedges {
		return invalidSubgraphf("indices has %v entries, indptr expects %v", len(sub.Indices), nedges)
	}
	eids := sub.OriginalEdgeIDs
	if params.ReturnEIDs != (eids != nil) && nedges > 0 {
		return invalidSubgraphf("original edge ids present: %v, requested: %v", eids != nil, params.ReturnEIDs)
	}
	if eids != nil && len(eids) != nedges {
		return invalidSubgraphf("%v original edge ids for %v edges", len(eids), nedges)
	}
	if (G.TypePerEdge != nil) != (sub.TypePerEdge != nil) && nedges > 0 {
		return invalidSubgraphf("type_per_edge presence differs from the input graph")
	}
	if sub.TypePerEdge != nil && len(sub.TypePerEdge) != nedges {
		return invalidSubgraphf("%v edge types for %v edges", len(sub.TypePerEdge), nedges)
	}

	strategy := SelectStrategy(params)
	ctx := &sampleContext{
		G:               G,
		fanouts:         params.Fanouts,
		strategy:        strategy,
		replace:         strategyTable[strategy].replace,
		probs:           params.ProbsOrMask,
		skipZeroWeights: params.ProbsOrMask != nil,
	}
	ntypes := len(params.Fanouts)
	avail := make([]int, ntypes)
	got := make([]int, ntypes)
	for i, node := range nodes {
		if node < 0 || node >= G.NumNodes() {
			return invalidSubgraphf("seed node %v out of range", node)
		}
		lo, hi := G.Indptr[node], G.Indptr[node+1]
		clear(got)
		seen := make(map[int]bool)
		for j := sub.Indptr[i]; j < sub.Indptr[i+1]; j++ {
			t := 0
			if ntypes > 1 {
				t = sub.TypePerEdge[j]
				if t < 0 || t >= ntypes {
					return invalidSubgraphf("edge %v has type %v outside [0, %v)", j, t, ntypes)
				}
			}
			got[t]++
			if eids == nil {
				if !slices.Contains(G.Indices[lo:hi], sub.Indices[j]) {
					return invalidSubgraphf("row %v keeps %v, which is not a neighbor of node %v", i, sub.Indices[j], node)
				}
				continue
			}
			e := eids[j]
			if e < lo || e >= hi {
				return invalidSubgraphf("row %v keeps edge %v outside [%v, %v)", i, e, lo, hi)
			}
			if sub.Indices[j] != G.Indices[e] {
				return invalidSubgraphf("edge %v has neighbor %v, input has %v", j, sub.Indices[j], G.Indices[e])
			}
			if sub.TypePerEdge != nil && sub.TypePerEdge[j] != G.TypePerEdge[e] {
				return invalidSubgraphf("edge %v has type %v, input has %v", j, sub.TypePerEdge[j], G.TypePerEdge[e])
			}
			if ctx.skipZeroWeights && !(ctx.probs[e] > 0) {
				return invalidSubgraphf("row %v keeps zero-weight edge %v", i, e)
			}
			if !ctx.replace || params.Fanouts[t] == -1 {
				if seen[e] {
					return invalidSubgraphf("row %v keeps edge %v twice", i, e)
				}
				seen[e] = true
			}
		}
		ctx.availablePerType(node, avail)
		for t, a := range avail {
			if want := effectiveCap(params.Fanouts[t], a, ctx.replace); got[t] != want {
				return invalidSubgraphf("row %v type %v keeps %v edges, expected %v", i, t, got[t], want)
			}
		}
	}
	return nil
}
