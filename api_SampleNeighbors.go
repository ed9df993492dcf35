package forGraphSampleGo

import (
	"time"

	"github.com/intel/forGraphSampleGo/metrics"
	"github.com/plan-systems/klog"
)

const (
	opSampleNeighbors = "sample_neighbors"
	opInSubgraph      = "in_subgraph"
)

// SampleNeighbors samples incoming edges of the given nodes. A nil nodes
// slice samples every node of G. The strategy is chosen by SelectStrategy.
//
// For every row i of the result and every fanout slot, the number of kept
// edges is the resolved fanout: all candidates for -1, otherwise the fanout
// capped by the number of candidates unless params.Replace is set. With
// params.Layer, calls that share params.RandomSeed prefer the same neighbors.
//
// All validation happens before any sampling work; on error no subgraph is returned.
func SampleNeighbors(G *Graph, nodes []int, params SampleParams) (sub *FusedSampledSubgraph, err error) {
	tic := time.Now()
	strategy := SelectStrategy(params)
	defer func() {
		observe(opSampleNeighbors, strategy.String(), tic, sub, err)
	}()

	if err = G.Check(); err != nil {
		return nil, err
	}
	if err = checkParams(G, params); err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = allNodes(G.NumNodes())
	} else if err = checkNodes(nodes, G.NumNodes()); err != nil {
		return nil, err
	}

	impl := strategyTable[strategy]
	seed1, seed2 := params.seeds()
	ctx := &sampleContext{
		G:                 G,
		fanouts:           params.Fanouts,
		strategy:          strategy,
		replace:           impl.replace,
		probs:             params.ProbsOrMask,
		skipZeroWeights:   params.ProbsOrMask != nil,
		seed1:             seed1,
		seed2:             seed2,
		seed2Contribution: params.Seed2Contribution,
	}
	klog.V(2).Infof("SampleNeighbors: %v seeds, fanouts %v, strategy %v", len(nodes), params.Fanouts, strategy)

	if sub, err = sampleTwoPass(ctx, nodes, params.MaxEdges); err != nil {
		return nil, err
	}
	if !params.ReturnEIDs {
		sub.OriginalEdgeIDs = nil
	}
	klog.V(2).Infof("SampleNeighbors: %v edges sampled", sub.NumEdges())
	return sub, nil
}

func allNodes(n int) []int {
	nodes := make([]int, n)
	forRange(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			nodes[i] = i
		}
	})
	return nodes
}

// observe records a finished call. Without a result and without an error the
// call is unwinding a panic, which is left to propagate unchanged.
func observe(op, label string, tic time.Time, sub *FusedSampledSubgraph, err error) {
	if err != nil {
		metrics.SampleDuration.WithLabelValues(op).Observe(time.Since(tic).Seconds())
		metrics.SampleErrorsTotal.WithLabelValues(op, errorKindLabel(err)).Inc()
		klog.V(2).Infof("%v failed: %v", op, err)
		return
	}
	if sub == nil {
		return
	}
	metrics.SampleDuration.WithLabelValues(op).Observe(time.Since(tic).Seconds())
	metrics.SampleCallsTotal.WithLabelValues(op, label).Inc()
	metrics.SampledEdgesTotal.WithLabelValues(op, label).Add(float64(sub.NumEdges()))
}
