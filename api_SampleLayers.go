package forGraphSampleGo

import (
	"math/rand/v2"

	"github.com/plan-systems/klog"
)

// MiniBatchLayer is one hop of a multi-layer sample. Nodes lists the unique
// node ids touched by the hop: its first Subgraph.NumNodes() entries are the
// seeds of the hop, in row order. CompactedIndices[j] is the position of
// Subgraph.Indices[j] in Nodes.
type MiniBatchLayer struct {
	Subgraph         *FusedSampledSubgraph
	Nodes            []int
	CompactedIndices []int
}

// SampleLayers samples len(layerFanouts) hops starting from seeds. The seeds
// of each hop are the nodes of the previous one, so the frontier grows by the
// sampled neighbors at every hop. All hops share one random seed; with
// params.Layer this correlates the neighbors chosen across hops.
//
// params.Fanouts is ignored in favor of layerFanouts. The result is ordered
// outermost hop first.
func SampleLayers(G *Graph, seeds []int, layerFanouts [][]int, params SampleParams) ([]MiniBatchLayer, error) {
	if len(layerFanouts) == 0 {
		return nil, configErrorf("at least one layer is required")
	}
	if len(params.RandomSeed) == 0 {
		params.RandomSeed = []uint64{rand.Uint64()}
	}
	frontier, _ := UniqueAndCompact(seeds, nil)
	nlayers := len(layerFanouts)
	layers := make([]MiniBatchLayer, nlayers)
	for hop, fanouts := range layerFanouts {
		p := params
		p.Fanouts = fanouts
		sub, err := SampleNeighbors(G, frontier, p)
		if err != nil {
			return nil, err
		}
		nodes, compacted := UniqueAndCompact(frontier, sub.Indices)
		klog.V(2).Infof("SampleLayers: hop %v, %v seeds, %v edges, %v nodes", hop, len(frontier), sub.NumEdges(), len(nodes))
		layers[nlayers-1-hop] = MiniBatchLayer{
			Subgraph:         sub,
			Nodes:            nodes,
			CompactedIndices: compacted,
		}
		frontier = nodes
	}
	return layers, nil
}
