package forGraphSampleGo

// FusedSampledSubgraph is the CSC structure of a sampled edge set. Row i
// belongs to seed node OriginalColumnNodeIDs[i]; Indices holds the original
// neighbor ids of its kept edges in Indices[Indptr[i]:Indptr[i+1]].
//
// OriginalEdgeIDs holds, per kept edge, its position in the input indices
// and is nil unless edge ids were requested. TypePerEdge is nil unless the
// input graph is typed.
type FusedSampledSubgraph struct {
	Indptr                []int
	Indices               []int
	OriginalColumnNodeIDs []int
	OriginalEdgeIDs       []int
	TypePerEdge           []int
}

func (S *FusedSampledSubgraph) NumNodes() int {
	return len(S.Indptr) - 1
}

func (S *FusedSampledSubgraph) NumEdges() int {
	return len(S.Indices)
}

func (S *FusedSampledSubgraph) Degree(i int) int {
	return S.Indptr[i+1] - S.Indptr[i]
}

// Edges returns the neighbor ids kept for row i. The slice aliases S.
func (S *FusedSampledSubgraph) Edges(i int) []int {
	return S.Indices[S.Indptr[i]:S.Indptr[i+1]]
}

// assemble gathers neighbor ids and edge types of the kept edges. eids
// becomes OriginalEdgeIDs; the caller drops it when ids were not requested.
func assemble(G *Graph, nodes, offsets, eids []int) (*FusedSampledSubgraph, error) {
	total := len(eids)
	indices, err := allocInts(total, 0)
	if err != nil {
		return nil, err
	}
	var types []int
	if G.TypePerEdge != nil {
		if types, err = allocInts(total, 0); err != nil {
			return nil, err
		}
	}
	forRange(0, total, func(low, high int) {
		for j := low; j < high; j++ {
			e := eids[j]
			indices[j] = G.Indices[e]
			if types != nil {
				types[j] = G.TypePerEdge[e]
			}
		}
	})
	return &FusedSampledSubgraph{
		Indptr:                offsets,
		Indices:               indices,
		OriginalColumnNodeIDs: append([]int(nil), nodes...),
		OriginalEdgeIDs:       eids,
		TypePerEdge:           types,
	}, nil
}
