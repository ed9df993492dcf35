package forGraphSampleGo

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/plan-systems/klog"
)

const Unknown = -1

// Graph is a read-only view of a graph in compressed sparse column form:
// Indices[Indptr[i]:Indptr[i+1]] are the in-neighbors of node i.
//
// TypePerEdge is optional and aligned with Indices. InDegree and NumEdgeTypes
// are cached properties filled in by the Property methods, which are the only
// methods that modify a Graph and must not run concurrently with sampling.
type Graph struct {
	Indptr      []int
	Indices     []int
	TypePerEdge []int

	InDegree     []int
	NumEdgeTypes int
}

func New(indptr, indices, typePerEdge []int) *Graph {
	return &Graph{
		Indptr:       indptr,
		Indices:      indices,
		TypePerEdge:  typePerEdge,
		NumEdgeTypes: Unknown,
	}
}

func (G *Graph) NumNodes() int {
	if len(G.Indptr) == 0 {
		return 0
	}
	return len(G.Indptr) - 1
}

func (G *Graph) NumEdges() int {
	return len(G.Indices)
}

func (G *Graph) Degree(i int) int {
	return G.Indptr[i+1] - G.Indptr[i]
}

func (G *Graph) DeleteProperties() {
	G.InDegree = nil
	G.NumEdgeTypes = Unknown
}

func (G *Graph) PropertyInDegree() {
	if G.InDegree != nil {
		return
	}
	n := G.NumNodes()
	inDegree := make([]int, n)
	forRange(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			inDegree[i] = G.Indptr[i+1] - G.Indptr[i]
		}
	})
	G.InDegree = inDegree
}

func (G *Graph) PropertyNumEdgeTypes() {
	if G.NumEdgeTypes != Unknown {
		return
	}
	G.NumEdgeTypes = countEdgeTypes(G.TypePerEdge)
	klog.V(2).Infof("graph has %v distinct edge types", G.NumEdgeTypes)
}

// numEdgeTypes returns the cached distinct type count or computes it without caching.
func (G *Graph) numEdgeTypes() int {
	if G.NumEdgeTypes != Unknown {
		return G.NumEdgeTypes
	}
	return countEdgeTypes(G.TypePerEdge)
}

// countEdgeTypes counts distinct non-negative values; negative values are
// rejected by Check before this is called. Ids beyond len(typePerEdge) are
// counted in a hash set.
func countEdgeTypes(typePerEdge []int) int {
	if typePerEdge == nil {
		return 0
	}
	maxType := Unknown
	for _, t := range typePerEdge {
		if t > maxType {
			maxType = t
		}
	}
	if maxType < 0 {
		return 0
	}
	if maxType >= len(typePerEdge) {
		set := hashset.New()
		for _, t := range typePerEdge {
			set.Add(t)
		}
		return set.Size()
	}
	seen := make([]bool, maxType+1)
	for _, t := range typePerEdge {
		seen[t] = true
	}
	count := 0
	for _, s := range seen {
		if s {
			count++
		}
	}
	return count
}
