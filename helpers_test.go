package forGraphSampleGo_test

import (
	"math/rand/v2"

	GS "github.com/intel/forGraphSampleGo"
)

// scenarioGraph has four nodes; node 3 has no in-edges.
func scenarioGraph() *GS.Graph {
	return GS.New([]int{0, 2, 4, 6, 6}, []int{1, 2, 0, 2, 0, 1}, nil)
}

// randomGraph returns a graph whose nodes have between 0 and maxDegree
// in-edges from random sources, and, when ntypes > 0, random edge types
// covering all of [0, ntypes).
func randomGraph(n, maxDegree, ntypes int, seed uint64) *GS.Graph {
	r := rand.New(rand.NewPCG(seed, seed^0x5eed))
	indptr := make([]int, n+1)
	var indices []int
	for i := 0; i < n; i++ {
		d := r.IntN(maxDegree + 1)
		for k := 0; k < d; k++ {
			indices = append(indices, r.IntN(n))
		}
		indptr[i+1] = len(indices)
	}
	var types []int
	if ntypes > 0 {
		types = make([]int, len(indices))
		for e := range types {
			if e < ntypes {
				types[e] = e
			} else {
				types[e] = r.IntN(ntypes)
			}
		}
	}
	return GS.New(indptr, indices, types)
}

func randomWeights(nedges int, zeroFraction float64, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed+1))
	probs := make([]float64, nedges)
	for e := range probs {
		if r.Float64() >= zeroFraction {
			probs[e] = 0.1 + 10*r.Float64()
		}
	}
	return probs
}

// replicatedNeighborhood returns a graph of nseeds nodes that all have the
// in-neighbors nseeds, nseeds+1, ..., nseeds+d-1, which have no in-edges.
func replicatedNeighborhood(nseeds, d int) (G *GS.Graph, seeds []int) {
	n := nseeds + d
	indptr := make([]int, n+1)
	indices := make([]int, 0, nseeds*d)
	seeds = make([]int, nseeds)
	for i := 0; i < nseeds; i++ {
		for k := 0; k < d; k++ {
			indices = append(indices, nseeds+k)
		}
		indptr[i+1] = len(indices)
		seeds[i] = i
	}
	for i := nseeds; i < n; i++ {
		indptr[i+1] = len(indices)
	}
	return GS.New(indptr, indices, nil), seeds
}

// neighborFrequencies counts how often each slot position 0..d-1 of the
// replicated neighborhood is kept.
func neighborFrequencies(sub *GS.FusedSampledSubgraph, nseeds, d int) []float64 {
	freq := make([]float64, d)
	for _, v := range sub.Indices {
		freq[v-nseeds]++
	}
	return freq
}
