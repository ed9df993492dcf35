package forGraphSampleGo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

type sampleContext struct {
	G        *Graph
	fanouts  []int
	strategy Strategy
	replace  bool
	probs    []float64

	// skipZeroWeights removes edges with weight 0 before counting and selection.
	skipZeroWeights bool

	seed1, seed2      uint64
	seed2Contribution float64
}

// fillFunc writes the absolute positions of k selected edges out of c to out.
type fillFunc func(ctx *sampleContext, sc *scratch, c candidates, k int, rng stream, out []int)

type strategyImpl struct {
	salt     uint64
	replace  bool
	weighted bool
	fill     fillFunc
}

var strategyTable = [...]strategyImpl{
	Uniform:         {salt: saltUniform, fill: fillUniform},
	UniformReplace:  {salt: saltUniformReplace, replace: true, fill: fillUniformReplace},
	Weighted:        {salt: saltWeighted, weighted: true, fill: fillWeighted},
	WeightedReplace: {salt: saltWeightedReplace, replace: true, weighted: true, fill: fillWeightedReplace},
	Labor:           {salt: saltLabor, fill: fillLabor},
}

func copyAll(c candidates, out []int) {
	for j := range out {
		out[j] = c.At(j)
	}
}

// fillUniform is selection sampling (Knuth's Algorithm S): each candidate is
// kept with probability (still needed)/(still unseen), which yields exactly k
// distinct edges in one pass without extra memory.
func fillUniform(_ *sampleContext, _ *scratch, c candidates, k int, rng stream, out []int) {
	d := c.Len()
	if k >= d {
		copyAll(c, out[:d])
		return
	}
	selected := 0
	for j := 0; j < d && selected < k; j++ {
		if rng.Intn(d-j) < k-selected {
			out[selected] = c.At(j)
			selected++
		}
	}
}

func fillUniformReplace(_ *sampleContext, _ *scratch, c candidates, k int, rng stream, out []int) {
	d := c.Len()
	for j := 0; j < k; j++ {
		out[j] = c.At(rng.Intn(d))
	}
}

// fillWeighted is A-Res: edge e gets the key u_e^(1/w_e) and the k largest
// keys win. Keys are compared in log space, ln(u_e)/w_e, which orders the
// same way. u_e is indexed by the absolute edge position, so keys can be
// computed in any order.
func fillWeighted(ctx *sampleContext, sc *scratch, c candidates, k int, rng stream, out []int) {
	d := c.Len()
	if k >= d {
		copyAll(c, out[:d])
		return
	}
	sc.keys = growFloats(sc.keys, d)
	computeKeys(sc.keys, c, func(e int) float64 {
		return math.Log(rng.float64At(uint64(e))) / ctx.probs[e]
	})
	selectTopK(c, sc.keys, k, largerKey, out)
}

// fillWeightedReplace draws k edges by inverse CDF over the cumulative weights.
func fillWeightedReplace(ctx *sampleContext, sc *scratch, c candidates, k int, rng stream, out []int) {
	d := c.Len()
	sc.keys = growFloats(sc.keys, d)
	sc.cum = growFloats(sc.cum, d)
	for j := 0; j < d; j++ {
		sc.keys[j] = ctx.probs[c.At(j)]
	}
	floats.CumSum(sc.cum, sc.keys)
	total := sc.cum[d-1]
	for j := 0; j < k; j++ {
		x := rng.Float64() * total
		m := sort.Search(d, func(m int) bool { return sc.cum[m] > x })
		if m == d {
			m = d - 1
		}
		out[j] = c.At(m)
	}
}

// laborKey is the LABOR-0 priority of edge e. The variate depends only on the
// shared seeds and the neighbor id, so every seed node that reaches the same
// neighbor, in this call or any other call with the same seeds, ranks it the
// same way.
func (ctx *sampleContext) laborKey(e int) float64 {
	neighbor := ctx.G.Indices[e]
	priority := exponentialFromUniform(hashUniform(ctx.seed1, neighbor, saltLabor))
	if c := ctx.seed2Contribution; c > 0 {
		priority2 := exponentialFromUniform(hashUniform(ctx.seed2, neighbor, saltLabor2))
		priority = (1-c)*priority + c*priority2
	}
	if ctx.probs != nil {
		return priority / ctx.probs[e]
	}
	return priority
}

func fillLabor(ctx *sampleContext, sc *scratch, c candidates, k int, _ stream, out []int) {
	d := c.Len()
	if k >= d {
		copyAll(c, out[:d])
		return
	}
	sc.keys = growFloats(sc.keys, d)
	computeKeys(sc.keys, c, ctx.laborKey)
	selectTopK(c, sc.keys, k, smallerKey, out)
}
