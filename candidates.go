package forGraphSampleGo

// candidates is the set of edge positions a strategy chooses from: either the
// contiguous range [lo, hi) of the input indices or an explicit list.
type candidates struct {
	lo, hi int
	list   bool
	pos    []int
}

func contiguous(lo, hi int) candidates {
	return candidates{lo: lo, hi: hi}
}

func listed(pos []int) candidates {
	return candidates{list: true, pos: pos}
}

func (c candidates) Len() int {
	if c.list {
		return len(c.pos)
	}
	return c.hi - c.lo
}

// At returns the absolute edge position of the j-th candidate.
func (c candidates) At(j int) int {
	if c.list {
		return c.pos[j]
	}
	return c.lo + j
}

// scratch holds per-worker buffers reused across the nodes of a parallel chunk.
type scratch struct {
	bounds, cursor []int
	grouped        []int
	eligible       []int
	keys, cum      []float64
}

func newScratch(ntypes int) *scratch {
	return &scratch{
		bounds: make([]int, ntypes+1),
		cursor: make([]int, ntypes),
	}
}

func growInts(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n, max(n, 2*cap(buf)))
	}
	return buf[:n]
}

func growFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n, max(n, 2*cap(buf)))
	}
	return buf[:n]
}

// availablePerType counts, per fanout slot, the candidate edges of node.
func (ctx *sampleContext) availablePerType(node int, avail []int) {
	G := ctx.G
	lo, hi := G.Indptr[node], G.Indptr[node+1]
	if len(avail) == 1 && !ctx.skipZeroWeights {
		avail[0] = hi - lo
		return
	}
	clear(avail)
	typed := len(avail) > 1
	for e := lo; e < hi; e++ {
		if ctx.skipZeroWeights && !(ctx.probs[e] > 0) {
			continue
		}
		if typed {
			avail[G.TypePerEdge[e]]++
		} else {
			avail[0]++
		}
	}
}

// forEachCandidateSet calls f once per fanout slot of node, in type order,
// with the eligible candidate edges of that slot.
func (ctx *sampleContext) forEachCandidateSet(node int, sc *scratch, f func(t int, c candidates)) {
	G := ctx.G
	lo, hi := G.Indptr[node], G.Indptr[node+1]
	ntypes := len(ctx.fanouts)
	if ntypes == 1 {
		f(0, ctx.eligible(sc, contiguous(lo, hi)))
		return
	}
	types := G.TypePerEdge
	bounds := sc.bounds
	clear(bounds)
	for e := lo; e < hi; e++ {
		bounds[types[e]+1]++
	}
	for t := 0; t < ntypes; t++ {
		bounds[t+1] += bounds[t]
	}
	copy(sc.cursor, bounds[:ntypes])
	sc.grouped = growInts(sc.grouped, hi-lo)
	for e := lo; e < hi; e++ {
		t := types[e]
		sc.grouped[sc.cursor[t]] = e
		sc.cursor[t]++
	}
	for t := 0; t < ntypes; t++ {
		f(t, ctx.eligible(sc, listed(sc.grouped[bounds[t]:bounds[t+1]])))
	}
}

// eligible drops zero-weight edges when the strategy requires it.
func (ctx *sampleContext) eligible(sc *scratch, c candidates) candidates {
	if !ctx.skipZeroWeights {
		return c
	}
	sc.eligible = sc.eligible[:0]
	for j, n := 0, c.Len(); j < n; j++ {
		if e := c.At(j); ctx.probs[e] > 0 {
			sc.eligible = append(sc.eligible, e)
		}
	}
	return listed(sc.eligible)
}
