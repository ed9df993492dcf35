package forGraphSampleGo

// Check validates the CSC structure. It does not modify G.
func (G *Graph) Check() error {
	if G == nil {
		return configErrorf("nil graph")
	}
	indptr := G.Indptr
	if len(indptr) == 0 {
		return configErrorf("indptr must have at least one entry")
	}
	if indptr[0] != 0 {
		return configErrorf("indptr must start at 0, got %v", indptr[0])
	}
	n := len(indptr) - 1
	monotone := rangeAnd(0, n, func(low, high int) bool {
		for i := low; i < high; i++ {
			if indptr[i+1] < indptr[i] {
				return false
			}
		}
		return true
	})
	if !monotone {
		return configErrorf("indptr must be non-decreasing")
	}
	if nedges := indptr[n]; len(G.Indices) != nedges {
		return configErrorf("indices has %v entries, indptr expects %v", len(G.Indices), nedges)
	}
	indices := G.Indices
	inRange := rangeAnd(0, len(indices), func(low, high int) bool {
		for e := low; e < high; e++ {
			if v := indices[e]; v < 0 || v >= n {
				return false
			}
		}
		return true
	})
	if !inRange {
		return rangeErrorf("indices must be node ids in [0, %v)", n)
	}
	if types := G.TypePerEdge; types != nil {
		if len(types) != len(indices) {
			return configErrorf("type_per_edge has %v entries, expected %v", len(types), len(indices))
		}
		nonNegative := rangeAnd(0, len(types), func(low, high int) bool {
			for e := low; e < high; e++ {
				if types[e] < 0 {
					return false
				}
			}
			return true
		})
		if !nonNegative {
			return rangeErrorf("type_per_edge values must be non-negative")
		}
	}
	if inDegree := G.InDegree; inDegree != nil && len(inDegree) != n {
		return configErrorf("cached in-degree has %v entries, expected %v", len(inDegree), n)
	}
	return nil
}

func checkNodes(nodes []int, n int) error {
	ok := rangeAnd(0, len(nodes), func(low, high int) bool {
		for i := low; i < high; i++ {
			if v := nodes[i]; v < 0 || v >= n {
				return false
			}
		}
		return true
	})
	if ok {
		return nil
	}
	for i, v := range nodes {
		if v < 0 || v >= n {
			return rangeErrorf("seed node %v at position %v outside [0, %v)", v, i, n)
		}
	}
	return nil
}
