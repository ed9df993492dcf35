package forGraphSampleGo

func checkFanouts(G *Graph, fanouts []int) error {
	if len(fanouts) == 0 {
		return configErrorf("at least one fanout is required")
	}
	for i, f := range fanouts {
		if f < -1 {
			return configErrorf("fanout %v at position %v must be >= -1", f, i)
		}
	}
	if len(fanouts) == 1 {
		return nil
	}
	if G.TypePerEdge == nil {
		return configErrorf("%v fanouts given but the graph has no type_per_edge", len(fanouts))
	}
	types := G.TypePerEdge
	ntypes := len(fanouts)
	inRange := rangeAnd(0, len(types), func(low, high int) bool {
		for e := low; e < high; e++ {
			if types[e] >= ntypes {
				return false
			}
		}
		return true
	})
	if !inRange {
		return rangeErrorf("type_per_edge values must be in [0, %v)", ntypes)
	}
	if distinct := G.numEdgeTypes(); distinct != ntypes {
		return configErrorf("%v fanouts given for %v distinct edge types", ntypes, distinct)
	}
	return nil
}

// effectiveCap resolves the number of edges to keep from a candidate set of
// size available.
func effectiveCap(fanout, available int, replace bool) int {
	switch {
	case available == 0:
		return 0
	case fanout == -1:
		return available
	case replace:
		return fanout
	}
	return min(fanout, available)
}
