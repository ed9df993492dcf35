package forGraphSampleGo

import (
	"github.com/intel/forGoParallel/psort"
	GrB "github.com/intel/forGraphBLASGo/GrB"
)

// FromCOO builds the CSC graph of the n-node edge list src[k] -> dst[k].
// The in-edges of every node are ordered by source id. perm[e] is the
// coordinate position of CSC edge e; use Permute to reorder per-edge data.
// src and dst are not modified.
func FromCOO(n int, src, dst []int) (G *Graph, perm []int, err error) {
	if len(src) != len(dst) {
		return nil, nil, configErrorf("src has %v entries, dst has %v", len(src), len(dst))
	}
	if n < 0 {
		return nil, nil, configErrorf("negative node count %v", n)
	}
	nedges := len(src)
	inRange := rangeAnd(0, nedges, func(low, high int) bool {
		for k := low; k < high; k++ {
			if src[k] < 0 || src[k] >= n || dst[k] < 0 || dst[k] >= n {
				return false
			}
		}
		return true
	})
	if !inRange {
		return nil, nil, rangeErrorf("edge endpoints must be in [0, %v)", n)
	}
	sorter := coordinateSorter{
		dst:  append([]int(nil), dst...),
		src:  append([]int(nil), src...),
		perm: make([]int, nedges),
	}
	forRange(0, nedges, func(low, high int) {
		for k := low; k < high; k++ {
			sorter.perm[k] = k
		}
	})
	psort.StableSort(sorter)

	indptr := make([]int, n+1)
	for _, d := range sorter.dst {
		indptr[d+1]++
	}
	for i := 0; i < n; i++ {
		indptr[i+1] += indptr[i]
	}
	return New(indptr, sorter.src, nil), sorter.perm, nil
}

// Permute returns values reordered so that result[e] = values[perm[e]].
func Permute[T any](values []T, perm []int) []T {
	if values == nil {
		return nil
	}
	result := make([]T, len(perm))
	forRange(0, len(perm), func(low, high int) {
		for e := low; e < high; e++ {
			result[e] = values[perm[e]]
		}
	})
	return result
}

// FromMatrix converts a square adjacency matrix, where A(i, j) is an edge
// i -> j, into a CSC graph and the per-edge weights |A(i, j)|.
func FromMatrix[T GrB.Number](A *GrB.Matrix[T]) (G *Graph, weights []float64, err error) {
	nrows, ncols, err := A.Size()
	if err != nil {
		return
	}
	if nrows != ncols {
		err = configErrorf("adjacency matrix must be square, got %v x %v", nrows, ncols)
		return
	}
	rows, cols, vals, err := A.ExtractTuples()
	if err != nil {
		return
	}
	G, perm, err := FromCOO(nrows, rows, cols)
	if err != nil {
		return
	}
	weights = make([]float64, len(perm))
	forRange(0, len(perm), func(low, high int) {
		for e := low; e < high; e++ {
			w := float64(vals[perm[e]])
			if w < 0 {
				w = -w
			}
			weights[e] = w
		}
	})
	return
}
