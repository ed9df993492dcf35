package forGraphSampleGo

import (
	"os"

	"github.com/intel/forGraphSampleGo/MatrixMarket"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

func readCoordinates(filename string) (*MatrixMarket.Coordinates, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	header, scanner, err := MatrixMarket.ReadHeader(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	klog.Infof("%v: %v", filename, header)
	c, err := MatrixMarket.ReadCoordinates(header, scanner)
	return c, errors.Wrap(err, filename)
}

// ReadProblem loads the square Matrix Market graph args[0], where entry
// (i, j) is an edge i -> j weighted by |value|. If args[1] is present and
// does not start with '-', it holds 1-based seed node ids; otherwise
// nSources seed nodes are drawn at random.
func ReadProblem(makeSymmetric, removeSelfEdges bool, nSources int, args []string) (G *Graph, weights []float64, seeds []int, functionErr error) {
	if len(args) < 1 {
		functionErr = errors.New("missing input file")
		return
	}
	klog.Infof("Reading matrix market file: %v", args[0])
	c, err := readCoordinates(args[0])
	if err != nil {
		functionErr = err
		return
	}
	if c.NRows != c.NCols {
		functionErr = errors.Errorf("A must be square, got %v x %v", c.NRows, c.NCols)
		return
	}
	n := c.NRows
	src, dst, vals := c.Rows, c.Cols, c.Vals

	if removeSelfEdges {
		klog.Info("remove self edges")
		k := 0
		for e := range src {
			if src[e] != dst[e] {
				src[k], dst[k], vals[k] = src[e], dst[e], vals[e]
				k++
			}
		}
		src, dst, vals = src[:k], dst[:k], vals[:k]
	}
	if makeSymmetric {
		klog.Info("make symmetric")
		m := len(src)
		for e := 0; e < m; e++ {
			if src[e] != dst[e] {
				src = append(src, dst[e])
				dst = append(dst, src[e])
				vals = append(vals, vals[e])
			}
		}
	}

	G, perm, err := FromCOO(n, src, dst)
	if err != nil {
		functionErr = err
		return
	}
	G, perm = removeDuplicateEdges(G, perm)
	weights = Permute(vals, perm)
	forRange(0, len(weights), func(low, high int) {
		for e := low; e < high; e++ {
			if weights[e] < 0 {
				weights[e] = -weights[e]
			}
		}
	})

	if len(args) > 1 && args[1][0] != '-' {
		klog.Infof("Sources: %v", args[1])
		sc, err := readCoordinates(args[1])
		if err != nil {
			functionErr = err
			return
		}
		seeds = make([]int, len(sc.Vals))
		for k, v := range sc.Vals {
			seeds[k] = int(v) - 1
		}
		if functionErr = checkNodes(seeds, n); functionErr != nil {
			return
		}
	} else if n > 0 {
		klog.Info("compute sources")
		seed := uint64(n)
		seeds = make([]int, nSources)
		for k := range seeds {
			seeds[k] = int(Random60(&seed) % uint64(n))
		}
	}

	klog.Infof("ReadProblem done: %v nodes, %v edges, %v seeds", G.NumNodes(), G.NumEdges(), len(seeds))
	return G, weights, seeds, nil
}

// removeDuplicateEdges drops repeated (dst, src) pairs from a graph built by
// FromCOO, keeping the first, and returns the matching permutation.
func removeDuplicateEdges(G *Graph, perm []int) (*Graph, []int) {
	n := G.NumNodes()
	indptr := make([]int, n+1)
	indices := make([]int, 0, G.NumEdges())
	kept := make([]int, 0, len(perm))
	for i := 0; i < n; i++ {
		lo, hi := G.Indptr[i], G.Indptr[i+1]
		for e := lo; e < hi; e++ {
			if e > lo && G.Indices[e] == G.Indices[e-1] {
				continue
			}
			indices = append(indices, G.Indices[e])
			kept = append(kept, perm[e])
		}
		indptr[i+1] = len(indices)
	}
	return New(indptr, indices, nil), kept
}
