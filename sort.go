package forGraphSampleGo

import (
	"sort"

	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
)

// coordinateSorter orders edges by (dst, src) and carries the original
// coordinate position along in perm.
type coordinateSorter struct {
	dst, src, perm []int
}

func (s coordinateSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(coordinateSorter)
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.dst[i:i+len], src.dst[j:j+len])
		}, func() {
			copy(s.src[i:i+len], src.src[j:j+len])
		}, func() {
			copy(s.perm[i:i+len], src.perm[j:j+len])
		})
	}
}

func (s coordinateSorter) Len() int {
	return len(s.dst)
}

func (s coordinateSorter) Less(i, j int) bool {
	if s.dst[i] != s.dst[j] {
		return s.dst[i] < s.dst[j]
	}
	return s.src[i] < s.src[j]
}

func (s coordinateSorter) NewTemp() psort.StableSorter {
	return coordinateSorter{
		dst:  make([]int, len(s.dst)),
		src:  make([]int, len(s.src)),
		perm: make([]int, len(s.perm)),
	}
}

func (s coordinateSorter) SequentialSort(i, j int) {
	sort.Stable(coordinateSorter{
		dst:  s.dst[i:j],
		src:  s.src[i:j],
		perm: s.perm[i:j],
	})
}

func (s coordinateSorter) Swap(i, j int) {
	s.dst[i], s.dst[j] = s.dst[j], s.dst[i]
	s.src[i], s.src[j] = s.src[j], s.src[i]
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
}

// keyedNodeSorter orders nodes by key, breaking ties by node id.
type keyedNodeSorter struct {
	keys, nodes []int
}

func (s keyedNodeSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(keyedNodeSorter)
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.keys[i:i+len], src.keys[j:j+len])
		}, func() {
			copy(s.nodes[i:i+len], src.nodes[j:j+len])
		})
	}
}

func (s keyedNodeSorter) Len() int {
	return len(s.keys)
}

func (s keyedNodeSorter) Less(i, j int) bool {
	if s.keys[i] != s.keys[j] {
		return s.keys[i] < s.keys[j]
	}
	return s.nodes[i] < s.nodes[j]
}

func (s keyedNodeSorter) NewTemp() psort.StableSorter {
	return keyedNodeSorter{
		keys:  make([]int, len(s.keys)),
		nodes: make([]int, len(s.nodes)),
	}
}

func (s keyedNodeSorter) SequentialSort(i, j int) {
	sort.Stable(keyedNodeSorter{
		keys:  s.keys[i:j],
		nodes: s.nodes[i:j],
	})
}

func (s keyedNodeSorter) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.nodes[i], s.nodes[j] = s.nodes[j], s.nodes[i]
}
