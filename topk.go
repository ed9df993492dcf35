package forGraphSampleGo

import "github.com/emirpasic/gods/trees/binaryheap"

// Candidate sets larger than this compute their keys in parallel.
const parallelKeyThreshold = 1 << 15

type keyedEdge struct {
	key float64
	pos int
}

func largerKey(a, b keyedEdge) bool {
	if a.key != b.key {
		return a.key > b.key
	}
	return a.pos < b.pos
}

func smallerKey(a, b keyedEdge) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.pos < b.pos
}

func computeKeys(keys []float64, c candidates, key func(e int) float64) {
	n := c.Len()
	if n < parallelKeyThreshold {
		for j := 0; j < n; j++ {
			keys[j] = key(c.At(j))
		}
		return
	}
	forRange(0, n, func(low, high int) {
		for j := low; j < high; j++ {
			keys[j] = key(c.At(j))
		}
	})
}

// selectTopK writes the positions of the k candidates ranked first by better
// to out, best first. keys[j] belongs to c.At(j).
func selectTopK(c candidates, keys []float64, k int, better func(a, b keyedEdge) bool, out []int) {
	// The root of the heap is the worst edge kept so far.
	heap := binaryheap.NewWith(func(x, y interface{}) int {
		a, b := x.(keyedEdge), y.(keyedEdge)
		switch {
		case better(b, a):
			return -1
		case better(a, b):
			return 1
		}
		return 0
	})
	for j, n := 0, c.Len(); j < n; j++ {
		edge := keyedEdge{key: keys[j], pos: c.At(j)}
		if heap.Size() < k {
			heap.Push(edge)
			continue
		}
		worst, _ := heap.Peek()
		if better(edge, worst.(keyedEdge)) {
			heap.Pop()
			heap.Push(edge)
		}
	}
	for j := k - 1; j >= 0; j-- {
		edge, _ := heap.Pop()
		out[j] = edge.(keyedEdge).pos
	}
}
