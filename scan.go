package forGraphSampleGo

import (
	"math"
	"runtime/debug"
	"unsafe"

	"github.com/intel/forGoParallel/parallel"
)

func forRange(low, high int, f func(low, high int)) {
	if high <= low {
		return
	}
	parallel.Range(low, high, f)
}

func rangeAnd(low, high int, f func(low, high int) bool) bool {
	if high <= low {
		return true
	}
	return parallel.RangeAnd(low, high, f)
}

const scanBlockSize = 1 << 14

// exclusiveScan returns offsets with len(counts)+1 entries where
// offsets[i] = counts[0] + ... + counts[i-1]. It fails with ErrAllocation if
// the total does not fit in an int.
func exclusiveScan(counts []int) (offsets []int, err error) {
	n := len(counts)
	offsets = make([]int, n+1)
	if n <= scanBlockSize {
		sum := 0
		for i, c := range counts {
			offsets[i] = sum
			if c > math.MaxInt-sum {
				return nil, allocationErrorf("output size overflows at seed position %v", i)
			}
			sum += c
		}
		offsets[n] = sum
		return offsets, nil
	}
	nblocks := (n + scanBlockSize - 1) / scanBlockSize
	blockSums := make([]int, nblocks)
	overflow := make([]bool, nblocks)
	parallel.Range(0, nblocks, func(low, high int) {
		for b := low; b < high; b++ {
			sum := 0
			for i, end := b*scanBlockSize, min((b+1)*scanBlockSize, n); i < end; i++ {
				if counts[i] > math.MaxInt-sum {
					overflow[b] = true
					break
				}
				sum += counts[i]
			}
			blockSums[b] = sum
		}
	})
	sum := 0
	for b, s := range blockSums {
		if overflow[b] || s > math.MaxInt-sum {
			return nil, allocationErrorf("output size overflows in block %v", b)
		}
		blockSums[b] = sum
		sum += s
	}
	offsets[n] = sum
	parallel.Range(0, nblocks, func(low, high int) {
		for b := low; b < high; b++ {
			sum := blockSums[b]
			for i, end := b*scanBlockSize, min((b+1)*scanBlockSize, n); i < end; i++ {
				offsets[i] = sum
				sum += counts[i]
			}
		}
	})
	return offsets, nil
}

// DefaultMemoryBudget bounds a single output buffer, in bytes, when neither
// MemoryBudget nor a runtime memory limit (debug.SetMemoryLimit, GOMEMLIMIT)
// is set.
const DefaultMemoryBudget = 1 << 36

// MemoryBudget overrides the per-buffer byte budget when positive.
var MemoryBudget int64

func memoryBudget() int64 {
	if MemoryBudget > 0 {
		return MemoryBudget
	}
	if limit := debug.SetMemoryLimit(-1); limit < math.MaxInt64 {
		return limit
	}
	return DefaultMemoryBudget
}

// allocInts sizes an output buffer. Sizes beyond limit (when positive) or
// beyond the memory budget, and runtime allocation panics, are reported as
// ErrAllocation; the runtime cannot recover from running out of memory, so
// the budget is checked before allocating.
func allocInts(n, limit int) (s []int, err error) {
	if n < 0 {
		return nil, allocationErrorf("negative buffer size %v", n)
	}
	if limit > 0 && n > limit {
		return nil, allocationErrorf("%v output edges exceed the limit of %v", n, limit)
	}
	if budget := memoryBudget(); int64(n) > budget/int64(unsafe.Sizeof(int(0))) {
		return nil, allocationErrorf("%v entries exceed the memory budget of %v bytes", n, budget)
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = allocationErrorf("cannot allocate %v entries: %v", n, r)
		}
	}()
	return make([]int, n), nil
}
