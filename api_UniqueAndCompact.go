package forGraphSampleGo

import "github.com/emirpasic/gods/maps/linkedhashmap"

// UniqueAndCompact renumbers node ids into a dense local range. unique starts
// with the distinct seeds in order of first occurrence, followed by every
// neighbor id not seen before, in order of first appearance. compacted[j] is
// the position of neighbors[j] in unique.
func UniqueAndCompact(seeds, neighbors []int) (unique, compacted []int) {
	positions := linkedhashmap.New()
	insert := func(id int) int {
		if pos, found := positions.Get(id); found {
			return pos.(int)
		}
		pos := positions.Size()
		positions.Put(id, pos)
		return pos
	}
	for _, id := range seeds {
		insert(id)
	}
	compacted = make([]int, len(neighbors))
	for j, id := range neighbors {
		compacted[j] = insert(id)
	}
	unique = make([]int, 0, positions.Size())
	for _, id := range positions.Keys() {
		unique = append(unique, id.(int))
	}
	return unique, compacted
}
