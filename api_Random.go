package forGraphSampleGo

import "math"

const Random60Max = (1 << 60) - 1

const goldenGamma = 0x9e3779b97f4a7c15

func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Random60 advances *seed and returns 60 random bits.
func Random60(seed *uint64) uint64 {
	*seed += goldenGamma
	return splitmix64(*seed) & Random60Max
}

// Salts separate the random streams of the strategies so that the same
// (seed, node) pair never shares variates between them.
const (
	saltUniform uint64 = iota + 1
	saltUniformReplace
	saltWeighted
	saltWeightedReplace
	saltLabor
	saltLabor2
)

// mix hashes a seed with a sequence of words.
func mix(seed uint64, words ...uint64) uint64 {
	h := splitmix64(seed + goldenGamma)
	for _, w := range words {
		h = splitmix64(h ^ (w + goldenGamma))
	}
	return h
}

// stream is a counter-based random sequence. Its state is only a key and a
// counter, so any element can be computed without generating the ones
// before it, and independent streams never share mutable state.
type stream struct {
	key, counter uint64
}

func newStream(seed uint64, node, edgeType int, salt uint64) stream {
	return stream{key: mix(seed, uint64(node), uint64(edgeType), salt)}
}

func (s *stream) Uint64() uint64 {
	x := s.at(s.counter)
	s.counter++
	return x
}

func (s stream) at(i uint64) uint64 {
	return splitmix64(s.key + (i+1)*goldenGamma)
}

// Float64 returns a value in the open interval (0, 1).
func (s *stream) Float64() float64 {
	return unitOpen(s.Uint64())
}

func (s stream) float64At(i uint64) float64 {
	return unitOpen(s.at(i))
}

// Intn returns a value in [0, n) without modulo bias.
func (s *stream) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		x := s.Uint64()
		if x >= threshold {
			return int(x % bound)
		}
	}
}

func unitOpen(x uint64) float64 {
	return (float64(x>>12) + 0.5) / (1 << 52)
}

// hashUniform maps (seed, id) to a value in (0, 1) that depends on nothing else.
func hashUniform(seed uint64, id int, salt uint64) float64 {
	return unitOpen(mix(seed, uint64(id), salt))
}

func exponentialFromUniform(u float64) float64 {
	return -math.Log(u)
}
