package forGraphSampleGo

import "sort"

// SampleDegree estimates the mean and median in-degree from nSamples nodes
// drawn with replacement. It requires the InDegree property.
func (G *Graph) SampleDegree(nSamples int, seed uint64) (sampleMean, sampleMedian float64) {
	if nSamples < 1 {
		nSamples = 1
	}
	if G.InDegree == nil {
		panic("in-degree property unknown")
	}
	n := len(G.InDegree)
	if n == 0 {
		return
	}
	samples := make([]int, nSamples)
	dsum := 0
	for k := 0; k < nSamples; k++ {
		i := int(Random60(&seed) % uint64(n))
		d := G.InDegree[i]
		samples[k] = d
		dsum += d
	}
	sampleMean = float64(dsum) / float64(nSamples)
	sort.Ints(samples)
	sampleMedian = float64(samples[nSamples/2])
	return
}
