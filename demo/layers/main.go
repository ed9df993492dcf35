package main

import (
	"flag"
	"strconv"
	"strings"
	"time"

	GS "github.com/intel/forGraphSampleGo"
	"github.com/plan-systems/klog"
)

func try(err error) {
	if err != nil {
		klog.Flush()
		panic(err)
	}
}

// parseFanouts reads a comma separated fanout per layer, e.g. "10,10,5".
func parseFanouts(s string) [][]int {
	var layers [][]int
	for _, field := range strings.Split(s, ",") {
		f, err := strconv.Atoi(strings.TrimSpace(field))
		try(err)
		layers = append(layers, []int{f})
	}
	return layers
}

// overlap is the fraction of b's edges whose (row node, neighbor) pair also occurs in a.
func overlap(a, b *GS.FusedSampledSubgraph) float64 {
	type pair struct{ node, neighbor int }
	seen := make(map[pair]bool, a.NumEdges())
	for i := 0; i < a.NumNodes(); i++ {
		for _, v := range a.Edges(i) {
			seen[pair{a.OriginalColumnNodeIDs[i], v}] = true
		}
	}
	shared := 0
	for i := 0; i < b.NumNodes(); i++ {
		for _, v := range b.Edges(i) {
			if seen[pair{b.OriginalColumnNodeIDs[i], v}] {
				shared++
			}
		}
	}
	if b.NumEdges() == 0 {
		return 0
	}
	return float64(shared) / float64(b.NumEdges())
}

func main() {
	var fanouts string
	flag.StringVar(&fanouts, "fanouts", "10,10,10", "comma separated fanout per layer")
	var nsources int
	flag.IntVar(&nsources, "sources", 1024, "number of random seed nodes without a sources file")
	var seed uint64
	flag.Uint64Var(&seed, "seed", 42, "random seed shared by all layers")
	var contribution float64
	flag.Float64Var(&contribution, "seed2", 0, "contribution of the second random seed")
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	G, _, seeds, err := GS.ReadProblem(true, true, nsources, flag.Args())
	try(err)
	layerFanouts := parseFanouts(fanouts)

	for _, layer := range []bool{false, true} {
		params := GS.SampleParams{
			Layer:             layer,
			ReturnEIDs:        true,
			RandomSeed:        []uint64{seed, seed + 1},
			Seed2Contribution: contribution,
		}
		tic := time.Now()
		layers, err := GS.SampleLayers(G, seeds, layerFanouts, params)
		try(err)
		klog.Infof("layer=%v: %v hops in %v", layer, len(layers), time.Since(tic))
		for k, l := range layers {
			klog.Infof("  hop %v: %v seeds, %v edges, %v nodes", k, l.Subgraph.NumNodes(), l.Subgraph.NumEdges(), len(l.Nodes))
		}
		for k := 0; k+1 < len(layers); k++ {
			klog.Infof("  edge overlap of hop %v with hop %v: %.3f", k+1, k, overlap(layers[k].Subgraph, layers[k+1].Subgraph))
		}
	}
}
