package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
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

func main() {
	var checkResult, weighted bool
	flag.BoolVar(&checkResult, "check", false, "check the sampled subgraphs")
	flag.BoolVar(&weighted, "weighted", false, "use the matrix values as edge weights")
	var config, cpuprofile, memprofile string
	flag.StringVar(&config, "config", "", "optional YAML file with sampling parameters")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional output file for a cpu profile")
	flag.StringVar(&memprofile, "memprofile", "", "optional output file for a mem profile")
	var ntrials, nsources int
	flag.IntVar(&ntrials, "trials", 3, "number of timed trials")
	flag.IntVar(&nsources, "sources", 1024, "number of random seed nodes without a sources file")
	klog.InitFlags(nil)
	flag.Parse()
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	params, err := GS.LoadSampleParams(config)
	try(err)
	G, weights, seeds, err := GS.ReadProblem(false, false, nsources, flag.Args())
	try(err)
	if weighted {
		params.ProbsOrMask = weights
	}

	G.PropertyInDegree()
	mean, median := G.SampleDegree(1000, uint64(G.NumNodes()))
	klog.Infof("in-degree mean %.2f median %.0f, strategy %v, fanouts %v", mean, median, GS.SelectStrategy(params), params.Fanouts)

	klog.Info("Warmup.")
	tic := time.Now()
	sub, err := GS.SampleNeighbors(G, seeds, params)
	try(err)
	klog.Infof("Warmup: %v edges time %v", sub.NumEdges(), time.Since(tic))

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			klog.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			klog.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	for trial := 0; trial < ntrials; trial++ {
		klog.Infof("starting trial %v", trial)
		tic = time.Now()
		sub, err = GS.SampleNeighbors(G, seeds, params)
		try(err)
		toc := time.Now()
		klog.Infof("trial %v: duration %v edges %v", trial, toc.Sub(tic), sub.NumEdges())

		if checkResult && trial == 0 {
			klog.Info("checking...")
			tic = time.Now()
			try(GS.CheckSampledSubgraph(G, seeds, params, sub))
			klog.Infof("check: %v", time.Since(tic))
		}
	}

	tic = time.Now()
	in, err := GS.InSubgraph(G, seeds)
	try(err)
	klog.Infof("in-subgraph: duration %v edges %v", time.Since(tic), in.NumEdges())

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			klog.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			klog.Fatal("could not write memory profile: ", err)
		}
	}
}
