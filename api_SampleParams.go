package forGraphSampleGo

import (
	"math"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SampleParams configures SampleNeighbors and SampleLayers.
type SampleParams struct {
	// Fanouts has one entry, applied to all edges of a node, or one entry per
	// edge type. -1 takes all edges.
	Fanouts []int `yaml:"fanouts"`
	Replace bool  `yaml:"replace"`
	// Layer selects LABOR-0 sampling (arXiv:2210.13339).
	Layer      bool `yaml:"layer"`
	ReturnEIDs bool `yaml:"return_eids"`
	// ProbsOrMask holds one unnormalized non-negative weight per edge; 0 excludes the edge.
	ProbsOrMask []float64 `yaml:"-"`
	// RandomSeed holds zero, one or two seeds. A missing first seed is drawn at random.
	RandomSeed        []uint64 `yaml:"random_seed"`
	Seed2Contribution float64  `yaml:"seed2_contribution"`
	// MaxEdges bounds the number of output edges; 0 means unbounded.
	MaxEdges int `yaml:"max_edges"`
}

func DefaultSampleParams() SampleParams {
	return SampleParams{
		Fanouts:    []int{10},
		ReturnEIDs: true,
	}
}

// LoadSampleParams reads parameters from a YAML file on top of the defaults.
// Unknown keys are rejected.
func LoadSampleParams(path string) (SampleParams, error) {
	params := DefaultSampleParams()
	if path == "" {
		return params, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return params, errors.Wrap(err, "failed to open sampling config")
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err = decoder.Decode(&params); err != nil {
		return params, errors.Wrapf(ErrConfig, "failed to parse sampling config %v: %v", path, err)
	}
	return params, nil
}

// SelectStrategy picks the edge selection algorithm from the parameters.
func SelectStrategy(params SampleParams) Strategy {
	switch {
	case params.Layer:
		return Labor
	case params.ProbsOrMask != nil && params.Replace:
		return WeightedReplace
	case params.ProbsOrMask != nil:
		return Weighted
	case params.Replace:
		return UniformReplace
	}
	return Uniform
}

// checkParams validates everything that does not depend on the seed nodes.
func checkParams(G *Graph, params SampleParams) error {
	if err := checkFanouts(G, params.Fanouts); err != nil {
		return err
	}
	if params.Replace && params.Layer {
		return configErrorf("replace=true cannot be combined with layer=true")
	}
	if probs := params.ProbsOrMask; probs != nil {
		if len(probs) != G.NumEdges() {
			return configErrorf("probs_or_mask has %v entries, expected %v", len(probs), G.NumEdges())
		}
		valid := rangeAnd(0, len(probs), func(low, high int) bool {
			for e := low; e < high; e++ {
				if w := probs[e]; !(w >= 0) || math.IsInf(w, 1) {
					return false
				}
			}
			return true
		})
		if !valid {
			return configErrorf("probs_or_mask entries must be finite and non-negative")
		}
	}
	if len(params.RandomSeed) > 2 {
		return configErrorf("random_seed has %v entries, at most 2 allowed", len(params.RandomSeed))
	}
	if c := params.Seed2Contribution; !(c >= 0 && c < 1) {
		return configErrorf("seed2_contribution %v outside [0, 1)", c)
	}
	if params.MaxEdges < 0 {
		return configErrorf("max_edges must be non-negative, got %v", params.MaxEdges)
	}
	return nil
}

// seeds returns the primary and secondary random seeds.
func (params SampleParams) seeds() (seed1, seed2 uint64) {
	switch len(params.RandomSeed) {
	case 0:
		seed1 = rand.Uint64()
		seed2 = mix(seed1, saltLabor2)
	case 1:
		seed1 = params.RandomSeed[0]
		seed2 = mix(seed1, saltLabor2)
	default:
		seed1, seed2 = params.RandomSeed[0], params.RandomSeed[1]
	}
	return
}

// MaskToProbs converts a boolean edge mask into 0/1 weights.
func MaskToProbs(mask []bool) []float64 {
	probs := make([]float64, len(mask))
	forRange(0, len(mask), func(low, high int) {
		for e := low; e < high; e++ {
			if mask[e] {
				probs[e] = 1
			}
		}
	})
	return probs
}
