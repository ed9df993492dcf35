package forGraphSampleGo_test

import (
	"os"
	"path/filepath"
	"testing"

	GS "github.com/intel/forGraphSampleGo"
	"github.com/intel/forGraphSampleGo/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadSampleParams(t *testing.T) {
	params, err := GS.LoadSampleParams("")
	require.NoError(t, err)
	require.Equal(t, GS.DefaultSampleParams(), params)

	params, err = GS.LoadSampleParams(writeConfig(t, `
fanouts: [5, -1]
layer: true
random_seed: [1, 2]
seed2_contribution: 0.5
max_edges: 1000
`))
	require.NoError(t, err)
	require.Equal(t, GS.SampleParams{
		Fanouts:           []int{5, -1},
		Layer:             true,
		ReturnEIDs:        true,
		RandomSeed:        []uint64{1, 2},
		Seed2Contribution: 0.5,
		MaxEdges:          1000,
	}, params)

	_, err = GS.LoadSampleParams(writeConfig(t, "fanout: [5]\n"))
	require.ErrorIs(t, err, GS.ErrConfig)
	_, err = GS.LoadSampleParams(writeConfig(t, "fanouts: five\n"))
	require.ErrorIs(t, err, GS.ErrConfig)
	_, err = GS.LoadSampleParams(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSelectStrategy(t *testing.T) {
	probs := []float64{1}
	for _, test := range []struct {
		params   GS.SampleParams
		expected GS.Strategy
	}{
		{GS.SampleParams{}, GS.Uniform},
		{GS.SampleParams{Replace: true}, GS.UniformReplace},
		{GS.SampleParams{ProbsOrMask: probs}, GS.Weighted},
		{GS.SampleParams{ProbsOrMask: probs, Replace: true}, GS.WeightedReplace},
		{GS.SampleParams{Layer: true}, GS.Labor},
		{GS.SampleParams{Layer: true, ProbsOrMask: probs}, GS.Labor},
	} {
		if s := GS.SelectStrategy(test.params); s != test.expected {
			t.Errorf("SelectStrategy(%+v) = %v, expected %v", test.params, s, test.expected)
		}
	}
	names := map[string]bool{}
	for _, s := range GS.AllStrategies {
		names[s.String()] = true
	}
	require.Len(t, names, len(GS.AllStrategies))
}

func TestSampleMetrics(t *testing.T) {
	G := scenarioGraph()
	calls := testutil.ToFloat64(metrics.SampleCallsTotal.WithLabelValues("sample_neighbors", "uniform-replace"))
	edges := testutil.ToFloat64(metrics.SampledEdgesTotal.WithLabelValues("sample_neighbors", "uniform-replace"))
	failures := testutil.ToFloat64(metrics.SampleErrorsTotal.WithLabelValues("sample_neighbors", "range"))
	inCalls := testutil.ToFloat64(metrics.SampleCallsTotal.WithLabelValues("in_subgraph", "all"))

	_, err := GS.SampleNeighbors(G, nil, GS.SampleParams{Fanouts: []int{3}, Replace: true})
	require.NoError(t, err)
	_, err = GS.SampleNeighbors(G, []int{7}, GS.SampleParams{Fanouts: []int{3}, Replace: true})
	require.Error(t, err)
	_, err = GS.InSubgraph(G, []int{0})
	require.NoError(t, err)

	require.Equal(t, calls+1, testutil.ToFloat64(metrics.SampleCallsTotal.WithLabelValues("sample_neighbors", "uniform-replace")))
	require.Equal(t, edges+9, testutil.ToFloat64(metrics.SampledEdgesTotal.WithLabelValues("sample_neighbors", "uniform-replace")))
	require.Equal(t, failures+1, testutil.ToFloat64(metrics.SampleErrorsTotal.WithLabelValues("sample_neighbors", "range")))
	require.Equal(t, inCalls+1, testutil.ToFloat64(metrics.SampleCallsTotal.WithLabelValues("in_subgraph", "all")))
}
