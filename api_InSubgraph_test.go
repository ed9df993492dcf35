package forGraphSampleGo_test

import (
	"testing"

	GS "github.com/intel/forGraphSampleGo"
	"github.com/stretchr/testify/require"
)

func TestInSubgraphScenario(t *testing.T) {
	G := scenarioGraph()
	sub, err := GS.InSubgraph(G, []int{2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 2, 4}, sub.Indptr)
	require.Equal(t, []int{0, 1, 1, 2}, sub.Indices)
	require.Equal(t, []int{4, 5, 0, 1}, sub.OriginalEdgeIDs)
	require.Equal(t, []int{2, 3, 0}, sub.OriginalColumnNodeIDs)
	require.Nil(t, sub.TypePerEdge)
}

func TestInSubgraphComplete(t *testing.T) {
	G := randomGraph(300, 8, 4, 11)
	nodes := []int{5, 299, 0, 5, 100}
	sub, err := GS.InSubgraph(G, nodes)
	require.NoError(t, err)
	params := GS.SampleParams{Fanouts: []int{-1}, ReturnEIDs: true}
	require.NoError(t, GS.CheckSampledSubgraph(G, nodes, params, sub))
	for i, node := range nodes {
		require.Equal(t, G.Indices[G.Indptr[node]:G.Indptr[node+1]], sub.Edges(i))
		require.Equal(t, G.TypePerEdge[G.Indptr[node]:G.Indptr[node+1]], sub.TypePerEdge[sub.Indptr[i]:sub.Indptr[i+1]])
	}
}

func TestInSubgraphMatchesFanoutAll(t *testing.T) {
	G := randomGraph(150, 6, 0, 12)
	all, err := GS.InSubgraph(G, []int{})
	require.NoError(t, err)
	require.Zero(t, all.NumNodes())

	nodes := []int{3, 1, 4, 1, 5, 9, 2, 6}
	expected, err := GS.InSubgraph(G, nodes)
	require.NoError(t, err)
	sampled, err := GS.SampleNeighbors(G, nodes, GS.SampleParams{Fanouts: []int{-1}, ReturnEIDs: true, RandomSeed: []uint64{1}})
	require.NoError(t, err)
	require.Equal(t, expected.Indptr, sampled.Indptr)
	for i := range nodes {
		require.ElementsMatch(t, expected.Edges(i), sampled.Edges(i))
	}
}

func TestInSubgraphErrors(t *testing.T) {
	G := scenarioGraph()
	_, err := GS.InSubgraph(G, []int{0, 4})
	require.ErrorIs(t, err, GS.ErrRange)
	_, err = GS.InSubgraph(GS.New([]int{1, 2}, []int{0}, nil), []int{0})
	require.ErrorIs(t, err, GS.ErrConfig)
	_, err = GS.InSubgraph(GS.New([]int{0, 1}, []int{0}, []int{-1}), []int{0})
	require.ErrorIs(t, err, GS.ErrRange)
}
