package forGraphSampleGo_test

import (
	"strings"
	"testing"

	GS "github.com/intel/forGraphSampleGo"
	"github.com/intel/forGraphSampleGo/MatrixMarket"
	"github.com/stretchr/testify/require"
)

func TestFromCOO(t *testing.T) {
	src := []int{0, 1, 2, 0, 2, 1}
	dst := []int{1, 0, 0, 2, 1, 2}
	G, perm, err := GS.FromCOO(4, src, dst)
	require.NoError(t, err)
	require.NoError(t, G.Check())
	expected := scenarioGraph()
	require.Equal(t, expected.Indptr, G.Indptr)
	require.Equal(t, expected.Indices, G.Indices)
	require.Equal(t, []int{1, 2, 0, 4, 3, 5}, perm)
	require.Equal(t, []int{0, 1, 2, 0, 2, 1}, src, "FromCOO modified its input")

	require.Equal(t, []float64{11, 12, 10, 14, 13, 15}, GS.Permute([]float64{10, 11, 12, 13, 14, 15}, perm))
	require.Nil(t, GS.Permute[int](nil, perm))
}

func TestFromCOOLarge(t *testing.T) {
	const n, m = 2000, 50000
	G0 := randomGraph(n, 2*m/n, 0, 31)
	var src, dst []int
	for i := n - 1; i >= 0; i-- {
		for e := G0.Indptr[i]; e < G0.Indptr[i+1]; e++ {
			src = append(src, G0.Indices[e])
			dst = append(dst, i)
		}
	}
	G, perm, err := GS.FromCOO(n, src, dst)
	require.NoError(t, err)
	require.NoError(t, G.Check())
	require.Equal(t, G0.Indptr, G.Indptr)
	for i := 0; i < n; i++ {
		row := G.Indices[G.Indptr[i]:G.Indptr[i+1]]
		require.ElementsMatch(t, G0.Indices[G0.Indptr[i]:G0.Indptr[i+1]], row)
		for e := G.Indptr[i]; e < G.Indptr[i+1]; e++ {
			require.Equal(t, i, dst[perm[e]])
			require.Equal(t, G.Indices[e], src[perm[e]])
			if e > G.Indptr[i] {
				require.LessOrEqual(t, G.Indices[e-1], G.Indices[e])
			}
		}
	}
}

func TestFromCOOErrors(t *testing.T) {
	_, _, err := GS.FromCOO(3, []int{0, 1}, []int{1})
	require.ErrorIs(t, err, GS.ErrConfig)
	_, _, err = GS.FromCOO(-1, nil, nil)
	require.ErrorIs(t, err, GS.ErrConfig)
	_, _, err = GS.FromCOO(3, []int{0, 3}, []int{1, 1})
	require.ErrorIs(t, err, GS.ErrRange)
}

func TestFromMatrix(t *testing.T) {
	header, s, err := MatrixMarket.ReadHeader(strings.NewReader(`%%MatrixMarket matrix coordinate integer general
4 4 6
2 1 1
3 1 -2
1 2 3
3 2 4
1 3 5
2 3 -6
`))
	require.NoError(t, err)
	A, err := MatrixMarket.Read[int64](header, s)
	require.NoError(t, err)
	G, weights, err := GS.FromMatrix(A)
	require.NoError(t, err)
	expected := scenarioGraph()
	require.Equal(t, expected.Indptr, G.Indptr)
	require.Equal(t, expected.Indices, G.Indices)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, weights)

	header, s, err = MatrixMarket.ReadHeader(strings.NewReader("%%MatrixMarket matrix coordinate real general\n2 3 0\n"))
	require.NoError(t, err)
	B, err := MatrixMarket.Read[float64](header, s)
	require.NoError(t, err)
	_, _, err = GS.FromMatrix(B)
	require.ErrorIs(t, err, GS.ErrConfig)
}

func TestSortByDegree(t *testing.T) {
	G := scenarioGraph()
	require.Panics(t, func() { G.SortByDegree(true) })
	G.PropertyInDegree()
	require.Equal(t, []int{2, 2, 2, 0}, G.InDegree)
	require.Equal(t, []int{3, 0, 1, 2}, G.SortByDegree(true))
	require.Equal(t, []int{0, 1, 2, 3}, G.SortByDegree(false))

	G = randomGraph(5000, 20, 0, 32)
	G.PropertyInDegree()
	P := G.SortByDegree(false)
	for k := 1; k < len(P); k++ {
		d0, d1 := G.InDegree[P[k-1]], G.InDegree[P[k]]
		if d0 < d1 || d0 == d1 && P[k-1] > P[k] {
			t.Fatalf("nodes %v and %v out of order", P[k-1], P[k])
		}
	}
}

func TestSampleDegree(t *testing.T) {
	G := scenarioGraph()
	G.PropertyInDegree()
	mean, median := G.SampleDegree(1001, 7)
	require.Equal(t, 2.0, median)
	require.InDelta(t, 1.5, mean, 0.2)
	mean2, median2 := G.SampleDegree(1001, 7)
	require.Equal(t, mean, mean2)
	require.Equal(t, median, median2)

	G.DeleteProperties()
	require.Nil(t, G.InDegree)
	require.Panics(t, func() { G.SampleDegree(10, 1) })
}

func TestPropertyNumEdgeTypes(t *testing.T) {
	G := GS.New([]int{0, 2, 4, 6, 6}, []int{1, 2, 0, 2, 0, 1}, []int{0, 4, 0, 4, 2, 2})
	require.Equal(t, GS.Unknown, G.NumEdgeTypes)
	G.PropertyNumEdgeTypes()
	require.Equal(t, 3, G.NumEdgeTypes)
	sparse := GS.New([]int{0, 2}, []int{0, 0}, []int{0, 1 << 50})
	sparse.PropertyNumEdgeTypes()
	require.Equal(t, 2, sparse.NumEdgeTypes)
	scenario := scenarioGraph()
	scenario.PropertyNumEdgeTypes()
	require.Zero(t, scenario.NumEdgeTypes)
}
