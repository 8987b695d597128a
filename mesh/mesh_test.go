package mesh_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karuvel/demograv/mesh"
	"github.com/karuvel/demograv/pointset"
)

// interiorQuad is a triangle with one strictly interior point: its only
// valid triangulation is three triangles fanning around index 3, which
// makes every structural expectation deterministic.
func interiorQuad(t *testing.T) *pointset.Set {
	t.Helper()
	s, err := pointset.FromSlices(
		[]float64{0, 4, 2, 2},
		[]float64{0, 0, 3, 1},
		nil,
	)
	require.NoError(t, err)

	return s
}

// TestTriangulate_InputValidation covers nil and undersized sets.
func TestTriangulate_InputValidation(t *testing.T) {
	_, err := mesh.Triangulate(nil)
	assert.ErrorIs(t, err, mesh.ErrNilSet)

	two, err := pointset.FromSlices([]float64{0, 1}, []float64{0, 1}, nil)
	require.NoError(t, err)
	_, err = mesh.Triangulate(two)
	assert.ErrorIs(t, err, mesh.ErrTooFewPoints)
}

// TestTriangulate_CollinearIsDegenerate ensures a fully collinear set
// surfaces as a construction failure, not a silent empty result.
func TestTriangulate_CollinearIsDegenerate(t *testing.T) {
	line, err := pointset.FromSlices(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 2, 3},
		nil,
	)
	require.NoError(t, err)

	_, err = mesh.Triangulate(line)
	assert.ErrorIs(t, err, mesh.ErrDegenerate)
}

// TestTriangulate_InteriorPointFan checks the deterministic fan
// triangulation: three triangles, all sharing the interior vertex.
func TestTriangulate_InteriorPointFan(t *testing.T) {
	tri, err := mesh.Triangulate(interiorQuad(t))
	require.NoError(t, err)

	assert.Equal(t, 4, tri.NumPoints())
	require.Equal(t, 3, tri.NumTriangles())
	for _, tr := range tri.Triangles {
		assert.Contains(t, tr[:], 3, "every triangle must include the interior vertex")
		assert.NotEqual(t, tr[0], tr[1])
		assert.NotEqual(t, tr[1], tr[2])
		assert.NotEqual(t, tr[0], tr[2])
	}
}

// TestCentroids_VertexMeans verifies centroids are the per-triangle
// vertex means, independent of triangle ordering.
func TestCentroids_VertexMeans(t *testing.T) {
	tri, err := mesh.Triangulate(interiorQuad(t))
	require.NoError(t, err)

	centers := tri.Centroids()
	require.Equal(t, tri.NumTriangles(), centers.Len())
	assert.Equal(t, 0.0, centers.TotalWeight(), "centroids carry no weight")

	// The three fan triangles have known centroids; compare as sorted
	// (lon, lat) pairs to stay independent of triangle order.
	got := make([][2]float64, centers.Len())
	for i := range got {
		got[i] = [2]float64{centers.Lon[i], centers.Lat[i]}
	}
	want := [][2]float64{
		{2.0, 1.0 / 3.0},       // (0,0)-(4,0)-(2,1)
		{8.0 / 3.0, 4.0 / 3.0}, // (4,0)-(2,3)-(2,1)
		{4.0 / 3.0, 4.0 / 3.0}, // (0,0)-(2,3)-(2,1)
	}
	less := func(p [][2]float64) func(i, j int) bool {
		return func(i, j int) bool {
			if p[i][0] != p[j][0] {
				return p[i][0] < p[j][0]
			}

			return p[i][1] < p[j][1]
		}
	}
	sort.Slice(got, less(got))
	sort.Slice(want, less(want))
	for i := range want {
		assert.InDelta(t, want[i][0], got[i][0], 1e-12)
		assert.InDelta(t, want[i][1], got[i][1], 1e-12)
	}
}

// TestAdjacency_InteriorPointFan checks the fan's adjacency is the
// complete graph on four vertices.
func TestAdjacency_InteriorPointFan(t *testing.T) {
	tri, err := mesh.Triangulate(interiorQuad(t))
	require.NoError(t, err)

	adj := tri.Adjacency()
	require.Equal(t, 4, adj.Order())
	assert.Equal(t, 6, adj.NumEdges())

	assert.Equal(t, []int{1, 2, 3}, adj.Neighbors(0))
	assert.Equal(t, []int{0, 2, 3}, adj.Neighbors(1))
	assert.Equal(t, []int{0, 1, 3}, adj.Neighbors(2))
	assert.Equal(t, []int{0, 1, 2}, adj.Neighbors(3))
	for v := 0; v < 4; v++ {
		assert.Equal(t, 3, adj.Degree(v))
	}
}

// TestAdjacency_RandomInvariants checks structural invariants on a
// larger random triangulation: symmetry, sorted dedup'd neighbor lists,
// no self-loops, and the planar-graph edge bound E ≤ 3V−6.
func TestAdjacency_RandomInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	lon := make([]float64, n)
	lat := make([]float64, n)
	for i := 0; i < n; i++ {
		lon[i] = -122 + rng.Float64()
		lat[i] = 37 + rng.Float64()
	}
	s, err := pointset.FromSlices(lon, lat, nil)
	require.NoError(t, err)

	tri, err := mesh.Triangulate(s)
	require.NoError(t, err)
	adj := tri.Adjacency()
	require.Equal(t, n, adj.Order())
	assert.LessOrEqual(t, adj.NumEdges(), 3*n-6, "planar graph edge bound")

	for v := 0; v < n; v++ {
		nbrs := adj.Neighbors(v)
		assert.True(t, sort.IntsAreSorted(nbrs), "neighbors of %d must be sorted", v)
		for k, u := range nbrs {
			assert.NotEqual(t, v, u, "no self-loops")
			if k > 0 {
				assert.NotEqual(t, nbrs[k-1], u, "no duplicate neighbors")
			}
			// Symmetry: v must appear in u's list.
			us := adj.Neighbors(u)
			at := sort.SearchInts(us, v)
			require.Truef(t, at < len(us) && us[at] == v, "edge %d–%d not mirrored", v, u)
		}
	}

	// Every triangle edge must be present in the adjacency.
	for _, tr := range tri.Triangles {
		pairs := [3][2]int{{tr[0], tr[1]}, {tr[1], tr[2]}, {tr[2], tr[0]}}
		for _, p := range pairs {
			nbrs := adj.Neighbors(p[0])
			at := sort.SearchInts(nbrs, p[1])
			assert.True(t, at < len(nbrs) && nbrs[at] == p[1])
		}
	}
}
