package graph_test

import (
	"testing"

	"github.com/meshdom/meshdom/builder"
	"github.com/meshdom/meshdom/graph"
	"github.com/meshdom/meshdom/mesh"
	"github.com/stretchr/testify/require"
)

// squareDomain is the unit square split along the 0–2 diagonal.
func squareDomain(t *testing.T) *mesh.PolygonalDomain {
	t.Helper()
	nodes := []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d, err := mesh.NewPolygonalDomain(nodes, [][3]int{{0, 1, 2}, {0, 2, 3}}, mesh.DefaultOptions())
	require.NoError(t, err)
	return d
}

func TestNewGraph_NilDomain(t *testing.T) {
	_, err := graph.NewGraph(nil)
	require.ErrorIs(t, err, graph.ErrNilDomain)
	_, err = graph.NewWeightedGraph(nil)
	require.ErrorIs(t, err, graph.ErrNilDomain)
}

func TestNewGraph_Square(t *testing.T) {
	g, err := graph.NewGraph(squareDomain(t))
	require.NoError(t, err)

	require.Equal(t, 4, g.Order())
	require.Equal(t, 5, g.Size()) // 4 sides + 1 diagonal
	require.Equal(t, "Graph(4 vertices, 5 edges)", g.String())
	require.False(t, g.Weighted())

	// Diagonal vertices 0 and 2 see everyone; 1 and 3 miss each other.
	wantDegree := []int{3, 2, 3, 2}
	for v, want := range wantDegree {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		require.Equal(t, want, deg, "vertex %d", v)
	}

	// Unit weights everywhere, reflexive diagonal included.
	adj := g.Adjacency()
	require.Equal(t, 14, adj.NNZ())
	adj.Entries(func(i, j int, v float64) bool {
		require.Equal(t, 1.0, v, "entry (%d,%d)", i, j)
		return true
	})

	// Symmetry of the stored pattern.
	for i := 0; i < g.Order(); i++ {
		for j := 0; j < g.Order(); j++ {
			vij, err := adj.At(i, j)
			require.NoError(t, err)
			vji, err := adj.At(j, i)
			require.NoError(t, err)
			require.Equal(t, vij, vji, "(%d,%d) vs (%d,%d)", i, j, j, i)
		}
	}
}

func TestNewWeightedGraph_Square(t *testing.T) {
	g, err := graph.NewWeightedGraph(squareDomain(t))
	require.NoError(t, err)
	require.True(t, g.Weighted())
	require.Equal(t, "WeightedGraph(4 vertices, 5 edges)", g.String())

	adj := g.Adjacency()

	// Unit-distance neighbors weigh 1, the √2 diagonal weighs 1/2.
	w01, err := adj.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, w01, 1e-12)
	w02, err := adj.At(0, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.5, w02, 1e-12)

	// Diagonal entries negate their row sums.
	w00, err := adj.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, -2.5, w00, 1e-12)

	// Laplacian shape: constant vectors lie in the null space.
	ones := []float64{1, 1, 1, 1}
	y, err := adj.MulVec(ones)
	require.NoError(t, err)
	for i, v := range y {
		require.InDelta(t, 0.0, v, 1e-12, "row %d sum", i)
	}
}

func TestNewWeightedGraph_CoincidentCorners(t *testing.T) {
	// Exactly coincident corners collapse the triangle's area to zero, so
	// the mesh layer rejects the input before the graph-level coincidence
	// guard can ever trigger on a valid domain.
	nodes := []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	_, err := mesh.NewPolygonalDomain(nodes, [][3]int{{0, 1, 3}, {1, 2, 3}}, mesh.DefaultOptions())
	require.ErrorIs(t, err, mesh.ErrDegenerateElement)
}

// TestGraph_RectangleCounts checks order/size on a triangulated grid, where
// both are known in closed form.
func TestGraph_RectangleCounts(t *testing.T) {
	nodes, elements, err := builder.Rectangle(3, 5)
	require.NoError(t, err)
	d, err := mesh.NewPolygonalDomain(nodes, elements, mesh.DefaultOptions())
	require.NoError(t, err)

	g, err := graph.NewGraph(d)
	require.NoError(t, err)
	require.Equal(t, 4*6, g.Order())

	// Horizontal (rows+1)·cols, vertical rows·(cols+1), one cell diagonal
	// per cell.
	wantEdges := (3+1)*5 + 3*(5+1) + 3*5
	require.Equal(t, wantEdges, g.Size())
}

func TestGraph_PositionAndBounds(t *testing.T) {
	g, err := graph.NewGraph(squareDomain(t))
	require.NoError(t, err)

	p, err := g.Position(3)
	require.NoError(t, err)
	require.Equal(t, mesh.Node{X: 0, Y: 1}, p)

	_, err = g.Position(4)
	require.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.Degree(-1)
	require.ErrorIs(t, err, graph.ErrVertexRange)
}
