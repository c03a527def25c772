package graph

import (
	"fmt"

	"github.com/meshdom/meshdom/mesh"
	"github.com/meshdom/meshdom/sparse"
)

// Graph is the vertex graph of a polygonal domain: vertices are the
// domain's nodes, edges connect vertices sharing at least one element.
// The adjacency matrix always carries a reflexive diagonal entry per
// vertex so the weighted variant can hold its Laplacian diagonal.
// Immutable after construction.
type Graph struct {
	adj       *sparse.CSR
	positions []mesh.Node
	weighted  bool
}

// NewGraph builds the unit-weight vertex graph of d: every stored entry,
// diagonal included, is 1.
// Complexity: O(V + E) time, O(V + E) memory.
func NewGraph(d *mesh.PolygonalDomain) (*Graph, error) {
	return build(d, false)
}

// NewWeightedGraph builds the inverse-square-distance vertex graph of d:
// entry (v, w) for v != w is 1/dist(v,w)^2, and each diagonal entry is the
// negated sum of the other entries in its row. Row sums are therefore zero,
// so the matrix has graph-Laplacian shape.
// Returns ErrCoincidentVertices when two adjacent vertices coincide.
func NewWeightedGraph(d *mesh.PolygonalDomain) (*Graph, error) {
	return build(d, true)
}

func build(d *mesh.PolygonalDomain, weighted bool) (*Graph, error) {
	if d == nil {
		return nil, ErrNilDomain
	}
	positions := d.Nodes()

	var (
		values   []float64
		colIndex []int
		rowPtr   = make([]int, 1, len(positions)+1)
	)
	for v := range positions {
		peers, err := d.AdjacentVertices(v)
		if err != nil {
			return nil, fmt.Errorf("graph: vertex %d: %w", v, err)
		}

		// Row columns ascend: peers below v, then the diagonal, then the rest.
		row := make([]int, 0, len(peers)+1)
		inserted := false
		for _, w := range peers {
			if !inserted && w > v {
				row = append(row, v)
				inserted = true
			}
			row = append(row, w)
		}
		if !inserted {
			row = append(row, v)
		}

		diagAt := -1
		rowSum := 0.0
		for _, w := range row {
			if w == v {
				diagAt = len(values)
				values = append(values, 1) // placeholder for weighted diagonal
				colIndex = append(colIndex, w)
				continue
			}
			weight := 1.0
			if weighted {
				dx := positions[v].X - positions[w].X
				dy := positions[v].Y - positions[w].Y
				sq := dx*dx + dy*dy
				if sq == 0 {
					return nil, fmt.Errorf("graph: vertices %d and %d: %w", v, w, ErrCoincidentVertices)
				}
				weight = 1 / sq
			}
			rowSum += weight
			values = append(values, weight)
			colIndex = append(colIndex, w)
		}
		if weighted {
			values[diagAt] = -rowSum
		}
		rowPtr = append(rowPtr, len(values))
	}

	adj, err := sparse.FromRaw(values, colIndex, rowPtr, len(positions))
	if err != nil {
		return nil, fmt.Errorf("graph: assemble adjacency: %w", err)
	}

	return &Graph{adj: adj, positions: positions, weighted: weighted}, nil
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	kind := "Graph"
	if g.weighted {
		kind = "WeightedGraph"
	}
	return fmt.Sprintf("%s(%d vertices, %d edges)", kind, g.Order(), g.Size())
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.positions) }

// Size returns the number of undirected edges between distinct vertices.
// Reflexive diagonal entries do not count.
func (g *Graph) Size() int {
	return (g.adj.NNZ() - g.Order()) / 2
}

// Adjacency returns the underlying CSR matrix. The matrix is shared, not
// copied; it is immutable either way.
func (g *Graph) Adjacency() *sparse.CSR { return g.adj }

// Weighted reports whether the graph carries inverse-square-distance
// weights rather than unit entries.
func (g *Graph) Weighted() bool { return g.weighted }

// Position returns the coordinates of vertex v.
// Returns ErrVertexRange when v is out of range.
func (g *Graph) Position(v int) (mesh.Node, error) {
	if v < 0 || v >= len(g.positions) {
		return mesh.Node{}, fmt.Errorf("graph: vertex %d of %d: %w", v, len(g.positions), ErrVertexRange)
	}
	return g.positions[v], nil
}

// Degree returns the number of distinct neighbors of vertex v (reflexive
// entry excluded).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.positions) {
		return 0, fmt.Errorf("graph: vertex %d of %d: %w", v, len(g.positions), ErrVertexRange)
	}
	rowPtr := g.adj.RowPtr()
	return rowPtr[v+1] - rowPtr[v] - 1, nil
}
