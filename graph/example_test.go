package graph_test

import (
	"fmt"

	"github.com/meshdom/meshdom/builder"
	"github.com/meshdom/meshdom/graph"
	"github.com/meshdom/meshdom/mesh"
)

// ExampleNewWeightedGraph assembles the Laplacian-shaped vertex matrix of a
// small triangulated grid and confirms its rows sum to zero.
func ExampleNewWeightedGraph() {
	nodes, elements, _ := builder.Rectangle(2, 2)
	d, _ := mesh.NewPolygonalDomain(nodes, elements, mesh.DefaultOptions())

	g, _ := graph.NewWeightedGraph(d)
	fmt.Println(g)

	ones := make([]float64, g.Order())
	for i := range ones {
		ones[i] = 1
	}
	y, _ := g.Adjacency().MulVec(ones)
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	fmt.Printf("row sums total: %.0f\n", sum)

	// Output:
	// WeightedGraph(9 vertices, 16 edges)
	// row sums total: 0
}
