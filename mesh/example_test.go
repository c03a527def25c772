package mesh_test

import (
	"fmt"

	"github.com/meshdom/meshdom/mesh"
)

// ExampleNewPolygonalDomain builds the canonical square split along its
// diagonal and queries the adjacency mappings and the closest element.
//
//	3───2
//	│ ╱ │
//	0───1
func ExampleNewPolygonalDomain() {
	nodes := []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d, _ := mesh.NewPolygonalDomain(nodes, [][3]int{{0, 1, 2}, {0, 2, 3}}, mesh.DefaultOptions())

	fmt.Println(d)
	for e := 0; e < d.NumElements(); e++ {
		neighbors, _ := d.AdjacentElements(e)
		fmt.Printf("element %d neighbors: %v\n", e, neighbors)
	}

	// The midpoint lies on the shared diagonal; the tie resolves to the
	// lowest element index.
	closest, _ := d.ClosestElement(mesh.Node{X: 0.5, Y: 0.5})
	fmt.Println("closest to (0.5,0.5):", closest)

	// Output:
	// PolygonalDomain(2 elements, 4 nodes)
	// element 0 neighbors: [1]
	// element 1 neighbors: [0]
	// closest to (0.5,0.5): 0
}

// ExampleTriangle_DistanceTo measures distances from a point to a triangle
// from the outside, the boundary, and the interior.
func ExampleTriangle_DistanceTo() {
	nodes := []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tr, _ := mesh.NewTriangle(nodes, 0, 1, 2, 0)

	fmt.Println(tr.DistanceTo(mesh.Node{X: 0.25, Y: 0.25}))
	fmt.Println(tr.DistanceTo(mesh.Node{X: -1, Y: 0}))
	fmt.Printf("%.4f\n", tr.DistanceTo(mesh.Node{X: 1, Y: 1}))

	// Output:
	// 0
	// 1
	// 0.7071
}
