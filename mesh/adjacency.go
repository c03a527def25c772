package mesh

import "sort"

// adjacency holds the derived mappings of a domain. Always reconstructable
// from the node store and element list; built exactly once at construction.
type adjacency struct {
	// vertexElements[v] lists the elements incident to vertex v, ascending.
	vertexElements [][]int
	// neighbors[e] lists the elements sharing exactly one edge (two vertex
	// indices) with element e, ascending. Symmetric by construction.
	neighbors [][]int
	// vertexVertices[v] lists the vertices sharing an element with v,
	// excluding v itself, ascending. Symmetric by construction.
	vertexVertices [][]int
}

// buildAdjacency derives all three mappings in one pass over the element
// list plus a per-vertex candidate sweep.
//
// Vertex→elements is a single O(E) bucket fill. Element neighbors are found
// by testing only pairs co-incident on a common vertex — the buckets bound
// the candidate set, avoiding the naive O(E²) all-pairs scan. A pair
// neighbors exactly when SharedVertices yields two indices.
//
// Time: O(E·k²) with k the max elements per vertex; Memory: O(E + V).
func buildAdjacency(elements []Element, numVertices int) adjacency {
	adj := adjacency{
		vertexElements: make([][]int, numVertices),
		neighbors:      make([][]int, len(elements)),
		vertexVertices: make([][]int, numVertices),
	}

	// 1) Vertex→elements: element indices ascend, so buckets come out sorted.
	for e, el := range elements {
		for _, v := range el.Vertices() {
			adj.vertexElements[v] = append(adj.vertexElements[v], e)
		}
	}

	// 2) Element→neighbors: candidates restricted to bucket co-residents.
	tested := make(map[[2]int]struct{})
	for _, bucket := range adj.vertexElements {
		for x := 0; x < len(bucket); x++ {
			for y := x + 1; y < len(bucket); y++ {
				a, b := bucket[x], bucket[y]
				key := [2]int{a, b}
				if _, done := tested[key]; done {
					continue
				}
				tested[key] = struct{}{}
				if len(elements[a].SharedVertices(elements[b])) == 2 {
					adj.neighbors[a] = append(adj.neighbors[a], b)
					adj.neighbors[b] = append(adj.neighbors[b], a)
				}
			}
		}
	}
	for e := range adj.neighbors {
		sort.Ints(adj.neighbors[e])
	}

	// 3) Vertex→vertices: union of co-element vertices, self excluded.
	for v := range adj.vertexVertices {
		var peers []int
		for _, e := range adj.vertexElements[v] {
			for _, w := range elements[e].Vertices() {
				if w != v {
					peers = append(peers, w)
				}
			}
		}
		adj.vertexVertices[v] = dedupSorted(peers)
	}

	return adj
}

// dedupSorted sorts s ascending and removes duplicates in place.
func dedupSorted(s []int) []int {
	if len(s) == 0 {
		return s
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
