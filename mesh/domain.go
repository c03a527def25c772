package mesh

import (
	"fmt"
	"strconv"
	"strings"
)

// PolygonalDomain is a bounded planar region discretized into elements.
//
// It exclusively owns the node store and the element list; adjacency
// mappings are derived once during construction and the whole aggregate is
// read-only afterwards, so a single domain may be shared across goroutines
// without locking.
type PolygonalDomain struct {
	nodes    []Node
	elements []Element
	adj      adjacency
	index    *quadTree // nil when disabled or the domain is empty
}

// NewPolygonalDomain builds a domain from raw node coordinates and element
// index triples.
//
// Construction is all-or-nothing: every triple must reference in-range,
// distinct, non-collinear vertices (ErrIndexOutOfRange, ErrDegenerateElement)
// and no two triples may share an identical index set (ErrDuplicateElement).
// On any failure no partial domain is returned.
// Complexity: O(V + E·k²), k = max elements per vertex.
func NewPolygonalDomain(nodes []Node, elements [][3]int, opts Options) (*PolygonalDomain, error) {
	eps := opts.epsilon()
	built := make([]Element, 0, len(elements))
	for e, tri := range elements {
		t, err := NewTriangle(nodes, tri[0], tri[1], tri[2], eps)
		if err != nil {
			return nil, fmt.Errorf("mesh: element %d: %w", e, err)
		}
		built = append(built, t)
	}

	return NewPolygonalDomainFromElements(nodes, built, opts)
}

// NewPolygonalDomainFromElements builds a domain from already-constructed
// elements. It re-validates vertex ranges (elements may come from any
// Element implementation) and rejects duplicated index sets, then derives
// the adjacency mappings and, per opts, the spatial index.
func NewPolygonalDomainFromElements(nodes []Node, elements []Element, opts Options) (*PolygonalDomain, error) {
	seen := make(map[string]int, len(elements))
	for e, el := range elements {
		for _, v := range el.Vertices() {
			if v < 0 || v >= len(nodes) {
				return nil, fmt.Errorf("mesh: element %d: vertex %d with %d nodes: %w",
					e, v, len(nodes), ErrIndexOutOfRange)
			}
		}
		key := vertexSetKey(el)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("mesh: elements %d and %d: %w", prev, e, ErrDuplicateElement)
		}
		seen[key] = e
	}

	d := &PolygonalDomain{
		nodes:    append([]Node(nil), nodes...),
		elements: append([]Element(nil), elements...),
	}
	d.adj = buildAdjacency(d.elements, len(d.nodes))
	if opts.UseIndex && len(d.elements) > 0 {
		d.index = newQuadTree(d.elements)
	}

	return d, nil
}

// vertexSetKey canonicalizes an element's vertex indices for duplicate
// detection, independent of ordering.
func vertexSetKey(el Element) string {
	vs := el.Vertices()
	sortInts(vs)
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (d *PolygonalDomain) String() string {
	return fmt.Sprintf("PolygonalDomain(%d elements, %d nodes)", len(d.elements), len(d.nodes))
}

// NumVertices returns the number of nodes in the store.
func (d *PolygonalDomain) NumVertices() int { return len(d.nodes) }

// NumElements returns the number of elements in the domain.
func (d *PolygonalDomain) NumElements() int { return len(d.elements) }

// Vertex returns the coordinates of node v.
// Returns ErrVertexIndex when v is out of range.
func (d *PolygonalDomain) Vertex(v int) (Node, error) {
	if v < 0 || v >= len(d.nodes) {
		return Node{}, fmt.Errorf("mesh: vertex %d of %d: %w", v, len(d.nodes), ErrVertexIndex)
	}
	return d.nodes[v], nil
}

// ElementAt returns element e.
// Returns ErrElementIndex when e is out of range.
func (d *PolygonalDomain) ElementAt(e int) (Element, error) {
	if e < 0 || e >= len(d.elements) {
		return nil, fmt.Errorf("mesh: element %d of %d: %w", e, len(d.elements), ErrElementIndex)
	}
	return d.elements[e], nil
}

// Nodes returns a copy of the node store.
func (d *PolygonalDomain) Nodes() []Node {
	return append([]Node(nil), d.nodes...)
}

// Elements returns a copy of the element list.
func (d *PolygonalDomain) Elements() []Element {
	return append([]Element(nil), d.elements...)
}

// ElementsContainingVertex returns the indices of elements incident to
// vertex v, ascending. An isolated vertex yields an empty slice, not an
// error.
func (d *PolygonalDomain) ElementsContainingVertex(v int) ([]int, error) {
	if v < 0 || v >= len(d.nodes) {
		return nil, fmt.Errorf("mesh: vertex %d of %d: %w", v, len(d.nodes), ErrVertexIndex)
	}
	out := make([]int, len(d.adj.vertexElements[v]))
	copy(out, d.adj.vertexElements[v])

	return out, nil
}

// AdjacentElements returns the indices of elements sharing an edge (exactly
// two vertex indices) with element e, ascending. An element with no
// neighbors yields an empty slice.
func (d *PolygonalDomain) AdjacentElements(e int) ([]int, error) {
	if e < 0 || e >= len(d.elements) {
		return nil, fmt.Errorf("mesh: element %d of %d: %w", e, len(d.elements), ErrElementIndex)
	}
	out := make([]int, len(d.adj.neighbors[e]))
	copy(out, d.adj.neighbors[e])

	return out, nil
}

// AdjacentVertices returns the vertices sharing at least one element with
// vertex v, excluding v itself, ascending.
func (d *PolygonalDomain) AdjacentVertices(v int) ([]int, error) {
	if v < 0 || v >= len(d.nodes) {
		return nil, fmt.Errorf("mesh: vertex %d of %d: %w", v, len(d.nodes), ErrVertexIndex)
	}
	out := make([]int, len(d.adj.vertexVertices[v]))
	copy(out, d.adj.vertexVertices[v])

	return out, nil
}

// DistanceToElement returns the minimum Euclidean distance from p to
// element e; zero when p lies inside it.
func (d *PolygonalDomain) DistanceToElement(p Node, e int) (float64, error) {
	if e < 0 || e >= len(d.elements) {
		return 0, fmt.Errorf("mesh: element %d of %d: %w", e, len(d.elements), ErrElementIndex)
	}
	return d.elements[e].DistanceTo(p), nil
}

// ClosestElement returns the index of the element minimizing DistanceTo(p)
// over the whole domain. Exact distance ties resolve to the lowest element
// index, so the result is deterministic. Returns ErrEmptyDomain when the
// domain holds no elements.
//
// With the quadtree index enabled (DefaultOptions) the search prunes by
// bounding-box lower bounds but matches the exhaustive scan exactly,
// tie-break included.
func (d *PolygonalDomain) ClosestElement(p Node) (int, error) {
	if len(d.elements) == 0 {
		return 0, ErrEmptyDomain
	}
	if d.index != nil {
		return d.index.nearest(p, d.elements), nil
	}
	return closestExhaustive(d.elements, p), nil
}

// closestExhaustive is the O(E) correctness baseline: scan every element,
// keep the smallest distance, prefer the lower index on exact ties.
func closestExhaustive(elements []Element, p Node) int {
	best := 0
	bestDist := elements[0].DistanceTo(p)
	for e := 1; e < len(elements); e++ {
		if dist := elements[e].DistanceTo(p); dist < bestDist {
			best, bestDist = e, dist
		}
	}

	return best
}
