package mesh

import (
	"fmt"
	"math"
)

// Triangle is an element defined by three vertex indices into the owning
// domain's node store. The corner coordinates are resolved once at
// construction; the domain is immutable afterwards, so the snapshot never
// goes stale.
type Triangle struct {
	idx     [3]int
	a, b, c Node
	eps     float64
}

// NewTriangle validates (i, j, k) against nodes and returns the resulting
// Triangle.
//
// Returns ErrIndexOutOfRange when any index falls outside nodes, and
// ErrDegenerateElement when indices repeat or the referenced points are
// collinear within eps (eps ≤ 0 means DefaultEpsilon).
// Complexity: O(1).
func NewTriangle(nodes []Node, i, j, k int, eps float64) (Triangle, error) {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	for _, v := range [3]int{i, j, k} {
		if v < 0 || v >= len(nodes) {
			return Triangle{}, fmt.Errorf("vertex %d with %d nodes: %w", v, len(nodes), ErrIndexOutOfRange)
		}
	}
	if i == j || j == k || i == k {
		return Triangle{}, fmt.Errorf("indices (%d,%d,%d) not distinct: %w", i, j, k, ErrDegenerateElement)
	}
	t := Triangle{idx: [3]int{i, j, k}, a: nodes[i], b: nodes[j], c: nodes[k], eps: eps}
	if math.Abs(t.signedDoubleArea()) <= eps {
		return Triangle{}, fmt.Errorf("collinear corners (%d,%d,%d): %w", i, j, k, ErrDegenerateElement)
	}

	return t, nil
}

// signedDoubleArea returns the cross product (b-a)×(c-a): twice the signed
// triangle area.
func (t Triangle) signedDoubleArea() float64 {
	return cross(t.a, t.b, t.c)
}

// cross returns (b-a)×(p-a); its sign tells which side of the directed line
// a→b the point p lies on.
func cross(a, b, p Node) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Vertices returns a copy of the triangle's vertex indices in construction
// order.
func (t Triangle) Vertices() []int {
	return []int{t.idx[0], t.idx[1], t.idx[2]}
}

// Area returns the triangle's geometric area via the shoelace formula.
// Strictly positive for any constructed Triangle.
// Complexity: O(1).
func (t Triangle) Area() float64 {
	return math.Abs(t.signedDoubleArea()) / 2
}

// Contains reports whether p lies within the closed triangle, boundary
// inclusive. Sign consistency of the three edge cross products decides the
// answer; comparisons use the triangle's epsilon so points exactly on an
// edge are never rejected by rounding noise.
// Complexity: O(1).
func (t Triangle) Contains(p Node) bool {
	d1 := cross(t.a, t.b, p)
	d2 := cross(t.b, t.c, p)
	d3 := cross(t.c, t.a, p)

	hasNeg := d1 < -t.eps || d2 < -t.eps || d3 < -t.eps
	hasPos := d1 > t.eps || d2 > t.eps || d3 > t.eps

	return !(hasNeg && hasPos)
}

// DistanceTo returns the minimum Euclidean distance from p to the triangle:
// zero when p lies inside, otherwise the smallest point-to-segment distance
// over the three bounding edges.
// Complexity: O(1).
func (t Triangle) DistanceTo(p Node) float64 {
	if t.Contains(p) {
		return 0
	}
	d := DistancePointToSegment(p, t.a, t.b)
	if e := DistancePointToSegment(p, t.b, t.c); e < d {
		d = e
	}
	if e := DistancePointToSegment(p, t.c, t.a); e < d {
		d = e
	}

	return d
}

// Centroid returns the arithmetic mean of the three corner points.
func (t Triangle) Centroid() Node {
	return Node{
		X: (t.a.X + t.b.X + t.c.X) / 3,
		Y: (t.a.Y + t.b.Y + t.c.Y) / 3,
	}
}

// SharedVertices returns the sorted vertex indices shared with other.
// Complexity: O(1) for triangle pairs (3×3 index comparison).
func (t Triangle) SharedVertices(other Element) []int {
	shared := make([]int, 0, 3)
	for _, v := range other.Vertices() {
		if v == t.idx[0] || v == t.idx[1] || v == t.idx[2] {
			shared = append(shared, v)
		}
	}
	sortInts(shared)

	return shared
}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (t Triangle) BoundingBox() (Node, Node) {
	lo := Node{X: min3(t.a.X, t.b.X, t.c.X), Y: min3(t.a.Y, t.b.Y, t.c.Y)}
	hi := Node{X: max3(t.a.X, t.b.X, t.c.X), Y: max3(t.a.Y, t.b.Y, t.c.Y)}

	return lo, hi
}

// DistancePointToSegment returns the Euclidean distance from p to the
// closed segment [a, b]. The projection parameter is clamped to [0,1], so
// endpoints are handled without special cases; a degenerate segment (a == b)
// degrades to plain point distance.
func DistancePointToSegment(p, a, b Node) float64 {
	abX, abY := b.X-a.X, b.Y-a.Y
	apX, apY := p.X-a.X, p.Y-a.Y

	den := abX*abX + abY*abY
	s := 0.0
	if den > 0 {
		s = (apX*abX + apY*abY) / den
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}
	dx := p.X - (a.X + s*abX)
	dy := p.Y - (a.Y + s*abY)

	return math.Hypot(dx, dy)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// sortInts sorts tiny index slices in place; insertion sort beats the
// generic sort for the ≤3-entry slices SharedVertices produces.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
