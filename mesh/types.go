// Package mesh: domain-facing types and construction options.
// Sentinel errors live in errors.go, the Triangle implementation in
// element.go, and the PolygonalDomain aggregate in domain.go.
package mesh

// DefaultEpsilon is the numeric tolerance used for collinearity and
// boundary-containment tests when Options.Epsilon is left at zero.
const DefaultEpsilon = 1e-9

// Node represents a 2D point. Nodes are identified solely by their integer
// position in the owning domain's node store and never change once the
// domain is built.
type Node struct {
	X, Y float64
}

// Element is the geometric contract every mesh element satisfies.
//
// Triangle is currently the only concrete variant; the adjacency builder
// and the closest-element query depend only on this interface, so adding a
// quadrilateral or general polygon variant requires no change to either.
type Element interface {
	// Vertices returns the element's vertex indices in construction order.
	// The returned slice is a copy.
	Vertices() []int

	// Area returns the element's geometric area, strictly positive for any
	// successfully constructed element.
	Area() float64

	// Contains reports whether p lies within the closed element, boundary
	// inclusive within the element's epsilon.
	Contains(p Node) bool

	// DistanceTo returns the minimum Euclidean distance from p to the
	// element; zero when Contains(p) holds.
	DistanceTo(p Node) float64

	// Centroid returns the arithmetic mean of the element's corner points.
	Centroid() Node

	// SharedVertices returns the sorted vertex indices this element shares
	// with other. Two shared indices mean the elements neighbor across an
	// edge; one means they merely touch at a vertex.
	SharedVertices(other Element) []int

	// BoundingBox returns the element's axis-aligned bounding box as
	// (min, max) corners. Used by the spatial index.
	BoundingBox() (Node, Node)
}

// Options contains tunable parameters for domain construction.
type Options struct {
	// Epsilon is the numeric tolerance for collinearity and containment
	// tests. Zero or negative means DefaultEpsilon.
	Epsilon float64

	// UseIndex enables the quadtree accelerator for ClosestElement. Results
	// are identical to the exhaustive scan either way, tie-break included.
	UseIndex bool
}

// DefaultOptions returns the standard construction settings:
// Epsilon=DefaultEpsilon, quadtree index enabled.
func DefaultOptions() Options {
	return Options{
		Epsilon:  DefaultEpsilon,
		UseIndex: true,
	}
}

// epsilon normalizes the configured tolerance.
func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}
