package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNilDomain indicates a constructor received a nil domain.
	ErrNilDomain = errors.New("graph: nil domain")

	// ErrVertexRange indicates a vertex index outside the graph's order.
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrCoincidentVertices indicates two element-sharing vertices with
	// identical coordinates; inverse-square-distance weights are undefined
	// for them.
	ErrCoincidentVertices = errors.New("graph: adjacent vertices share coordinates")
)
