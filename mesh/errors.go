package mesh

import "errors"

// Sentinel errors for domain construction and queries. All constructors and
// queries return these sentinels (possibly wrapped with positional context);
// tests and callers match them via errors.Is.
var (
	// ErrIndexOutOfRange indicates an element references a vertex index
	// outside the domain's node store.
	ErrIndexOutOfRange = errors.New("mesh: vertex index outside node store")

	// ErrDegenerateElement indicates an element with repeated vertex indices
	// or collinear corner points (zero area within tolerance).
	ErrDegenerateElement = errors.New("mesh: degenerate element")

	// ErrDuplicateElement indicates two elements with the identical set of
	// vertex indices.
	ErrDuplicateElement = errors.New("mesh: duplicate element")

	// ErrEmptyDomain indicates a spatial query against a domain with zero
	// elements.
	ErrEmptyDomain = errors.New("mesh: domain has no elements")

	// ErrVertexIndex indicates a vertex accessor received an out-of-range index.
	ErrVertexIndex = errors.New("mesh: vertex index out of range")

	// ErrElementIndex indicates an element accessor received an out-of-range index.
	ErrElementIndex = errors.New("mesh: element index out of range")
)
