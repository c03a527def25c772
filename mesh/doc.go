// Package mesh models a bounded planar region as an immutable mesh of
// triangular elements and answers spatial and adjacency queries over it.
//
// What:
//
//   - Node — a 2D point, referenced by integer index.
//   - Element — the geometric contract (Area, Contains, DistanceTo,
//     Centroid, SharedVertices); Triangle is the sole concrete variant.
//   - PolygonalDomain — owns the node store and element list, derives the
//     vertex↔element adjacency mappings once at construction, and answers
//     ClosestElement queries.
//
// Why:
//
//   - Finite-element-style computations need a concrete, queryable
//     discretization of a domain rather than an abstract continuous region.
//   - Adjacency mappings (vertex→elements, element→edge-neighbors,
//     vertex→vertices) are exactly what a solver needs to assemble sparse
//     systems; they are guaranteed complete and symmetric.
//
// Determinism:
//
//   - All accessors return indices in ascending order.
//   - ClosestElement breaks exact distance ties toward the lowest element
//     index, with or without the quadtree accelerator.
//
// Complexity:
//
//   - Construction: O(V + E·k) where k bounds the elements per vertex.
//   - ClosestElement: O(E) exhaustive baseline; typically O(log E) with the
//     quadtree index enabled (DefaultOptions).
//
// Errors:
//
//   - ErrIndexOutOfRange   — element references a vertex outside the store.
//   - ErrDegenerateElement — collinear or repeated vertex indices.
//   - ErrDuplicateElement  — two elements share an identical index set.
//   - ErrEmptyDomain       — spatial query on a domain with zero elements.
//   - ErrVertexIndex, ErrElementIndex — accessor bounds violations.
//
// The domain never mutates after construction, so concurrent readers are
// safe without locking.
package mesh
