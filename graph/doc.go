// Package graph models the vertex relationships of a polygonal domain as a
// sparse adjacency matrix.
//
// What:
//
//   - Graph — one row/column per domain vertex; entry (v, w) is stored when
//     w shares an element with v, plus a reflexive diagonal entry per
//     vertex. Backed by sparse.CSR.
//   - NewGraph — unit weights: every stored entry is 1.
//   - NewWeightedGraph — off-diagonal weight 1/‖v−w‖², diagonal set to the
//     negated row sum. The result has the shape of a graph Laplacian: row
//     sums vanish, so constant vectors lie in its null space.
//
// Why:
//
//   - Numerical-solver layers assemble their systems from exactly this
//     structure; the mesh package guarantees the underlying adjacency
//     mappings are complete and symmetric.
//
// Errors:
//
//   - ErrNilDomain          — constructor received a nil domain.
//   - ErrVertexRange        — Position index outside the vertex store.
//   - ErrCoincidentVertices — two adjacent vertices share coordinates, so
//     the inverse-square-distance weight is undefined.
package graph
