// Package meshdom represents bounded planar regions as triangular meshes
// and answers spatial and adjacency queries over them — the concrete,
// queryable discretization that finite-element-style computations need.
//
// What meshdom gives you:
//
//   - mesh/    — Node, Element (Triangle) and PolygonalDomain: immutable
//     triangulated domains with vertex↔element adjacency mappings and an
//     exact closest-element query (quadtree-accelerated).
//   - builder/ — synthetic domain generators (triangulated rectangle grids).
//   - sparse/  — a CSR sparse matrix with matrix-vector products and
//     text / gzip+JSON persistence.
//   - graph/   — the vertex graph of a domain, with unit or
//     inverse-square-distance (Laplacian-shaped) weights.
//   - meshio/  — readers and writers for count-prefixed element and vertex
//     text files.
//
// Everything is constructed once and read-only afterwards: concurrent
// readers need no locking, and every query is a finite, deterministic
// computation.
//
// A square split along its diagonal:
//
//	3───2
//	│ ╱ │
//	0───1
//
//	nodes    = [(0,0) (1,0) (1,1) (0,1)]
//	elements = [(0,1,2) (0,2,3)]
//
// yields Element→Neighbors {0:{1}, 1:{0}}, and ClosestElement((0.5,0.5))
// returns 0 — the midpoint lies on the shared diagonal and ties resolve to
// the lowest element index.
//
//	go get github.com/meshdom/meshdom
package meshdom
