// Package builder generates synthetic domain data for tests, benchmarks,
// and demos.
//
// What:
//
//   - Rectangle(rows, cols) — raw node and element data for a rows×cols
//     grid of unit squares, each split into two triangles along the
//     diagonal from its lower-right to its upper-left corner.
//
// Determinism:
//
//   - Nodes are emitted in row-major order (y ascending, then x ascending),
//     so node index n sits at (n mod cols+1, n div cols+1).
//   - Per cell the lower-left triangle precedes the upper-right one; cells
//     are visited row-major. Identical inputs always produce identical data.
//
// Errors:
//
//   - ErrBadDimensions — rows or cols below 1.
//
// Feed the output straight into mesh.NewPolygonalDomain.
package builder
