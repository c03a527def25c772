// Package sparse implements a compressed sparse row (CSR) matrix of
// float64 values, sized for the adjacency and Laplacian-shaped matrices the
// graph package assembles over polygonal domains.
//
// What:
//
//   - CSR — immutable CSR storage: values, column indices, and cumulative
//     row pointers. Built from a dense [][]float64 (NewFromDense) or from
//     validated raw arrays (FromRaw).
//   - At(i, j) — O(row nnz) entry lookup; absent entries read as 0.
//   - MulVec — matrix-vector product, the one linear-algebra operation a
//     matrix-free solver loop needs.
//   - Persistence — dense tab-separated text or gzip-compressed JSON of the
//     raw CSR arrays; Load sniffs the gzip magic bytes and accepts either.
//
// Why CSR:
//
//   - Domain adjacency matrices are overwhelmingly zero; CSR stores only
//     the nonzero entries yet keeps row-major iteration cache-friendly.
//
// Determinism:
//
//   - Construction scans rows ascending and columns ascending, so the
//     values/colIndex arrays are uniquely determined by the input.
//
// Errors:
//
//   - ErrRagged            — dense input rows differ in length.
//   - ErrBadShape          — raw CSR arrays are inconsistent.
//   - ErrOutOfRange        — At indices outside the matrix.
//   - ErrDimensionMismatch — MulVec argument length ≠ Cols.
//   - ErrBadEncoding       — persisted data fails to parse.
package sparse
