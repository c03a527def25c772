// Package cli wires the meshdom command tree: flag parsing, config file
// resolution, logger setup, and the subcommands that load domains, answer
// closest-element queries, generate rectangle grids, and export sparse
// adjacency matrices.
package cli
