package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshdom/meshdom/graph"
)

func newGraphCmd(cfg *Config) *cobra.Command {
	var (
		flags    domainFlags
		weighted bool
		out      string
		binary   bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Derive the vertex adjacency matrix of a domain",
		Long:  "graph builds the vertex adjacency structure of a domain as a sparse\nmatrix. With --weighted the matrix is the inverse-square-distance\nLaplacian instead of the unit adjacency.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.load(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			build := graph.NewGraph
			if weighted {
				build = graph.NewWeightedGraph
			}
			g, err := build(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g)

			if out == "" {
				return nil
			}
			m := g.Adjacency()
			if binary {
				err = m.SaveBinary(out)
			} else {
				err = m.SaveText(out)
			}
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("saved matrix", "path", out, "entries", m.NNZ())

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&weighted, "weighted", false, "build the inverse-square-distance Laplacian")
	cmd.Flags().StringVar(&out, "out", "", "write the matrix to this path")
	cmd.Flags().BoolVar(&binary, "binary", false, "write the matrix gzip-compressed instead of as text")

	return cmd
}
