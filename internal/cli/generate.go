package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshdom/meshdom/builder"
	"github.com/meshdom/meshdom/meshio"
)

func newGenerateCmd() *cobra.Command {
	var (
		rows     int
		cols     int
		elemPath string
		vertPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a triangulated rectangle grid and write it to mesh files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			nodes, elements, err := builder.Rectangle(rows, cols)
			if err != nil {
				return err
			}
			if err := meshio.WriteVertexFile(vertPath, nodes, meshio.WithLogger(logger)); err != nil {
				return err
			}
			if err := meshio.WriteElementFile(elemPath, elements, meshio.WithLogger(logger)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d vertices to %s and %d elements to %s\n",
				len(nodes), vertPath, len(elements), elemPath)

			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 1, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 1, "grid columns")
	cmd.Flags().StringVar(&elemPath, "elements", "elements.txt", "output element file")
	cmd.Flags().StringVar(&vertPath, "vertices", "vertices.txt", "output vertex file")

	return cmd
}
