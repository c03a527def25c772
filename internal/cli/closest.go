package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meshdom/meshdom/mesh"
)

func newClosestCmd(cfg *Config) *cobra.Command {
	var flags domainFlags

	cmd := &cobra.Command{
		Use:   "closest X Y",
		Short: "Find the element closest to a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("cli: %q is not a coordinate", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("cli: %q is not a coordinate", args[1])
			}

			d, err := flags.load(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			p := mesh.Node{X: x, Y: y}
			e, err := d.ClosestElement(p)
			if err != nil {
				return err
			}
			dist, err := d.DistanceToElement(p, e)
			if err != nil {
				return err
			}
			el, err := d.ElementAt(e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "element:  %d\n", e)
			fmt.Fprintf(out, "distance: %g\n", dist)
			fmt.Fprintf(out, "vertices: %v\n", el.Vertices())
			c := el.Centroid()
			fmt.Fprintf(out, "centroid: (%g, %g)\n", c.X, c.Y)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
