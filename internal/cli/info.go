package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(cfg *Config) *cobra.Command {
	var flags domainFlags

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print summary statistics of a domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.load(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			var totalArea float64
			for _, el := range d.Elements() {
				totalArea += el.Area()
			}

			boundary := 0
			for e := 0; e < d.NumElements(); e++ {
				neighbors, err := d.AdjacentElements(e)
				if err != nil {
					return err
				}
				if len(neighbors) < 3 {
					boundary++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d)
			fmt.Fprintf(out, "total area:        %g\n", totalArea)
			fmt.Fprintf(out, "boundary elements: %d\n", boundary)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
