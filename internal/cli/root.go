package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute builds the meshdom command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		cfgPath string
		cfg     Config
	)

	root := &cobra.Command{
		Use:           "meshdom",
		Short:         "Inspect and transform 2D triangular mesh domains",
		Long:          "meshdom loads triangular mesh domains from vertex and element files,\nanswers geometric queries against them, and derives sparse adjacency\nand Laplacian matrices.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			loaded, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded

			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file (default meshdom.toml if present)")

	root.AddCommand(
		newInfoCmd(&cfg),
		newClosestCmd(&cfg),
		newGenerateCmd(),
		newGraphCmd(&cfg),
	)

	return root
}
