package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/diversity/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "diversity",
		Short:         "Maximum Diversity Problem solvers",
		Long:          "diversity selects m of n points maximizing the sum of pairwise Euclidean distances,\nwith constructive heuristics, GRASP, tabu search and exact branch-and-bound.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			return logging.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newSolveCmd(), newBenchCmd(), newGenerateCmd())

	return root
}
