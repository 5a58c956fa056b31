package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diversity/instance"
)

func newGenerateCmd() *cobra.Command {
	var (
		points    int
		dim       int
		seed      int64
		low, high float64
		precision int
		output    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance in the text instance format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := instance.Random(points, dim,
				instance.WithSeed(seed),
				instance.WithRange(low, high),
				instance.WithPrecision(precision))
			if err != nil {
				return err
			}
			if output == "" {
				return instance.Write(cmd.OutOrStdout(), inst)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err = instance.Write(f, inst); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&points, "points", "n", 15, "number of points")
	fl.IntVarP(&dim, "dim", "d", 2, "dimensionality")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.Float64Var(&low, "min", 0, "lower coordinate bound (inclusive)")
	fl.Float64Var(&high, "max", 10, "upper coordinate bound")
	fl.IntVar(&precision, "precision", 2, "decimal places per coordinate")
	fl.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
