package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diversity/bench"
	"github.com/katalvlaran/diversity/config"
	"github.com/katalvlaran/diversity/logging"
)

func newBenchCmd() *cobra.Command {
	var (
		configPath string
		dir        string
		outDir     string
		format     string
		metrics    string
		dump       bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a parameter sweep and write one report per experiment",
		Long: "bench runs every experiment of a YAML sweep. Without --config it runs the\n" +
			"reference sweep over problem_instances/max_div_{15,20,30}_{2,3}.txt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep := config.Default()
			if configPath != "" {
				var err error
				if sweep, err = config.Load(configPath); err != nil {
					return err
				}
				if dir == "" {
					dir = filepath.Dir(configPath)
				}
			}
			if outDir != "" {
				sweep.Output.Dir = outDir
			}
			if format != "" {
				sweep.Output.Format = format
			}
			if metrics != "" {
				sweep.Output.Metrics = metrics
			}
			if err := sweep.Validate(); err != nil {
				return err
			}
			if dump {
				return config.Write(cmd.OutOrStdout(), sweep)
			}
			if sweep.Log.Level != "" && !cmd.Flags().Changed("log-level") {
				if err := logging.SetLevel(sweep.Log.Level); err != nil {
					return err
				}
			}

			cases, err := bench.Expand(sweep)
			if err != nil {
				return err
			}
			log := logging.Get()
			log.Info().Int("cases", len(cases)).Int("runs", sweep.Runs).Msg("sweep started")

			var m *bench.Metrics
			if sweep.Output.Metrics != "" {
				m = bench.NewMetrics()
			}
			runner := bench.NewRunner(sweep, dir, &log, m)
			sums, err := runner.Run(cmd.Context(), cases)
			if err != nil {
				return err
			}

			paths, err := bench.WriteReports(sweep.Output.Dir, sweep.Output.Format, sums)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if m != nil {
				if err = m.WriteTextfile(sweep.Output.Metrics); err != nil {
					return fmt.Errorf("metrics: %w", err)
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&configPath, "config", "c", "", "sweep YAML file")
	fl.StringVar(&dir, "dir", "", "base directory of relative instance paths (default: the config file's directory)")
	fl.StringVarP(&outDir, "out", "o", "", "report directory (overrides output.dir)")
	fl.StringVar(&format, "format", "", "report format: markdown or csv (overrides output.format)")
	fl.StringVar(&metrics, "metrics", "", "Prometheus textfile path (overrides output.metrics)")
	fl.BoolVar(&dump, "dump-config", false, "print the effective sweep as YAML and exit")

	return cmd
}
