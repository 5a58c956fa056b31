// Command diversity solves Maximum Diversity Problem instances and runs
// benchmark sweeps.
//
//	diversity solve --file points.txt --algo tabu -m 5
//	diversity bench --config sweep.yaml
//	diversity generate -n 30 -d 2 --seed 7 -o points.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/diversity/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log := logging.Get()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
