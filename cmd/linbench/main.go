// Copyright 2026 go-linbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command linbench benchmarks dense matrix multiplication and symmetric
// eigendecomposition through gonum, against a randomly generated dataset
// built once per run.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type benchFlags struct {
	rows    int
	cols    int
	seed    uint64
	samples int
	warmups int
	minTime time.Duration
	loops   int
	jsonOut string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &benchFlags{}

	root := &cobra.Command{
		Use:   "linbench",
		Short: "benchmark dense matmul and symmetric eigendecomposition",
		Long: `linbench builds a large random matrix X and its Gram matrix C = X'*X once,
then times repeated gonum kernel calls against them: a general dense
multiply recomputing X'*X, and a full symmetric eigendecomposition of C.
Loop counts are calibrated, warmup batches discarded, and mean/stddev
reported over the recorded samples.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if flags.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, flags)
		},
	}

	root.Flags().IntVar(&flags.rows, "rows", 100000, "rows of the random matrix X")
	root.Flags().IntVar(&flags.cols, "cols", 1000, "columns of X (and side of C)")
	root.Flags().Uint64Var(&flags.seed, "seed", 0, "RNG seed (0 = time-based)")
	root.Flags().IntVar(&flags.samples, "samples", 5, "recorded batches per benchmark")
	root.Flags().IntVar(&flags.warmups, "warmups", 1, "discarded warmup batches per benchmark")
	root.Flags().DurationVar(&flags.minTime, "min-time", 100*time.Millisecond, "calibration target per batch")
	root.Flags().IntVar(&flags.loops, "loops", 0, "fixed loop count per batch (0 = calibrate)")
	root.Flags().StringVar(&flags.jsonOut, "json", "", "write results as JSON to this file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInfoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
