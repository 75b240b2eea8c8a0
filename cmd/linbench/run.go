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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-linbench/internal/backend"
	"github.com/ajroetker/go-linbench/internal/sysinfo"
	"github.com/ajroetker/go-linbench/linbench"
)

const bannerWidth = 70

// jsonReport is the --json output: run metadata plus per-benchmark results
// with their aggregate statistics.
type jsonReport struct {
	Metadata sysinfo.Info `json:"metadata"`
	Results  []jsonResult `json:"results"`
}

type jsonResult struct {
	linbench.Result
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func runBench(cmd *cobra.Command, flags *benchFlags) error {
	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	banner(out, '=', "Matrix Multiplication and Eigendecomposition Benchmark")
	fmt.Fprintln(out)

	setupStart := time.Now()
	ds := linbench.NewDataset(flags.rows, flags.cols, flags.seed)
	log.Debug().Dur("elapsed", time.Since(setupStart)).Msg("setup complete")

	runner := linbench.NewRunner(linbench.Options{
		Warmups: flags.warmups,
		Samples: flags.samples,
		MinTime: flags.minTime,
		Loops:   flags.loops,
	})
	runner.Out = out

	rows, cols := ds.Dims()
	banner(out, '-', "BENCHMARK 1: Matrix Multiplication (X'*X)",
		p.Sprintf("Matrix X shape: %d x %d", rows, cols))
	runner.BenchTimeFunc("matmul", ds.MatMulKernel())

	fmt.Fprintln(out)
	banner(out, '-', "BENCHMARK 2: Eigendecomposition of C",
		p.Sprintf("Matrix C shape: %d x %d", cols, cols))
	runner.BenchTimeFunc("eigendecomposition", ds.EigKernel())

	if flags.jsonOut != "" {
		if err := writeJSON(flags.jsonOut, runner.Results()); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
	}
	return nil
}

// banner prints a separator line, the given title lines, and a closing
// separator, matching the report's fixed-width section framing.
func banner(w io.Writer, sep rune, lines ...string) {
	rule := strings.Repeat(string(sep), bannerWidth)
	fmt.Fprintln(w, rule)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, rule)
}

func writeJSON(path string, results []linbench.Result) error {
	report := jsonReport{
		Metadata: sysinfo.Collect(backend.Name()),
		Results:  make([]jsonResult, 0, len(results)),
	}
	for _, res := range results {
		report.Results = append(report.Results, jsonResult{
			Result: res,
			Mean:   res.Mean(),
			StdDev: res.StdDev(),
			Min:    res.Min(),
			Max:    res.Max(),
		})
	}
	buf, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}
