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

package linbench

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Options controls the calibrate/warmup/sample protocol of a Runner.
type Options struct {
	// Warmups is the number of timed batches discarded before sampling.
	Warmups int
	// Samples is the number of recorded batches per benchmark.
	Samples int
	// MinTime is the calibration target: the per-batch loop count is
	// doubled until one batch takes at least this long.
	MinTime time.Duration
	// Loops, when nonzero, fixes the per-batch loop count and skips
	// calibration entirely.
	Loops int
}

// DefaultOptions returns the settings used by the linbench CLI: one warmup
// batch, five recorded samples, batches calibrated to at least 100ms.
func DefaultOptions() Options {
	return Options{
		Warmups: 1,
		Samples: 5,
		MinTime: 100 * time.Millisecond,
	}
}

// Result is the outcome of one named benchmark: the calibrated loop count
// and the per-loop durations, in seconds, of each recorded sample.
type Result struct {
	Name    string    `json:"name"`
	Loops   int       `json:"loops"`
	Samples []float64 `json:"samples"`
}

// Mean returns the mean per-loop duration in seconds.
func (r Result) Mean() float64 { return stat.Mean(r.Samples, nil) }

// StdDev returns the sample standard deviation of the per-loop durations.
// It is zero when fewer than two samples were recorded.
func (r Result) StdDev() float64 {
	if len(r.Samples) < 2 {
		return 0
	}
	return stat.StdDev(r.Samples, nil)
}

// Min returns the fastest per-loop duration in seconds.
func (r Result) Min() float64 { return floats.Min(r.Samples) }

// Max returns the slowest per-loop duration in seconds.
func (r Result) Max() float64 { return floats.Max(r.Samples) }

// String renders the harness report line for this result.
func (r Result) String() string {
	return fmt.Sprintf("%s: Mean +- std dev: %s +- %s",
		r.Name, FormatSeconds(r.Mean()), FormatSeconds(r.StdDev()))
}

// Runner registers kernels under a name and runs each through the full
// calibrate/warmup/sample protocol, appending a Result per benchmark and
// writing one report line to Out.
type Runner struct {
	// Out receives the per-benchmark report lines. Defaults to os.Stdout.
	Out io.Writer

	opts    Options
	results []Result
}

// NewRunner returns a Runner writing its report to os.Stdout.
func NewRunner(opts Options) *Runner {
	return &Runner{Out: os.Stdout, opts: opts}
}

// BenchTimeFunc benchmarks fn under the given name: calibrate the loop
// count (unless Options.Loops fixes it), run the warmup batches, then record
// Options.Samples batches. The Result is appended to Results and its report
// line written to Out.
func (r *Runner) BenchTimeFunc(name string, fn TimedFunc) Result {
	loops := r.opts.Loops
	if loops <= 0 {
		loops = calibrate(name, fn, r.opts.MinTime)
	}

	for i := 0; i < r.opts.Warmups; i++ {
		d := fn(loops)
		log.Debug().Str("bench", name).Int("loops", loops).
			Dur("elapsed", d).Msg("warmup batch")
	}

	samples := make([]float64, 0, r.opts.Samples)
	for i := 0; i < r.opts.Samples; i++ {
		d := fn(loops)
		samples = append(samples, d.Seconds()/float64(loops))
	}

	res := Result{Name: name, Loops: loops, Samples: samples}
	r.results = append(r.results, res)
	fmt.Fprintln(r.Out, res.String())
	return res
}

// Results returns every Result recorded so far, in registration order.
func (r *Runner) Results() []Result {
	return r.results
}

// calibrate doubles the batch loop count until one batch takes at least
// minTime, so that sample durations dominate timer resolution.
func calibrate(name string, fn TimedFunc, minTime time.Duration) int {
	for loops := 1; ; loops *= 2 {
		d := fn(loops)
		log.Debug().Str("bench", name).Int("loops", loops).
			Dur("elapsed", d).Msg("calibration batch")
		if d >= minTime || loops >= 1<<30 {
			return loops
		}
	}
}

// FormatSeconds renders a duration given in seconds the way benchmark
// harnesses report one: scaled to sec, ms, us or ns with two decimals.
func FormatSeconds(sec float64) string {
	switch {
	case sec >= 1:
		return fmt.Sprintf("%.2f sec", sec)
	case sec >= 1e-3:
		return fmt.Sprintf("%.2f ms", sec*1e3)
	case sec >= 1e-6:
		return fmt.Sprintf("%.2f us", sec*1e6)
	default:
		return fmt.Sprintf("%.0f ns", sec*1e9)
	}
}
