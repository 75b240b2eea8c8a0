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
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

// fakeKernel pretends each loop takes exactly one millisecond.
func fakeKernel(loops int) time.Duration {
	return time.Duration(loops) * time.Millisecond
}

func TestCalibrateDoublesUntilMinTime(t *testing.T) {
	loops := calibrate("fake", fakeKernel, 50*time.Millisecond)
	if loops != 64 {
		t.Errorf("calibrate = %d loops, want 64", loops)
	}
}

func TestCalibrateImmediateWhenSlow(t *testing.T) {
	slow := func(loops int) time.Duration {
		return time.Duration(loops) * time.Second
	}
	if loops := calibrate("slow", slow, 100*time.Millisecond); loops != 1 {
		t.Errorf("calibrate = %d loops, want 1", loops)
	}
}

func TestBenchTimeFuncFixedLoops(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(Options{Warmups: 0, Samples: 4, Loops: 10})
	r.Out = &buf

	res := r.BenchTimeFunc("fake", fakeKernel)

	if res.Loops != 10 {
		t.Errorf("res.Loops = %d, want 10", res.Loops)
	}
	if len(res.Samples) != 4 {
		t.Fatalf("len(res.Samples) = %d, want 4", len(res.Samples))
	}
	for i, s := range res.Samples {
		if math.Abs(s-0.001) > 1e-12 {
			t.Errorf("res.Samples[%d] = %g, want 0.001", i, s)
		}
	}
	if res.StdDev() != 0 {
		t.Errorf("res.StdDev() = %g, want 0 for identical samples", res.StdDev())
	}
	if got := buf.String(); !strings.Contains(got, "fake: Mean +- std dev:") {
		t.Errorf("report line missing from output: %q", got)
	}
}

func TestBenchTimeFuncCallCount(t *testing.T) {
	calls := 0
	counting := func(loops int) time.Duration {
		calls++
		return fakeKernel(loops)
	}

	r := NewRunner(Options{Warmups: 2, Samples: 3, Loops: 1})
	r.Out = &bytes.Buffer{}
	r.BenchTimeFunc("counting", counting)

	// Fixed loops skip calibration: 2 warmups + 3 samples.
	if calls != 5 {
		t.Errorf("kernel invoked %d times, want 5", calls)
	}
}

func TestRunnerAccumulatesResults(t *testing.T) {
	r := NewRunner(Options{Warmups: 0, Samples: 1, Loops: 1})
	r.Out = &bytes.Buffer{}

	r.BenchTimeFunc("first", fakeKernel)
	r.BenchTimeFunc("second", fakeKernel)

	results := r.Results()
	if len(results) != 2 {
		t.Fatalf("len(Results()) = %d, want 2", len(results))
	}
	if results[0].Name != "first" || results[1].Name != "second" {
		t.Errorf("result order = %q, %q; want first, second",
			results[0].Name, results[1].Name)
	}
}

func TestResultStats(t *testing.T) {
	res := Result{Name: "stats", Loops: 1, Samples: []float64{1, 2, 3}}

	if got := res.Mean(); got != 2 {
		t.Errorf("Mean() = %g, want 2", got)
	}
	if got := res.StdDev(); got != 1 {
		t.Errorf("StdDev() = %g, want 1", got)
	}
	if got := res.Min(); got != 1 {
		t.Errorf("Min() = %g, want 1", got)
	}
	if got := res.Max(); got != 3 {
		t.Errorf("Max() = %g, want 3", got)
	}
}

func TestResultJSONFields(t *testing.T) {
	res := Result{Name: "matmul", Loops: 4, Samples: []float64{0.5, 0.25}}

	buf, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded Result
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != res.Name || decoded.Loops != res.Loops || len(decoded.Samples) != 2 {
		t.Errorf("round trip = %+v, want %+v", decoded, res)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{1.5, "1.50 sec"},
		{0.0123, "12.30 ms"},
		{2.5e-5, "25.00 us"},
		{5e-8, "50 ns"},
		{0, "0 ns"},
	}
	for _, tc := range tests {
		if got := FormatSeconds(tc.sec); got != tc.want {
			t.Errorf("FormatSeconds(%g) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}
