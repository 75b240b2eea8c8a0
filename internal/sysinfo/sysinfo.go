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

// Package sysinfo collects the run metadata reported alongside benchmark
// results: Go runtime details and the CPU SIMD features relevant to dense
// linear algebra.
package sysinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host the benchmark ran on.
type Info struct {
	GOOS        string   `json:"goos"`
	GOARCH      string   `json:"goarch"`
	NumCPU      int      `json:"num_cpu"`
	GoVersion   string   `json:"go_version"`
	BLASBackend string   `json:"blas_backend"`
	CPUFeatures []string `json:"cpu_features"`
}

// Collect gathers runtime and CPU-feature metadata. The backend name comes
// from the caller so this package stays free of the blas64 side effects.
func Collect(blasBackend string) Info {
	return Info{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		GoVersion:   runtime.Version(),
		BLASBackend: blasBackend,
		CPUFeatures: cpuFeatures(),
	}
}

// Fprint writes the metadata report, one field per line.
func (i Info) Fprint(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", i.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", i.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", i.NumCPU)
	fmt.Fprintf(w, "Go version: %s\n", i.GoVersion)
	fmt.Fprintf(w, "BLAS backend: %s\n", i.BLASBackend)
	fmt.Fprintf(w, "CPU features: %v\n", i.CPUFeatures)
}

// cpuFeatures lists the detected SIMD/FMA features for the current
// architecture. Only features that matter for BLAS-style kernels are
// reported.
func cpuFeatures() []string {
	var feats []string
	add := func(name string, has bool) {
		if has {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64":
		add("SSE2", cpu.X86.HasSSE2)
		add("SSE4.1", cpu.X86.HasSSE41)
		add("SSE4.2", cpu.X86.HasSSE42)
		add("AVX", cpu.X86.HasAVX)
		add("AVX2", cpu.X86.HasAVX2)
		add("FMA", cpu.X86.HasFMA)
		add("AVX512F", cpu.X86.HasAVX512F)
		add("AVX512DQ", cpu.X86.HasAVX512DQ)
		add("AVX512VL", cpu.X86.HasAVX512VL)
	case "arm64":
		add("FP", cpu.ARM64.HasFP)
		add("ASIMD", cpu.ARM64.HasASIMD)
		add("ASIMDHP", cpu.ARM64.HasASIMDHP)
		add("SVE", cpu.ARM64.HasSVE)
		add("SVE2", cpu.ARM64.HasSVE2)
	}
	return feats
}
