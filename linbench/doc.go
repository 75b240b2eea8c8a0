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

// Package linbench benchmarks dense linear-algebra kernels through gonum.
//
// The package builds a read-only Dataset once (a large random matrix X and
// its Gram matrix C = XᵀX), then times repeated kernel invocations against
// it. Two kernels are provided:
//
//   - matmul: recompute XᵀX with a general dense multiply (dgemm)
//   - eigendecomposition: full symmetric eigendecomposition of C (dsyev)
//
// Timing, loop-count calibration, warmup and statistical aggregation are
// handled by Runner, which mirrors the calibrate/warmup/sample protocol of
// process-level benchmark harnesses: it doubles the per-batch loop count
// until a batch exceeds a minimum duration, discards warmup batches, and
// reports mean and standard deviation over the remaining samples.
//
// # Example Usage
//
//	ds := linbench.NewDataset(100000, 1000, 0)
//	r := linbench.NewRunner(linbench.DefaultOptions())
//	r.BenchTimeFunc("matmul", ds.MatMulKernel())
//	r.BenchTimeFunc("eigendecomposition", ds.EigKernel())
//
// All numerical work happens inside the registered BLAS/LAPACK backend; see
// the internal/backend package for backend selection.
package linbench
