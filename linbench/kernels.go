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
	"time"

	"gonum.org/v1/gonum/mat"
)

// TimedFunc runs a kernel loops times back to back and returns the elapsed
// wall-clock time for the whole batch. The measured region covers only the
// repeated kernel calls; all setup lives in the enclosing Dataset.
type TimedFunc func(loops int) time.Duration

// MatMulKernel returns a timed batch of general dense multiplies, each
// recomputing XᵀX and discarding the result. The product receiver is reused
// across iterations so the batch measures dgemm, not allocator churn.
func (ds *Dataset) MatMulKernel() TimedFunc {
	x := ds.X
	return func(loops int) time.Duration {
		var prod mat.Dense
		t0 := time.Now()
		for i := 0; i < loops; i++ {
			prod.Mul(x.T(), x)
		}
		return time.Since(t0)
	}
}

// EigKernel returns a timed batch of full symmetric eigendecompositions of
// C, values and vectors both computed, result discarded each iteration.
// A factorization that fails to converge panics and terminates the run.
func (ds *Dataset) EigKernel() TimedFunc {
	c := ds.C
	return func(loops int) time.Duration {
		t0 := time.Now()
		for i := 0; i < loops; i++ {
			var es mat.EigenSym
			if !es.Factorize(c, true) {
				panic("linbench: symmetric eigendecomposition failed to converge")
			}
		}
		return time.Since(t0)
	}
}

// Eig performs a single decomposition of C and returns the eigenvalues in
// ascending order together with the matrix of column eigenvectors. It exists
// for result verification; the timed path is EigKernel.
func (ds *Dataset) Eig() ([]float64, *mat.Dense) {
	var es mat.EigenSym
	if !es.Factorize(ds.C, true) {
		panic("linbench: symmetric eigendecomposition failed to converge")
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return es.Values(nil), &vecs
}
