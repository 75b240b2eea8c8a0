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

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset holds the two matrices every kernel runs against. Both are built
// once by NewDataset and never mutated afterwards, so the same Dataset can
// back any number of timed batches without re-setup.
type Dataset struct {
	// X is a rows×cols matrix of independent standard-normal values.
	X *mat.Dense
	// C is the cols×cols Gram matrix XᵀX derived from X at setup.
	C *mat.SymDense
}

// NewDataset builds a rows×cols matrix of N(0,1) draws and its Gram matrix.
// A zero seed draws a fresh seed from the wall clock, so two default-seeded
// datasets of the same shape hold different values. Any nonzero seed is
// reproducible.
//
// Setup cost (random fill plus one dsyrk) is paid here, outside any timed
// region. Allocation failure for large shapes is fatal and not recovered.
func NewDataset(rows, cols int, seed uint64) *Dataset {
	if rows <= 0 || cols <= 0 {
		panic("linbench: dataset dimensions must be positive")
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = norm.Rand()
	}
	x := mat.NewDense(rows, cols, data)

	var c mat.SymDense
	c.SymOuterK(1, x.T())

	log.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Uint64("seed", seed).
		Dur("elapsed", time.Since(start)).
		Msg("dataset built")

	return &Dataset{X: x, C: &c}
}

// Dims returns the shape of X.
func (ds *Dataset) Dims() (rows, cols int) {
	return ds.X.Dims()
}
