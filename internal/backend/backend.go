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

// Package backend selects the BLAS implementation gonum dispatches to.
// With cgo available, the netlib bindings route dgemm and friends to the
// system BLAS (OpenBLAS on Linux, Accelerate on macOS); otherwise gonum's
// pure-Go implementation is used. Importing this package for side effects
// is enough to register the backend.
package backend

var name string

// Name reports which BLAS implementation was registered at init,
// either "netlib" or "gonum".
func Name() string { return name }
