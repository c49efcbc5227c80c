// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting and type promotion
//   - gonum mat for matrix products and determinants
//   - gonum floats and stat for reductions
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/numprimer/backend/cpu"
//	    "github.com/born-ml/numprimer/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    m, _ := tensor.FromSequence([][]int{{1, 2}, {3, 4}}, backend)
//	    det, _ := m.Det() // -2
//	}
//
// # Thread Safety
//
// The backend holds no state. Arrays themselves are not synchronized:
// callers must not mutate an array (Set, SetShape) while another goroutine
// reads it.
package cpu
