// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/numprimer/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations: broadcast
// arithmetic, element-wise math, reductions, linear algebra, concatenation,
// deletion, transposition and casting.
//
// Implementations:
//   - backend/cpu: Pure Go, gonum for linear algebra and statistics
//
// Example:
//
//	import (
//	    "github.com/born-ml/numprimer/backend/cpu"
//	    "github.com/born-ml/numprimer/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y, _ := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z, _ := x.Add(y) // Uses backend.Add under the hood
type Backend = tensor.Backend

// Source supplies randomness to Rand, RandomUniform, RandomInt and RandomBool.
type Source = tensor.Source

// NewSource returns a deterministic source. Equal seeds give equal arrays.
func NewSource(seed uint64) Source {
	return tensor.NewSource(seed)
}

// DefaultSource returns a time-seeded source.
func DefaultSource() Source {
	return tensor.DefaultSource()
}
