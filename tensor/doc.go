// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for n-dimensional arrays.
//
// An Array has a fixed shape and a single runtime element type (Float64,
// Int64 or Bool). Arrays are built from Go values or constructors and
// computed on by a Backend:
//
//	backend := cpu.New()
//	first, _ := tensor.FromSequence([]float64{-1.5, 0, 2, 5}, backend)
//	second, _ := tensor.FromSequence([]float64{-5, 3, 4, 2.5}, backend)
//	sum, _ := first.Add(second)       // [-6.5 3 6 7.5]
//	shifted, _ := first.AddScalar(10) // [8.5 10 12 15]
//
// # Type promotion
//
// Mixed operands promote along bool < int64 < float64. Arithmetic treats
// bools as integers and true division always yields float64.
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting: shapes are aligned from the
// right and dimensions of size 1 stretch to match.
//
//	m, _ := tensor.FromSequence([][]int{{1}, {2}, {3}}, backend) // (3, 1)
//	v, _ := tensor.FromSequence([]int{10, 20}, backend)          // (2,)
//	s, _ := m.Add(v)                                             // (3, 2)
//
// # Views
//
// Get, Ravel and Reshape return views that share storage with their source;
// Flatten, Clone and every computed result own fresh storage. SetShape
// changes an array's shape in place.
//
// # Errors
//
// Failures wrap one of ErrShape, ErrIndex, ErrDomain or ErrDType; match them
// with errors.Is.
package tensor
