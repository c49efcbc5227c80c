// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numprimer/internal/tensor"
)

// RawTensor is the low-level array representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Zero-copy typed access via AsFloat64(), AsInt64(), AsBool()
//   - Views sharing one buffer via View(), deep copies via Clone()
//
// Most users should use Array instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64)
//	data := raw.AsFloat64() // Zero-copy access
//	clone := raw.Clone()    // Independent buffer
type RawTensor = tensor.RawTensor

// NewRaw creates a zeroed RawTensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
