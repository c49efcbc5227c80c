// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numprimer/internal/tensor"
)

// Type aliases for public API

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float64 DataType = tensor.Float64
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Array is a fixed-shape, homogeneously-typed n-dimensional array.
//
// Example:
//
//	backend := cpu.New()
//	m, _ := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
//	row, _ := m.Get(1) // view of [4 5 6]
type Array = tensor.Array

// Error kinds; match with errors.Is.
var (
	ErrShape  = tensor.ErrShape
	ErrIndex  = tensor.ErrIndex
	ErrDomain = tensor.ErrDomain
	ErrDType  = tensor.ErrDType
)

// PromoteTypes returns the type two element types combine to.
func PromoteTypes(a, b DataType) DataType {
	return tensor.PromoteTypes(a, b)
}

// ParseDataType parses "float64", "int64" or "bool".
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}

// BroadcastShapes returns the NumPy broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, error) {
	shape, _, err := tensor.BroadcastShapes(a, b)
	return shape, err
}

// Creation functions

// FromSequence builds an array from a scalar, a (nested) slice or Go array,
// or *Array leaves. Ragged input fails with ErrShape.
//
// Example:
//
//	backend := cpu.New()
//	m, _ := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
func FromSequence(seq any, b Backend) (*Array, error) {
	return tensor.FromSequence(seq, b)
}

// AsArray is FromSequence.
func AsArray(seq any, b Backend) (*Array, error) {
	return tensor.AsArray(seq, b)
}

// Scalar creates a 0-D array.
func Scalar(value any, b Backend) (*Array, error) {
	return tensor.Scalar(value, b)
}

// Zeros creates a float64 array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros(tensor.Shape{2, 3}, backend)
func Zeros(shape Shape, b Backend) (*Array, error) {
	return tensor.Zeros(shape, b)
}

// ZerosOf creates an array of dtype filled with zeros.
func ZerosOf(shape Shape, dtype DataType, b Backend) (*Array, error) {
	return tensor.ZerosOf(shape, dtype, b)
}

// Ones creates a float64 array filled with ones.
func Ones(shape Shape, b Backend) (*Array, error) {
	return tensor.Ones(shape, b)
}

// OnesOf creates an array of dtype filled with ones.
func OnesOf(shape Shape, dtype DataType, b Backend) (*Array, error) {
	return tensor.OnesOf(shape, dtype, b)
}

// Full creates an array filled with value; its Go type picks the element type.
//
// Example:
//
//	x, _ := tensor.Full(tensor.Shape{3, 3}, 3.14, backend)
func Full(shape Shape, value any, b Backend) (*Array, error) {
	return tensor.Full(shape, value, b)
}

// Empty allocates a float64 array with unspecified contents.
func Empty(shape Shape, b Backend) (*Array, error) {
	return tensor.Empty(shape, b)
}

// Eye creates an n×n float64 identity matrix.
func Eye(n int, b Backend) (*Array, error) {
	return tensor.Eye(n, b)
}

// Arange creates float64 values from start towards stop (exclusive) by step.
//
// Example:
//
//	x, _ := tensor.Arange(11, 108.5, 2.5, backend)
func Arange(start, stop, step float64, b Backend) (*Array, error) {
	return tensor.Arange(start, stop, step, b)
}

// ArangeInt creates int64 values from start towards stop (exclusive) by step.
func ArangeInt(start, stop, step int64, b Backend) (*Array, error) {
	return tensor.ArangeInt(start, stop, step, b)
}

// Linspace creates count evenly spaced values over [start, stop].
func Linspace(start, stop float64, count int, b Backend) (*Array, error) {
	return tensor.Linspace(start, stop, count, b)
}

// Logspace creates count values 10**e, e evenly spaced over [startExp, stopExp].
func Logspace(startExp, stopExp float64, count int, b Backend) (*Array, error) {
	return tensor.Logspace(startExp, stopExp, count, b)
}

// LogspaceBase is Logspace with an explicit base.
func LogspaceBase(startExp, stopExp float64, count int, base float64, b Backend) (*Array, error) {
	return tensor.LogspaceBase(startExp, stopExp, count, base, b)
}

// Rand creates float64 values uniform in [0, 1).
func Rand(shape Shape, src Source, b Backend) (*Array, error) {
	return tensor.Rand(shape, src, b)
}

// RandomUniform creates float64 values uniform in [low, high).
func RandomUniform(low, high float64, shape Shape, src Source, b Backend) (*Array, error) {
	return tensor.RandomUniform(low, high, shape, src, b)
}

// RandomInt creates int64 values uniform in [0, bound).
func RandomInt(bound int64, shape Shape, src Source, b Backend) (*Array, error) {
	return tensor.RandomInt(bound, shape, src, b)
}

// RandomBool creates fair random bools.
func RandomBool(shape Shape, src Source, b Backend) (*Array, error) {
	return tensor.RandomBool(shape, src, b)
}

// Structural editing

// Append flattens base and values and concatenates them.
func Append(base, values *Array) (*Array, error) {
	return tensor.Append(base, values)
}

// AppendAxis concatenates values to base along axis.
func AppendAxis(base, values *Array, axis int) (*Array, error) {
	return tensor.AppendAxis(base, values, axis)
}

// Concatenate joins arrays along axis.
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	return tensor.Concatenate(arrays, axis)
}
