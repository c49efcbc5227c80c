package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is a fixed-shape, homogeneously-typed, multi-dimensional array
// bound to the backend that computes its operations.
//
// Operations return new arrays and leave their receiver unmodified, except
// SetShape and Set which mutate in place. Views (Get, Reshape, Ravel) share
// storage with the array they came from.
//
// An Array is not safe for concurrent mutation; callers synchronize SetShape
// and Set themselves.
//
// Example:
//
//	backend := cpu.New()
//	m, _ := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
//	row, _ := m.Get(1)       // view of [4 5 6]
//	sum, _ := m.AddScalar(10) // new array
type Array struct {
	raw     *RawTensor
	backend Backend
}

// New creates an Array from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Array {
	return &Array{
		raw:     raw,
		backend: b,
	}
}

// Shape returns a copy of the array's dimension sizes.
func (a *Array) Shape() Shape {
	return a.raw.Shape().Clone()
}

// NumDims returns the number of dimensions.
func (a *Array) NumDims() int {
	return len(a.raw.Shape())
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.raw.DType()
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backends, codecs and renderers for low-level access.
func (a *Array) Raw() *RawTensor {
	return a.raw
}

// Backend returns the computation backend.
func (a *Array) Backend() Backend {
	return a.backend
}

// offsetOf validates indices and returns the flat offset they address.
// Fewer indices than dimensions address the leading block.
func (a *Array) offsetOf(op string, indices []int) (int, error) {
	shape := a.raw.Shape()
	if len(indices) > len(shape) {
		return 0, errors.Wrapf(ErrIndex, "%s: too many indices for array: array is %d-dimensional, but %d were indexed",
			op, len(shape), len(indices))
	}

	offset := 0
	strides := a.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return 0, errors.Wrapf(ErrIndex, "%s: index %d is out of bounds for axis %d with size %d", op, idx, i, shape[i])
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// Get returns the sub-array at the given leading indices as a view sharing
// storage with a. With as many indices as dimensions it returns a 0-D view.
//
// Example:
//
//	m, _ := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, backend)
//	row, _ := m.Get(1)     // [4 5 6]
//	cell, _ := m.Get(1, 1) // 5
func (a *Array) Get(indices ...int) (*Array, error) {
	offset, err := a.offsetOf("get", indices)
	if err != nil {
		return nil, err
	}
	trailing := a.raw.Shape()[len(indices):]
	return New(a.raw.subView(offset, trailing), a.backend), nil
}

// Value returns the element at a full index as float64, int64 or bool.
func (a *Array) Value(indices ...int) (any, error) {
	if len(indices) != a.NumDims() {
		return nil, errors.Wrapf(ErrIndex, "value: expected %d indices, got %d", a.NumDims(), len(indices))
	}
	offset, err := a.offsetOf("value", indices)
	if err != nil {
		return nil, err
	}
	return a.raw.ValueAt(offset), nil
}

// Float returns the element at a full index converted to float64.
func (a *Array) Float(indices ...int) (float64, error) {
	if len(indices) != a.NumDims() {
		return 0, errors.Wrapf(ErrIndex, "float: expected %d indices, got %d", a.NumDims(), len(indices))
	}
	offset, err := a.offsetOf("float", indices)
	if err != nil {
		return 0, err
	}
	return a.raw.Float64At(offset), nil
}

// Int returns the element at a full index converted to int64.
func (a *Array) Int(indices ...int) (int64, error) {
	if len(indices) != a.NumDims() {
		return 0, errors.Wrapf(ErrIndex, "int: expected %d indices, got %d", a.NumDims(), len(indices))
	}
	offset, err := a.offsetOf("int", indices)
	if err != nil {
		return 0, err
	}
	return a.raw.Int64At(offset), nil
}

// Set stores value at a full index, converting it to the array's type.
// The write is visible through every view sharing this storage.
func (a *Array) Set(value any, indices ...int) error {
	if len(indices) != a.NumDims() {
		return errors.Wrapf(ErrIndex, "set: expected %d indices, got %d", a.NumDims(), len(indices))
	}
	offset, err := a.offsetOf("set", indices)
	if err != nil {
		return err
	}
	return errors.Wrap(a.raw.SetValueAt(offset, value), "set")
}

// Item returns the only element of a one-element array.
func (a *Array) Item() (any, error) {
	if a.NumElements() != 1 {
		return nil, errors.Wrapf(ErrShape, "item: can only convert an array of size 1, got shape %v", a.raw.Shape())
	}
	return a.raw.ValueAt(0), nil
}

// Float64s returns the elements in row-major order converted to float64.
func (a *Array) Float64s() []float64 {
	out := make([]float64, a.NumElements())
	for i := range out {
		out[i] = a.raw.Float64At(i)
	}
	return out
}

// Int64s returns the elements in row-major order converted to int64.
func (a *Array) Int64s() []int64 {
	out := make([]int64, a.NumElements())
	for i := range out {
		out[i] = a.raw.Int64At(i)
	}
	return out
}

// Bools returns the elements in row-major order converted to bool (non-zero is true).
func (a *Array) Bools() []bool {
	out := make([]bool, a.NumElements())
	for i := range out {
		out[i] = a.raw.Float64At(i) != 0
	}
	return out
}

// Values returns the elements in row-major order in their native Go type.
func (a *Array) Values() []any {
	out := make([]any, a.NumElements())
	for i := range out {
		out[i] = a.raw.ValueAt(i)
	}
	return out
}

// String returns a short description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.raw.DType(), a.raw.Shape())
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	return New(a.raw.Clone(), a.backend)
}

// AsType returns a copy converted to dtype.
func (a *Array) AsType(dtype DataType) *Array {
	if a.DType() == dtype {
		return a.Clone()
	}
	return New(a.backend.Cast(a.raw, dtype), a.backend)
}
