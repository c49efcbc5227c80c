package tensor

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// tensorBuffer is the owned element storage. Views share one buffer.
type tensorBuffer struct {
	data []byte
}

func newTensorBuffer(size int) *tensorBuffer {
	return &tensorBuffer{data: make([]byte, size)}
}

// descriptor is the shape half of a RawTensor. Reshaping in place swaps the
// descriptor and leaves the buffer alone.
type descriptor struct {
	shape  Shape
	stride []int
}

func newDescriptor(shape Shape) descriptor {
	return descriptor{shape: shape.Clone(), stride: shape.ComputeStrides()}
}

// RawTensor is the low-level array representation: an owned buffer plus a
// shape descriptor. Elements are contiguous and row-major, starting at offset.
//
// Several RawTensors may share a buffer (see View). Writing through one is
// visible through all of them. SetShape mutates the descriptor of this value
// only, so every holder of the same *RawTensor observes the new shape.
type RawTensor struct {
	buffer *tensorBuffer
	desc   descriptor
	dtype  DataType
	offset int // in elements
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}

	return &RawTensor{
		buffer: newTensorBuffer(shape.NumElements() * dtype.Size()),
		desc:   newDescriptor(shape),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape. The slice must not be modified.
func (r *RawTensor) Shape() Shape {
	return r.desc.shape
}

// Strides returns the row-major element strides.
func (r *RawTensor) Strides() []int {
	return r.desc.stride
}

// DType returns the element type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.desc.shape.NumElements()
}

// ByteSize returns the total memory size of this view in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw bytes of this view.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	start := r.offset * r.dtype.Size()
	return r.buffer.data[start : start+r.ByteSize()]
}

// SharesBuffer reports whether r and other are views of the same storage.
func (r *RawTensor) SharesBuffer(other *RawTensor) bool {
	return r.buffer == other.buffer
}

// AsFloat64 interprets the data as []float64.
// Panics if the dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.Data()
	if len(data) == 0 {
		return []float64{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.Data()
	if len(data) == 0 {
		return []int64{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.Data()
	if len(data) == 0 {
		return []bool{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.NumElements())
}

// Float64At returns flat element i converted to float64.
func (r *RawTensor) Float64At(i int) float64 {
	switch r.dtype {
	case Float64:
		return r.AsFloat64()[i]
	case Int64:
		return float64(r.AsInt64()[i])
	case Bool:
		if r.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic("unsupported dtype")
	}
}

// Int64At returns flat element i converted to int64 (reals truncate toward zero).
func (r *RawTensor) Int64At(i int) int64 {
	switch r.dtype {
	case Float64:
		return int64(r.AsFloat64()[i])
	case Int64:
		return r.AsInt64()[i]
	case Bool:
		if r.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic("unsupported dtype")
	}
}

// ValueAt returns flat element i in its native Go type: float64, int64 or bool.
func (r *RawTensor) ValueAt(i int) any {
	switch r.dtype {
	case Float64:
		return r.AsFloat64()[i]
	case Int64:
		return r.AsInt64()[i]
	case Bool:
		return r.AsBool()[i]
	default:
		panic("unsupported dtype")
	}
}

// SetValueAt stores a Go scalar at flat index i, converting it to the dtype.
func (r *RawTensor) SetValueAt(i int, value any) error {
	s, err := scalarOf(value)
	if err != nil {
		return err
	}
	switch r.dtype {
	case Float64:
		r.AsFloat64()[i] = s.float()
	case Int64:
		if s.kind == Float64 && (math.IsNaN(s.f) || math.IsInf(s.f, 0)) {
			return errors.Wrapf(ErrDomain, "cannot store %v in an int64 array", s.f)
		}
		r.AsInt64()[i] = s.int()
	case Bool:
		r.AsBool()[i] = s.bool()
	}
	return nil
}

// SetShape replaces the shape descriptor in place without touching the buffer.
// The element count must not change.
func (r *RawTensor) SetShape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != r.NumElements() {
		return errors.Wrapf(ErrShape, "cannot reshape array of size %d (shape %v) into shape %v",
			r.NumElements(), r.desc.shape, shape)
	}
	r.desc = newDescriptor(shape)
	return nil
}

// View returns a new RawTensor over the same buffer with a different shape.
func (r *RawTensor) View(shape Shape) (*RawTensor, error) {
	v := &RawTensor{buffer: r.buffer, desc: r.desc, dtype: r.dtype, offset: r.offset}
	if err := v.SetShape(shape); err != nil {
		return nil, err
	}
	return v, nil
}

// subView returns the contiguous block starting offset elements into this view.
func (r *RawTensor) subView(offset int, shape Shape) *RawTensor {
	return &RawTensor{buffer: r.buffer, desc: newDescriptor(shape), dtype: r.dtype, offset: r.offset + offset}
}

// Clone creates a deep copy with its own buffer.
func (r *RawTensor) Clone() *RawTensor {
	buf := newTensorBuffer(r.ByteSize())
	copy(buf.data, r.Data())
	return &RawTensor{buffer: buf, desc: newDescriptor(r.desc.shape), dtype: r.dtype}
}
