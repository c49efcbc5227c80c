package tensor

import (
	"reflect"

	"github.com/pkg/errors"
)

// scalar is one element lifted out of a Go value, tagged with the array type
// it naturally maps to.
type scalar struct {
	kind DataType
	f    float64
	i    int64
	b    bool
}

func (s scalar) float() float64 {
	switch s.kind {
	case Int64:
		return float64(s.i)
	case Bool:
		if s.b {
			return 1
		}
		return 0
	default:
		return s.f
	}
}

func (s scalar) int() int64 {
	switch s.kind {
	case Float64:
		return int64(s.f)
	case Bool:
		if s.b {
			return 1
		}
		return 0
	default:
		return s.i
	}
}

func (s scalar) bool() bool {
	switch s.kind {
	case Float64:
		return s.f != 0
	case Int64:
		return s.i != 0
	default:
		return s.b
	}
}

func (s scalar) store(r *RawTensor, i int) {
	switch r.dtype {
	case Float64:
		r.AsFloat64()[i] = s.float()
	case Int64:
		r.AsInt64()[i] = s.int()
	case Bool:
		r.AsBool()[i] = s.bool()
	}
}

var arrayPtrType = reflect.TypeOf((*Array)(nil))

func scalarOf(v any) (scalar, error) {
	return scalarFromValue(reflect.ValueOf(v))
}

func scalarFromValue(v reflect.Value) (scalar, error) {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return scalar{}, errors.Wrap(ErrDType, "nil value")
	}
	switch v.Kind() {
	case reflect.Bool:
		return scalar{kind: Bool, b: v.Bool()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar{kind: Int64, i: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalar{kind: Int64, i: int64(v.Uint())}, nil //nolint:gosec // G115: wraps like a C cast.
	case reflect.Float32, reflect.Float64:
		return scalar{kind: Float64, f: v.Float()}, nil
	default:
		return scalar{}, errors.Wrapf(ErrDType, "%s", v.Type())
	}
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// FromSequence builds an array from a Go value: a scalar, a slice or Go array
// of any nesting depth, or *Array leaves (which contribute their own shape).
//
// The shape is the nesting-length profile of seq; sibling sub-sequences of
// different lengths fail with ErrShape. The element type is Bool when every
// leaf is a bool, Int64 when every leaf is an integer or bool, and Float64 as
// soon as one leaf is a float. An empty sequence gives a Float64 array.
//
// Example:
//
//	m, err := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend) // int64 (2, 3)
//	v, err := tensor.FromSequence([]any{-1.5, 0, 2, 5}, backend)          // float64 (4,)
func FromSequence(seq any, b Backend) (*Array, error) {
	v := reflect.ValueOf(seq)
	shape, err := inferShape(v, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fromSequence")
	}

	leaves := make([]scalar, 0, shape.NumElements())
	leaves = collectLeaves(v, leaves)

	dtype := Float64
	if len(leaves) > 0 {
		dtype = leaves[0].kind
		for _, s := range leaves[1:] {
			dtype = PromoteTypes(dtype, s.kind)
		}
	}

	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, errors.Wrap(err, "fromSequence")
	}
	for i, s := range leaves {
		s.store(raw, i)
	}
	return New(raw, b), nil
}

// AsArray is FromSequence under its NumPy name.
func AsArray(seq any, b Backend) (*Array, error) {
	return FromSequence(seq, b)
}

// Scalar creates a 0-D array holding a single value.
func Scalar(value any, b Backend) (*Array, error) {
	s, err := scalarOf(value)
	if err != nil {
		return nil, errors.Wrap(err, "scalar")
	}
	raw, err := NewRaw(Shape{}, s.kind)
	if err != nil {
		return nil, err
	}
	s.store(raw, 0)
	return New(raw, b), nil
}

// inferShape walks seq and returns its nesting-length profile. path locates
// the current element for error messages.
func inferShape(v reflect.Value, path []int) (Shape, error) {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return nil, errors.Wrapf(ErrDType, "nil element at %v", path)
	}
	if v.Type() == arrayPtrType {
		if v.IsNil() {
			return nil, errors.Wrapf(ErrDType, "nil array at %v", path)
		}
		return v.Interface().(*Array).Shape(), nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		n := v.Len()
		if n == 0 {
			return Shape{0}, nil
		}
		first, err := inferShape(v.Index(0), childPath(path, 0))
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			s, err := inferShape(v.Index(i), childPath(path, i))
			if err != nil {
				return nil, err
			}
			if !s.Equal(first) {
				return nil, errors.Wrapf(ErrShape, "inhomogeneous sequence: element %v has shape %v, element %v has shape %v",
					childPath(path, i), s, childPath(path, 0), first)
			}
		}
		return append(Shape{n}, first...), nil
	default:
		if _, err := scalarFromValue(v); err != nil {
			return nil, errors.Wrapf(err, "element at %v", path)
		}
		return Shape{}, nil
	}
}

func childPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}

// collectLeaves appends the leaves of an already validated sequence in row-major order.
func collectLeaves(v reflect.Value, leaves []scalar) []scalar {
	v = unwrapInterface(v)
	if v.Type() == arrayPtrType {
		raw := v.Interface().(*Array).raw
		for i := 0; i < raw.NumElements(); i++ {
			s, _ := scalarOf(raw.ValueAt(i))
			leaves = append(leaves, s)
		}
		return leaves
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			leaves = collectLeaves(v.Index(i), leaves)
		}
		return leaves
	default:
		s, _ := scalarFromValue(v)
		return append(leaves, s)
	}
}
