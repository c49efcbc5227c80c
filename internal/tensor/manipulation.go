package tensor

import "github.com/pkg/errors"

// Flatten returns a 1-D copy of the array in row-major order.
//
// Example:
//
//	m, _ := tensor.FromSequence([][]int{{0, 1, 2, 1}, {3, 4, 1, 5}, {1, 6, 1, 7}}, backend)
//	v := m.Flatten() // [0 1 2 1 3 4 1 5 1 6 1 7]
func (a *Array) Flatten() *Array {
	raw := a.raw.Clone()
	_ = raw.SetShape(Shape{raw.NumElements()})
	return New(raw, a.backend)
}

// Ravel returns a 1-D view of the array. No data is copied.
func (a *Array) Ravel() *Array {
	raw, _ := a.raw.View(Shape{a.raw.NumElements()})
	return New(raw, a.backend)
}

// Reshape returns a view with a different shape. The number of elements
// must stay the same.
//
// Example:
//
//	m, _ := v.Reshape(2, 6)
func (a *Array) Reshape(newShape ...int) (*Array, error) {
	raw, err := a.raw.View(Shape(newShape))
	if err != nil {
		return nil, errors.Wrap(err, "reshape")
	}
	return New(raw, a.backend), nil
}

// SetShape changes the shape of this array in place, without copying the
// buffer. Every holder of this *Array observes the new shape; views taken
// earlier keep theirs.
//
// Example:
//
//	_ = m.SetShape(3, 4)
func (a *Array) SetShape(newShape ...int) error {
	return errors.Wrap(a.raw.SetShape(Shape(newShape)), "set shape")
}

// Transpose permutes the dimensions. Without axes the order is reversed.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	raw, err := a.backend.Transpose(a.raw, axes...)
	if err != nil {
		return nil, err
	}
	return New(raw, a.backend), nil
}

// Delete removes the index-th element of the flattened array and returns a
// 1-D result.
func (a *Array) Delete(index int) (*Array, error) {
	return a.Ravel().DeleteAxis(index, 0)
}

// DeleteAxis removes the slice at index along axis.
//
// Example:
//
//	less, _ := m.DeleteAxis(1, 0) // drops row 1
func (a *Array) DeleteAxis(index, axis int) (*Array, error) {
	raw, err := a.backend.Delete(a.raw, index, axis)
	if err != nil {
		return nil, err
	}
	return New(raw, a.backend), nil
}

// Append flattens base and values and concatenates them into a 1-D array.
//
// Example:
//
//	head, _ := tensor.FromSequence([]int{1, 2, 3}, backend)
//	rest, _ := tensor.FromSequence([][]int{{4, 5, 6}, {7, 8, 9}}, backend)
//	animal, _ := tensor.Append(head, rest) // [1 2 3 4 5 6 7 8 9]
func Append(base, values *Array) (*Array, error) {
	if err := requireOperands("append", []*Array{base, values}); err != nil {
		return nil, err
	}
	return Concatenate([]*Array{base.Ravel(), values.Ravel()}, 0)
}

// AppendAxis concatenates values to base along axis. Both must have the
// same number of dimensions and the same size on every other axis.
//
// Example:
//
//	top, _ := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
//	tail, _ := tensor.FromSequence([][]int{{7, 8, 9}}, backend)
//	m, _ := tensor.AppendAxis(top, tail, 0) // shape (3, 3)
func AppendAxis(base, values *Array, axis int) (*Array, error) {
	return Concatenate([]*Array{base, values}, axis)
}

// Concatenate joins arrays along axis. Mixed element types promote.
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	if err := requireOperands("concatenate", arrays); err != nil {
		return nil, err
	}

	rawTensors := make([]*RawTensor, len(arrays))
	backend := arrays[0].backend
	for i, t := range arrays {
		rawTensors[i] = t.raw
	}

	result, err := backend.Cat(rawTensors, axis)
	if err != nil {
		return nil, err
	}
	return New(result, backend), nil
}

func requireOperands(op string, arrays []*Array) error {
	if len(arrays) == 0 {
		return errors.Wrapf(ErrShape, "%s: need at least one array", op)
	}
	for i, t := range arrays {
		if t == nil {
			return errors.Wrapf(ErrShape, "%s: array %d is nil", op, i)
		}
	}
	return nil
}
