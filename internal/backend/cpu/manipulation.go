package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numprimer/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same rank and the same shape except along the
// concatenation dimension. Mixed dtypes promote (bool < int64 < float64).
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a, _ := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	b, _ := tensor.Ones(tensor.Shape{2, 5}, backend)
//	c, _ := backend.Cat([]*tensor.RawTensor{a.Raw(), b.Raw()}, 1) // Shape: [2, 8]
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	if len(tensors) == 0 {
		return nil, errors.Wrap(tensor.ErrShape, "concatenate: need at least one array to concatenate")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	if ndim == 0 {
		return nil, errors.Wrap(tensor.ErrShape, "concatenate: zero-dimensional arrays cannot be concatenated")
	}

	dim, err := tensor.NormalizeAxis(dim, ndim)
	if err != nil {
		return nil, errors.Wrap(err, "concatenate")
	}

	dtype := tensors[0].DType()
	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			return nil, errors.Wrapf(tensor.ErrShape,
				"concatenate: array %d has %d dimension(s), but array 0 has %d dimension(s)", i, len(tShape), ndim)
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				return nil, errors.Wrapf(tensor.ErrShape,
					"concatenate: array %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d])
			}
		}
		dtype = tensor.PromoteTypes(dtype, t.DType())
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim
	result := newRaw(outShape, dtype)

	// Every input contributes one contiguous chunk per outer index.
	outer := shape[:dim].NumElements()
	elemSize := dtype.Size()
	dst := result.Data()
	pos := 0
	parts := make([][]byte, len(tensors))
	chunks := make([]int, len(tensors))
	for i, t := range tensors {
		parts[i] = cpu.Cast(t, dtype).Data()
		chunks[i] = t.Shape()[dim:].NumElements() * elemSize
	}
	for o := 0; o < outer; o++ {
		for i, part := range parts {
			c := chunks[i]
			pos += copy(dst[pos:pos+c], part[o*c:(o+1)*c])
		}
	}
	return result, nil
}

// Delete removes the slice at index along dim, returning a new tensor.
// A negative index counts from the end.
func (cpu *CPUBackend) Delete(x *tensor.RawTensor, index, dim int) (*tensor.RawTensor, error) {
	shape := x.Shape()
	dim, err := tensor.NormalizeAxis(dim, len(shape))
	if err != nil {
		return nil, errors.Wrap(err, "delete")
	}

	size := shape[dim]
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return nil, errors.Wrapf(tensor.ErrIndex, "delete: index %d is out of bounds for axis %d with size %d",
			index, dim, size)
	}

	outShape := shape.Clone()
	outShape[dim] = size - 1
	result := newRaw(outShape, x.DType())

	elemSize := x.DType().Size()
	inner := shape[dim+1:].NumElements() * elemSize
	outer := shape[:dim].NumElements()
	src, dst := x.Data(), result.Data()
	pos := 0
	for o := 0; o < outer; o++ {
		base := o * size * inner
		pos += copy(dst[pos:], src[base:base+index*inner])
		pos += copy(dst[pos:], src[base+(index+1)*inner:base+size*inner])
	}
	return result, nil
}

// Transpose permutes the dimensions of x into a new contiguous tensor.
// With no axes the dimension order is reversed.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) (*tensor.RawTensor, error) {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, errors.Wrapf(tensor.ErrShape, "transpose: axes %v don't match %d-D array", axes, ndim)
	}

	perm := make([]int, ndim)
	seen := make([]bool, ndim)
	for i, axis := range axes {
		a, err := tensor.NormalizeAxis(axis, ndim)
		if err != nil {
			return nil, errors.Wrap(err, "transpose")
		}
		if seen[a] {
			return nil, errors.Wrapf(tensor.ErrIndex, "transpose: repeated axis %d in %v", axis, axes)
		}
		seen[a] = true
		perm[i] = a
	}

	outShape := make(tensor.Shape, ndim)
	for i, a := range perm {
		outShape[i] = shape[a]
	}
	result := newRaw(outShape, x.DType())

	n := outShape.NumElements()
	if n == 0 {
		return result, nil
	}

	// Source stride for each output dimension.
	inStrides := shape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, a := range perm {
		permStrides[i] = inStrides[a]
	}
	outStrides := outShape.ComputeStrides()

	elemSize := x.DType().Size()
	src, dst := x.Data(), result.Data()
	for i := 0; i < n; i++ {
		j := computeFlatIndex(i, outStrides, permStrides)
		copy(dst[i*elemSize:(i+1)*elemSize], src[j*elemSize:(j+1)*elemSize])
	}
	return result, nil
}
