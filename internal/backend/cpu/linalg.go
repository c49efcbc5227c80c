package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/numprimer/internal/tensor"
)

// contraction describes a product that sums over one axis of each operand.
// Operand a is viewed as (rows, k) and b as (batch, k, cols); the result is
// laid out as (rows, batch, cols).
type contraction struct {
	rows, k, batch, cols int
	bStrideK             int // distance between consecutive k in b
	bStrideCol           int // distance between consecutive cols in b
	bStrideBatch         int
}

func (c contraction) bIndex(p, kk, j int) int {
	return p*c.bStrideBatch + kk*c.bStrideK + j*c.bStrideCol
}

func (cpu *CPUBackend) contract(a, b *tensor.RawTensor, c contraction, outShape tensor.Shape) *tensor.RawTensor {
	dtype := arithmeticType(a.DType(), b.DType())
	result := newRaw(outShape, dtype)

	if dtype == tensor.Int64 {
		x, y := cpu.asInt64(a), cpu.asInt64(b)
		dst := result.AsInt64()
		idx := 0
		for i := 0; i < c.rows; i++ {
			row := x[i*c.k : (i+1)*c.k]
			for p := 0; p < c.batch; p++ {
				for j := 0; j < c.cols; j++ {
					var sum int64
					for kk, v := range row {
						sum += v * y[c.bIndex(p, kk, j)]
					}
					dst[idx] = sum
					idx++
				}
			}
		}
		return result
	}

	x, y := cpu.asFloat64(a), cpu.asFloat64(b)
	dst := result.AsFloat64()
	idx := 0
	for i := 0; i < c.rows; i++ {
		row := x[i*c.k : (i+1)*c.k]
		for p := 0; p < c.batch; p++ {
			for j := 0; j < c.cols; j++ {
				var sum float64
				for kk, v := range row {
					sum += v * y[c.bIndex(p, kk, j)]
				}
				dst[idx] = sum
				idx++
			}
		}
	}
	return result
}

// Dot computes the NumPy dot product.
//
//   - a 0-D operand multiplies element-wise
//   - 1-D · 1-D is the inner product as a 0-D array
//   - 2-D · 2-D is the matrix product
//   - otherwise sums over the last axis of a and the second-to-last of b
//     (the only axis when b is 1-D)
func (cpu *CPUBackend) Dot(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) == 0 || len(bShape) == 0 {
		return cpu.Mul(a, b)
	}
	if len(aShape) == 2 && len(bShape) == 2 {
		return cpu.MatMul(a, b)
	}

	k := aShape[len(aShape)-1]
	kAxis := len(bShape) - 2
	if len(bShape) == 1 {
		kAxis = 0
	}
	if bShape[kAxis] != k {
		return nil, errors.Wrapf(tensor.ErrShape, "dot: shapes %v and %v not aligned: %d (dim %d) != %d (dim %d)",
			aShape, bShape, k, len(aShape)-1, bShape[kAxis], kAxis)
	}

	if len(aShape) == 1 && len(bShape) == 1 && a.DType() == tensor.Float64 && b.DType() == tensor.Float64 {
		result := newRaw(tensor.Shape{}, tensor.Float64)
		result.AsFloat64()[0] = floats.Dot(a.AsFloat64(), b.AsFloat64())
		return result, nil
	}

	outShape := append(tensor.Shape{}, aShape[:len(aShape)-1]...)
	c := contraction{rows: aShape[:len(aShape)-1].NumElements(), k: k, batch: 1, cols: 1, bStrideK: 1}
	if len(bShape) >= 2 {
		cols := bShape[len(bShape)-1]
		outShape = append(outShape, bShape[:len(bShape)-2]...)
		outShape = append(outShape, cols)
		c.batch = bShape[:len(bShape)-2].NumElements()
		c.cols = cols
		c.bStrideK = cols
		c.bStrideCol = 1
		c.bStrideBatch = k * cols
	}
	return cpu.contract(a, b, c, outShape), nil
}

// Inner computes the NumPy inner product: a sum over the last axes of a and b.
// The result shape is a.shape[:-1] + b.shape[:-1]. A 0-D operand multiplies.
func (cpu *CPUBackend) Inner(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) == 0 || len(bShape) == 0 {
		return cpu.Mul(a, b)
	}

	k := aShape[len(aShape)-1]
	if bShape[len(bShape)-1] != k {
		return nil, errors.Wrapf(tensor.ErrShape, "inner: shapes %v and %v not aligned: last dimensions %d != %d",
			aShape, bShape, k, bShape[len(bShape)-1])
	}

	outShape := append(tensor.Shape{}, aShape[:len(aShape)-1]...)
	outShape = append(outShape, bShape[:len(bShape)-1]...)

	// b is (batch, k): every row of b is one "column" of the product.
	c := contraction{
		rows:         aShape[:len(aShape)-1].NumElements(),
		k:            k,
		batch:        bShape[:len(bShape)-1].NumElements(),
		cols:         1,
		bStrideK:     1,
		bStrideBatch: k,
	}
	return cpu.contract(a, b, c, outShape), nil
}

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Float operands go through gonum; integer operands stay integer.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, errors.Wrapf(tensor.ErrShape, "matmul: only 2-D arrays supported, got %d-D and %d-D",
			len(aShape), len(bShape))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		return nil, errors.Wrapf(tensor.ErrShape, "matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	dtype := arithmeticType(a.DType(), b.DType())
	// gonum rejects zero-length dimensions.
	if dtype != tensor.Float64 || m == 0 || k == 0 || n == 0 {
		c := contraction{rows: m, k: k, batch: 1, cols: n, bStrideK: n, bStrideCol: 1}
		return cpu.contract(a, b, c, tensor.Shape{m, n}), nil
	}

	result := newRaw(tensor.Shape{m, n}, tensor.Float64)
	left := mat.NewDense(m, k, cpu.asFloat64(a))
	right := mat.NewDense(k, n, cpu.asFloat64(b))
	mat.NewDense(m, n, result.AsFloat64()).Mul(left, right)
	return result, nil
}

// Det computes the determinant of each matrix in the trailing two
// dimensions. The result has shape x.shape[:-2] and dtype float64.
// The determinant of a 0x0 matrix is 1.
func (cpu *CPUBackend) Det(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	shape := x.Shape()
	ndim := len(shape)
	if ndim < 2 {
		return nil, errors.Wrapf(tensor.ErrShape, "det: %d-D array given, array must be at least 2-D", ndim)
	}
	n := shape[ndim-1]
	if shape[ndim-2] != n {
		return nil, errors.Wrapf(tensor.ErrShape, "det: last 2 dimensions of the array must be square, got %v", shape)
	}

	result := newRaw(shape[:ndim-2].Clone(), tensor.Float64)
	dst := result.AsFloat64()
	if n == 0 {
		for i := range dst {
			dst[i] = 1
		}
		return result, nil
	}

	src := cpu.asFloat64(x)
	block := n * n
	for i := range dst {
		m := mat.NewDense(n, n, nil)
		copy(m.RawMatrix().Data, src[i*block:(i+1)*block])
		dst[i] = mat.Det(m)
	}
	return result, nil
}
