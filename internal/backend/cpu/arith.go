package cpu

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/numprimer/internal/tensor"
)

// intKernel computes one int64 result; a non-nil error aborts the operation.
type intKernel func(x, y int64) (int64, error)

// floatKernel computes one float64 result following IEEE-754.
type floatKernel func(x, y float64) float64

// elementwise runs a binary operation with NumPy broadcasting.
// Integer operands (bool counts as integer) use ints, anything involving a
// float64 operand uses floats. ints may be nil for float-only operations.
func (cpu *CPUBackend) elementwise(name string, a, b *tensor.RawTensor, ints intKernel, floats floatKernel) (*tensor.RawTensor, error) {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	dtype := arithmeticType(a.DType(), b.DType())
	if ints == nil {
		dtype = tensor.Float64
	}

	pair := newBroadcastPair(a.Shape(), b.Shape(), outShape)
	result := newRaw(outShape, dtype)

	if dtype == tensor.Int64 {
		src1, src2 := cpu.asInt64(a), cpu.asInt64(b)
		dst := result.AsInt64()
		for i := 0; i < pair.n; i++ {
			ai, bi := pair.indices(i)
			v, err := ints(src1[ai], src2[bi])
			if err != nil {
				return nil, errors.Wrap(err, name)
			}
			dst[i] = v
		}
		return result, nil
	}

	src1, src2 := cpu.asFloat64(a), cpu.asFloat64(b)
	dst := result.AsFloat64()
	for i := 0; i < pair.n; i++ {
		ai, bi := pair.indices(i)
		dst[i] = floats(src1[ai], src2[bi])
	}
	return result, nil
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwise("add", a, b,
		func(x, y int64) (int64, error) { return x + y, nil },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwise("subtract", a, b,
		func(x, y int64) (int64, error) { return x - y, nil },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwise("multiply", a, b,
		func(x, y int64) (int64, error) { return x * y, nil },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise true division with broadcasting. The result is
// float64. Exact integer operands reject a zero divisor with ErrDomain.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.DType().IsIntegral() && b.DType().IsIntegral() {
		if _, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape()); err != nil {
			return nil, errors.Wrap(err, "divide")
		}
		if err := cpu.checkNonZero("divide", b); err != nil {
			return nil, err
		}
	}
	return cpu.elementwise("divide", a, b, nil,
		func(x, y float64) float64 { return x / y })
}

// Pow raises a to the power b element-wise. Integer bases with negative
// integer exponents fail with ErrDomain.
func (cpu *CPUBackend) Pow(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwise("power", a, b, powInt, math.Pow)
}

// Mod computes the element-wise remainder with the sign of the divisor, as
// a - floor(a/b)*b. Integer zero divisors fail with ErrDomain; real zero
// divisors give NaN.
func (cpu *CPUBackend) Mod(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwise("mod", a, b, modInt, modFloat)
}

func (cpu *CPUBackend) checkNonZero(name string, b *tensor.RawTensor) error {
	for i, v := range cpu.asInt64(b) {
		if v == 0 {
			return errors.Wrapf(tensor.ErrDomain, "%s: integer division by zero (divisor element %d)", name, i)
		}
	}
	return nil
}

func powInt(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, errors.Wrapf(tensor.ErrDomain, "integers to negative integer powers are not allowed (%d ** %d)", base, exp)
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, nil
}

func modInt(x, y int64) (int64, error) {
	if y == 0 {
		return 0, errors.Wrapf(tensor.ErrDomain, "integer modulo by zero (%d %% 0)", x)
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}

func modFloat(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
