package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/numprimer/internal/tensor"
)

// mapFloat applies f to every element of x converted to float64.
func (cpu *CPUBackend) mapFloat(x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := newRaw(x.Shape(), tensor.Float64)
	src := cpu.asFloat64(x)
	dst := result.AsFloat64()
	for i, v := range src {
		dst[i] = f(v)
	}
	return result
}

// Round rounds element-wise to the nearest integer, halves to even (as np.around).
func (cpu *CPUBackend) Round(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.RoundToEven)
}

// Ceil computes element-wise ceiling.
func (cpu *CPUBackend) Ceil(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Ceil)
}

// Floor computes element-wise floor.
func (cpu *CPUBackend) Floor(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Floor)
}

// Sin computes element-wise sine: sin(x).
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Sin)
}

// Cos computes element-wise cosine: cos(x).
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Cos)
}

// Tan computes element-wise tangent: tan(x).
func (cpu *CPUBackend) Tan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Tan)
}

// Asin computes element-wise inverse sine. |x| > 1 gives NaN.
func (cpu *CPUBackend) Asin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Asin)
}

// Acos computes element-wise inverse cosine. |x| > 1 gives NaN.
func (cpu *CPUBackend) Acos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Acos)
}

// Atan computes element-wise inverse tangent.
func (cpu *CPUBackend) Atan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Atan)
}

// Sqrt computes element-wise square root. Negative values give NaN.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Sqrt)
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Exp)
}

// Log computes element-wise natural logarithm. Zero gives -Inf, negative values NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mapFloat(x, math.Log)
}

// Abs computes element-wise absolute value, keeping integer arrays integer.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float64:
		return cpu.mapFloat(x, math.Abs)
	case tensor.Int64:
		result := newRaw(x.Shape(), tensor.Int64)
		dst := result.AsInt64()
		for i, v := range x.AsInt64() {
			if v < 0 {
				v = -v
			}
			dst[i] = v
		}
		return result
	case tensor.Bool:
		return x.Clone()
	default:
		panic(fmt.Sprintf("abs: unsupported dtype %s", x.DType()))
	}
}
