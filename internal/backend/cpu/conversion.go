package cpu

import (
	"fmt"

	"github.com/born-ml/numprimer/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Returns x itself when it already has dtype.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	// No-op if same dtype
	if x.DType() == dtype {
		return x
	}

	result := newRaw(x.Shape(), dtype)
	castImpl(result, x, dtype)
	return result
}

func castImpl(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	// Dispatch based on from/to types
	switch x.DType() {
	case tensor.Float64:
		castFromFloat64(result, x, toDtype)
	case tensor.Int64:
		castFromInt64(result, x, toDtype)
	case tensor.Bool:
		castFromBool(result, x, toDtype)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}
}

func castFromFloat64(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsFloat64()

	switch toDtype {
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", toDtype))
	}
}

func castFromInt64(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsInt64()

	switch toDtype {
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", toDtype))
	}
}

func castFromBool(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsBool()

	switch toDtype {
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", toDtype))
	}
}

// asFloat64 returns the elements of x as float64, sharing memory when x already is float64.
func (cpu *CPUBackend) asFloat64(x *tensor.RawTensor) []float64 {
	return cpu.Cast(x, tensor.Float64).AsFloat64()
}

// asInt64 returns the elements of x as int64, sharing memory when x already is int64.
func (cpu *CPUBackend) asInt64(x *tensor.RawTensor) []int64 {
	return cpu.Cast(x, tensor.Int64).AsInt64()
}

// arithmeticType is the dtype binary arithmetic runs in: bools act as integers.
func arithmeticType(a, b tensor.DataType) tensor.DataType {
	dtype := tensor.PromoteTypes(a, b)
	if dtype == tensor.Bool {
		return tensor.Int64
	}
	return dtype
}
