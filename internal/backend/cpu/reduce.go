package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/numprimer/internal/tensor"
)

// values returns the elements of x as float64, failing with ErrDomain when x is empty.
func (cpu *CPUBackend) values(name string, x *tensor.RawTensor) ([]float64, error) {
	if x.NumElements() == 0 {
		return nil, errors.Wrapf(tensor.ErrDomain, "%s: zero-size array %v has no %s", name, x.Shape(), name)
	}
	return cpu.asFloat64(x), nil
}

// Min returns the smallest element.
func (cpu *CPUBackend) Min(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("min", x)
	if err != nil {
		return 0, err
	}
	return floats.Min(data), nil
}

// Max returns the largest element.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("max", x)
	if err != nil {
		return 0, err
	}
	return floats.Max(data), nil
}

// Sum returns the sum of all elements.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("sum", x)
	if err != nil {
		return 0, err
	}
	return floats.Sum(data), nil
}

// Mean returns the arithmetic mean.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("mean", x)
	if err != nil {
		return 0, err
	}
	return stat.Mean(data, nil), nil
}

// Average returns the weighted mean sum(w*x)/sum(w), or the plain mean
// when weights is nil. weights must have as many elements as x.
func (cpu *CPUBackend) Average(x, weights *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("average", x)
	if err != nil {
		return 0, err
	}
	if weights == nil {
		return stat.Mean(data, nil), nil
	}

	if weights.NumElements() != x.NumElements() {
		return 0, errors.Wrapf(tensor.ErrShape, "average: weights shape %v differs from array shape %v",
			weights.Shape(), x.Shape())
	}
	w := cpu.asFloat64(weights)
	if floats.Sum(w) == 0 {
		return 0, errors.Wrap(tensor.ErrDomain, "average: weights sum to zero")
	}
	return stat.Mean(data, w), nil
}

// Var returns the population variance (ddof = 0, as np.var).
func (cpu *CPUBackend) Var(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("var", x)
	if err != nil {
		return 0, err
	}
	return stat.PopVariance(data, nil), nil
}

// Std returns the population standard deviation (ddof = 0, as np.std).
func (cpu *CPUBackend) Std(x *tensor.RawTensor) (float64, error) {
	data, err := cpu.values("std", x)
	if err != nil {
		return 0, err
	}
	return stat.PopStdDev(data, nil), nil
}
