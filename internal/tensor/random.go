package tensor

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// Source is the randomness behind the random constructors.
// *rand.Rand from math/rand/v2 satisfies it; tests inject deterministic fakes.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Int64N returns a value in [0, n). n is always > 0.
	Int64N(n int64) int64
}

// NewSource returns a deterministic PCG source. Equal seeds give equal draws.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical purposes.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // G404: not for security
}

// DefaultSource returns a time-seeded source.
func DefaultSource() Source {
	return NewSource(uint64(time.Now().UnixNano())) //nolint:gosec // G115: sign bit is irrelevant for a seed.
}

// Rand creates a float64 array with values uniformly distributed in [0, 1).
//
// Example:
//
//	t, err := tensor.Rand(Shape{3, 3}, tensor.NewSource(42), backend)
func Rand(shape Shape, src Source, b Backend) (*Array, error) {
	return RandomUniform(0, 1, shape, src, b)
}

// RandomUniform creates a float64 array with independent draws from [low, high).
func RandomUniform(low, high float64, shape Shape, src Source, b Backend) (*Array, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || !(low < high) {
		return nil, errors.Wrapf(ErrDomain, "uniform: need finite low < high, got [%v, %v)", low, high)
	}
	t, err := Zeros(shape, b)
	if err != nil {
		return nil, errors.Wrap(err, "uniform")
	}
	data := t.raw.AsFloat64()
	width := high - low
	for i := range data {
		v := low + src.Float64()*width
		// Rounding can land exactly on high for wide intervals.
		if v >= high {
			v = math.Nextafter(high, low)
		}
		data[i] = v
	}
	return t, nil
}

// RandomInt creates an int64 array with independent draws from [0, bound).
//
// Example:
//
//	t, err := tensor.RandomInt(100, Shape{4, 12, 7, 8}, src, backend)
func RandomInt(bound int64, shape Shape, src Source, b Backend) (*Array, error) {
	if bound <= 0 {
		return nil, errors.Wrapf(ErrDomain, "randint: bound must be > 0, got %d", bound)
	}
	t, err := ZerosOf(shape, Int64, b)
	if err != nil {
		return nil, errors.Wrap(err, "randint")
	}
	data := t.raw.AsInt64()
	for i := range data {
		data[i] = src.Int64N(bound)
	}
	return t, nil
}

// RandomBool creates a bool array where each element is true with probability 1/2.
func RandomBool(shape Shape, src Source, b Backend) (*Array, error) {
	t, err := ZerosOf(shape, Bool, b)
	if err != nil {
		return nil, errors.Wrap(err, "random bool")
	}
	data := t.raw.AsBool()
	for i := range data {
		data[i] = src.Int64N(2) == 1
	}
	return t, nil
}
