package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// Zeros creates a float64 array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t, err := tensor.Zeros(Shape{12}, backend)
func Zeros(shape Shape, b Backend) (*Array, error) {
	return ZerosOf(shape, Float64, b)
}

// ZerosOf creates an array of the given type filled with zeros.
func ZerosOf(shape Shape, dtype DataType, b Backend) (*Array, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, errors.Wrap(err, "zeros")
	}

	// Data is already zero-initialized by make()
	return New(raw, b), nil
}

// Ones creates a float64 array filled with ones.
//
// Example:
//
//	t, err := tensor.Ones(Shape{2, 3}, backend)
func Ones(shape Shape, b Backend) (*Array, error) {
	return OnesOf(shape, Float64, b)
}

// OnesOf creates an array of the given type filled with ones.
func OnesOf(shape Shape, dtype DataType, b Backend) (*Array, error) {
	var one any
	switch dtype {
	case Float64:
		one = 1.0
	case Int64:
		one = int64(1)
	case Bool:
		one = true
	}
	t, err := ZerosOf(shape, dtype, b)
	if err != nil {
		return nil, errors.Wrap(err, "ones")
	}
	s, _ := scalarOf(one)
	for i := 0; i < t.NumElements(); i++ {
		s.store(t.raw, i)
	}
	return t, nil
}

// Full creates an array filled with value. The element type follows the
// Go type of value: floats give Float64, integers Int64, bools Bool.
//
// Example:
//
//	t, err := tensor.Full(Shape{3, 3}, 3.14, backend)
func Full(shape Shape, value any, b Backend) (*Array, error) {
	s, err := scalarOf(value)
	if err != nil {
		return nil, errors.Wrap(err, "full")
	}
	t, err := ZerosOf(shape, s.kind, b)
	if err != nil {
		return nil, errors.Wrap(err, "full")
	}
	for i := 0; i < t.NumElements(); i++ {
		s.store(t.raw, i)
	}
	return t, nil
}

// Empty allocates a float64 array without defining its contents.
// Reading an element before writing it gives an unspecified value: the
// current implementation happens to hand out zeroed memory, callers must
// not rely on that.
func Empty(shape Shape, b Backend) (*Array, error) {
	raw, err := NewRaw(shape, Float64)
	if err != nil {
		return nil, errors.Wrap(err, "empty")
	}
	return New(raw, b), nil
}

// Eye creates a 2D float64 identity matrix.
//
// Example:
//
//	t, err := tensor.Eye(3, backend) // 3x3 identity matrix
func Eye(n int, b Backend) (*Array, error) {
	t, err := Zeros(Shape{n, n}, b)
	if err != nil {
		return nil, errors.Wrap(err, "eye")
	}
	data := t.raw.AsFloat64()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t, nil
}

// Arange creates a 1D float64 array with values start, start+step, ...
// strictly before stop in the direction of step.
//
// Example:
//
//	t, err := tensor.Arange(11.0, 108.5, 2.5, backend) // [11 13.5 ... 106]
func Arange(start, stop, step float64, b Backend) (*Array, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrDomain, "arange: step must not be zero")
	}
	for _, v := range []float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrDomain, "arange: non-finite bound %v", v)
		}
	}

	count := math.Ceil((stop - start) / step)
	if count > MaxElements {
		return nil, errors.Wrapf(ErrDomain, "arange: [%v, %v) by %v has too many elements", start, stop, step)
	}
	n := 0
	if count > 0 {
		n = int(count)
	}
	// Rounding in the ceil above can admit one value at or past stop.
	for n > 0 {
		last := start + float64(n-1)*step
		if (step > 0 && last < stop) || (step < 0 && last > stop) {
			break
		}
		n--
	}

	t, err := Zeros(Shape{n}, b)
	if err != nil {
		return nil, errors.Wrap(err, "arange")
	}
	data := t.raw.AsFloat64()
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return t, nil
}

// ArangeInt creates a 1D int64 array with values start, start+step, ...
// strictly before stop in the direction of step.
//
// Example:
//
//	t, err := tensor.ArangeInt(0, 13, 1, backend) // [0, 1, 2, ..., 12]
func ArangeInt(start, stop, step int64, b Backend) (*Array, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrDomain, "arange: step must not be zero")
	}

	// Spans and step magnitudes are computed in uint64 so that ranges wider
	// than MaxInt64 do not wrap.
	var span, stride uint64
	switch {
	case step > 0 && stop > start:
		span, stride = uint64(stop)-uint64(start), uint64(step)
	case step < 0 && stop < start:
		span, stride = uint64(start)-uint64(stop), uint64(-(step+1))+1
	}
	var n uint64
	if span > 0 {
		n = (span-1)/stride + 1
	}
	if n > MaxElements {
		return nil, errors.Wrapf(ErrDomain, "arange: [%d, %d) by %d has too many elements", start, stop, step)
	}

	t, err := ZerosOf(Shape{int(n)}, Int64, b)
	if err != nil {
		return nil, errors.Wrap(err, "arange")
	}
	data := t.raw.AsInt64()
	for i := range data {
		data[i] = start + int64(i)*step
	}
	return t, nil
}

// Linspace creates count evenly spaced float64 values over [start, stop].
// The last value is exactly stop when count >= 2; a count of 1 gives [start].
//
// Example:
//
//	t, err := tensor.Linspace(11.0, 108.5, 40, backend) // step 2.5
func Linspace(start, stop float64, count int, b Backend) (*Array, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrDomain, "linspace: count must be >= 1, got %d", count)
	}

	t, err := Zeros(Shape{count}, b)
	if err != nil {
		return nil, errors.Wrap(err, "linspace")
	}
	data := t.raw.AsFloat64()
	data[0] = start
	if count == 1 {
		return t, nil
	}

	step := (stop - start) / float64(count-1)
	for i := 1; i < count-1; i++ {
		data[i] = start + float64(i)*step
	}
	data[count-1] = stop
	return t, nil
}

// Logspace creates count values 10**e for e evenly spaced over [startExp, stopExp].
//
// Example:
//
//	t, err := tensor.Logspace(1, 9, 5, backend) // [1e1 1e3 1e5 1e7 1e9]
func Logspace(startExp, stopExp float64, count int, b Backend) (*Array, error) {
	return LogspaceBase(startExp, stopExp, count, 10, b)
}

// LogspaceBase is Logspace with an explicit base.
func LogspaceBase(startExp, stopExp float64, count int, base float64, b Backend) (*Array, error) {
	t, err := Linspace(startExp, stopExp, count, b)
	if err != nil {
		return nil, errors.Wrap(err, "logspace")
	}
	data := t.raw.AsFloat64()
	for i, e := range data {
		data[i] = math.Pow(base, e)
	}
	return t, nil
}
