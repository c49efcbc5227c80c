package tensor

type binaryKernel func(a, b *RawTensor) (*RawTensor, error)

func (a *Array) apply(kernel binaryKernel, other *Array) (*Array, error) {
	if err := requireOperands("binary operation", []*Array{a, other}); err != nil {
		return nil, err
	}
	result, err := kernel(a.raw, other.raw)
	if err != nil {
		return nil, err
	}
	return New(result, a.backend), nil
}

func (a *Array) applyScalar(kernel binaryKernel, value any) (*Array, error) {
	s, err := Scalar(value, a.backend)
	if err != nil {
		return nil, err
	}
	return a.apply(kernel, s)
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a, _ := tensor.FromSequence([]float64{-1.5, 0, 2, 5}, backend)
//	b, _ := tensor.FromSequence([]float64{-5, 3, 4, 2.5}, backend)
//	c, _ := a.Add(b) // [-6.5 3 6 7.5]
func (a *Array) Add(other *Array) (*Array, error) {
	return a.apply(a.backend.Add, other)
}

// Sub performs element-wise subtraction with broadcasting.
func (a *Array) Sub(other *Array) (*Array, error) {
	return a.apply(a.backend.Sub, other)
}

// Mul performs element-wise multiplication with broadcasting.
func (a *Array) Mul(other *Array) (*Array, error) {
	return a.apply(a.backend.Mul, other)
}

// Div performs element-wise true division with broadcasting. The result is
// always float64. Real operands follow IEEE-754 for zero divisors; two
// integer operands with a zero divisor fail with ErrDomain.
func (a *Array) Div(other *Array) (*Array, error) {
	return a.apply(a.backend.Div, other)
}

// Pow raises each element to the matching power.
func (a *Array) Pow(other *Array) (*Array, error) {
	return a.apply(a.backend.Pow, other)
}

// Mod computes the element-wise remainder with the sign of the divisor.
func (a *Array) Mod(other *Array) (*Array, error) {
	return a.apply(a.backend.Mod, other)
}

// Remainder is Mod.
func (a *Array) Remainder(other *Array) (*Array, error) {
	return a.Mod(other)
}

// AddScalar adds value to every element.
//
// Example:
//
//	addedTen, _ := firstVector.AddScalar(10) // [8.5 10 12 15]
func (a *Array) AddScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Add, value)
}

// SubScalar subtracts value from every element.
func (a *Array) SubScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Sub, value)
}

// MulScalar multiplies every element by value.
func (a *Array) MulScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Mul, value)
}

// DivScalar divides every element by value.
func (a *Array) DivScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Div, value)
}

// PowScalar raises every element to value.
func (a *Array) PowScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Pow, value)
}

// ModScalar computes every element modulo value.
func (a *Array) ModScalar(value any) (*Array, error) {
	return a.applyScalar(a.backend.Mod, value)
}

// Round rounds to the nearest integer, halves to even.
func (a *Array) Round() *Array { return New(a.backend.Round(a.raw), a.backend) }

// Ceil rounds up.
func (a *Array) Ceil() *Array { return New(a.backend.Ceil(a.raw), a.backend) }

// Floor rounds down.
func (a *Array) Floor() *Array { return New(a.backend.Floor(a.raw), a.backend) }

// Sin computes the element-wise sine.
func (a *Array) Sin() *Array { return New(a.backend.Sin(a.raw), a.backend) }

// Cos computes the element-wise cosine.
func (a *Array) Cos() *Array { return New(a.backend.Cos(a.raw), a.backend) }

// Tan computes the element-wise tangent.
func (a *Array) Tan() *Array { return New(a.backend.Tan(a.raw), a.backend) }

// Asin computes the element-wise inverse sine. Inputs outside [-1, 1] give NaN.
func (a *Array) Asin() *Array { return New(a.backend.Asin(a.raw), a.backend) }

// Acos computes the element-wise inverse cosine. Inputs outside [-1, 1] give NaN.
func (a *Array) Acos() *Array { return New(a.backend.Acos(a.raw), a.backend) }

// Atan computes the element-wise inverse tangent.
func (a *Array) Atan() *Array { return New(a.backend.Atan(a.raw), a.backend) }

// Sqrt computes the element-wise square root. Negative inputs give NaN.
func (a *Array) Sqrt() *Array { return New(a.backend.Sqrt(a.raw), a.backend) }

// Exp computes the element-wise exponential.
func (a *Array) Exp() *Array { return New(a.backend.Exp(a.raw), a.backend) }

// Log computes the element-wise natural logarithm.
func (a *Array) Log() *Array { return New(a.backend.Log(a.raw), a.backend) }

// Abs computes the element-wise absolute value.
func (a *Array) Abs() *Array { return New(a.backend.Abs(a.raw), a.backend) }

// Min returns the smallest element.
func (a *Array) Min() (float64, error) { return a.backend.Min(a.raw) }

// Max returns the largest element.
func (a *Array) Max() (float64, error) { return a.backend.Max(a.raw) }

// Sum returns the sum of all elements.
func (a *Array) Sum() (float64, error) { return a.backend.Sum(a.raw) }

// Mean returns the arithmetic mean.
func (a *Array) Mean() (float64, error) { return a.backend.Mean(a.raw) }

// Std returns the population standard deviation.
func (a *Array) Std() (float64, error) { return a.backend.Std(a.raw) }

// Var returns the population variance.
func (a *Array) Var() (float64, error) { return a.backend.Var(a.raw) }

// Average returns the mean, or sum(weights*a)/sum(weights) when weights is
// non-nil. weights must hold one element per element of a.
//
// Example:
//
//	w, _ := tensor.FromSequence([]float64{1, 1, 1, 5}, backend)
//	avg, _ := firstVector.Average(w) // 3.1875
func (a *Array) Average(weights *Array) (float64, error) {
	if weights == nil {
		return a.backend.Average(a.raw, nil)
	}
	return a.backend.Average(a.raw, weights.raw)
}

// Dot computes the dot product: scalar for two vectors, matrix product for
// two matrices, and NumPy's sum-product over the last axis of a and the
// second-to-last axis of other in general.
//
// Example:
//
//	a, _ := tensor.FromSequence([]int{1, 2, 3}, backend)
//	b, _ := tensor.FromSequence([]int{4, -5, 6}, backend)
//	d, _ := a.Dot(b) // 12
func (a *Array) Dot(other *Array) (*Array, error) {
	return a.apply(a.backend.Dot, other)
}

// Inner computes the sum-product over the last axes of a and other.
func (a *Array) Inner(other *Array) (*Array, error) {
	return a.apply(a.backend.Inner, other)
}

// MatMul performs matrix multiplication of two 2-D arrays.
func (a *Array) MatMul(other *Array) (*Array, error) {
	return a.apply(a.backend.MatMul, other)
}

// Det computes the determinant of a square matrix, or one determinant per
// matrix of a stack shaped (..., n, n).
func (a *Array) Det() (*Array, error) {
	result, err := a.backend.Det(a.raw)
	if err != nil {
		return nil, err
	}
	return New(result, a.backend), nil
}

// Equal reports whether both arrays have the same shape and element values.
// Element types may differ; values are compared numerically.
func (a *Array) Equal(other *Array) bool {
	if other == nil {
		return false
	}
	if !a.raw.Shape().Equal(other.raw.Shape()) {
		return false
	}
	for i := 0; i < a.NumElements(); i++ {
		if a.raw.Float64At(i) != other.raw.Float64At(i) {
			return false
		}
	}
	return true
}
