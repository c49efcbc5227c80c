package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations. Every kernel
// returns a fresh RawTensor and leaves its inputs untouched.
//
// Implementations:
//   - CPU: Pure Go, gonum for linear algebra and statistics
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting and type promotion.
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Div(a, b *RawTensor) (*RawTensor, error) // always float64
	Pow(a, b *RawTensor) (*RawTensor, error)
	Mod(a, b *RawTensor) (*RawTensor, error) // sign of the divisor

	// Rounding (element-wise, float64 result)
	Round(x *RawTensor) *RawTensor // half to even
	Ceil(x *RawTensor) *RawTensor
	Floor(x *RawTensor) *RawTensor

	// Math operations (element-wise, float64 result, IEEE-754 for out-of-domain input)
	Sin(x *RawTensor) *RawTensor
	Cos(x *RawTensor) *RawTensor
	Tan(x *RawTensor) *RawTensor
	Asin(x *RawTensor) *RawTensor
	Acos(x *RawTensor) *RawTensor
	Atan(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor // keeps the dtype of x

	// Reductions over every element
	Min(x *RawTensor) (float64, error)
	Max(x *RawTensor) (float64, error)
	Sum(x *RawTensor) (float64, error)
	Mean(x *RawTensor) (float64, error)
	Average(x, weights *RawTensor) (float64, error) // weights may be nil
	Std(x *RawTensor) (float64, error)
	Var(x *RawTensor) (float64, error)

	// Linear algebra
	Dot(a, b *RawTensor) (*RawTensor, error)
	Inner(a, b *RawTensor) (*RawTensor, error)
	MatMul(a, b *RawTensor) (*RawTensor, error)
	Det(x *RawTensor) (*RawTensor, error)

	// Manipulation
	Cat(tensors []*RawTensor, dim int) (*RawTensor, error)
	Delete(x *RawTensor, index, dim int) (*RawTensor, error)
	Transpose(x *RawTensor, axes ...int) (*RawTensor, error)

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
}
