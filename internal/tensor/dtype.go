// Package tensor provides the core array types and operations for numprimer.
package tensor

// DataType represents runtime type information for arrays.
type DataType int

// Supported element types.
const (
	Float64 DataType = iota
	Int64
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64, Int64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of String.
func ParseDataType(name string) (DataType, bool) {
	switch name {
	case "float64":
		return Float64, true
	case "int64":
		return Int64, true
	case "bool":
		return Bool, true
	default:
		return 0, false
	}
}

// IsIntegral reports whether values of this type are exact integers (bools count as 0/1).
func (dt DataType) IsIntegral() bool {
	return dt == Int64 || dt == Bool
}

// rank orders types for promotion: bool < int64 < float64.
func (dt DataType) rank() int {
	switch dt {
	case Bool:
		return 0
	case Int64:
		return 1
	default:
		return 2
	}
}

// PromoteTypes returns the smallest type both a and b convert to without losing their kind.
//
// Examples:
//
//	PromoteTypes(Int64, Int64)   // Int64
//	PromoteTypes(Int64, Float64) // Float64
//	PromoteTypes(Bool, Int64)    // Int64
func PromoteTypes(a, b DataType) DataType {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}
