package ndarray

// DType is the array extension's element type tag.
type DType uint8

const (
	Bool DType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

var dtypeNames = [...]string{
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

var dtypeSizes = [...]int{
	Bool:       1,
	Int8:       1,
	Int16:      2,
	Int32:      4,
	Int64:      8,
	Uint8:      1,
	Uint16:     2,
	Uint32:     4,
	Uint64:     8,
	Float32:    4,
	Float64:    8,
	Complex64:  8,
	Complex128: 16,
}

func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "unknown"
}

// ItemSize returns the element size in bytes.
func (d DType) ItemSize() int {
	if int(d) < len(dtypeSizes) {
		return dtypeSizes[d]
	}
	return 0
}

// IsInteger reports whether the tag is a signed or unsigned integer type.
func (d DType) IsInteger() bool {
	return d >= Int8 && d <= Uint64
}

// IsFloat reports whether the tag is a floating-point type.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsComplex reports whether the tag is a complex type.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// ParseDType resolves a dtype name as printed by String. The second result is
// false for unknown names.
func ParseDType(name string) (DType, bool) {
	for d, n := range dtypeNames {
		if n == name {
			return DType(d), true
		}
	}
	return 0, false
}
