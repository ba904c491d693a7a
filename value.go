package interpruntime

// Kind identifies the runtime representation of a boxed value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindComplex
	KindStr
	KindArray
)

var kindNames = [...]string{
	KindNone:    "none",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindComplex: "complex",
	KindStr:     "str",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumeric reports whether values of this kind carry a numeric payload.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindComplex:
		return true
	}
	return false
}

// Value is a boxed value owned by the interpreter runtime.
//
// Concrete implementations live in the object package (scalars) and the
// ndarray package (arrays). The bridge package converts between Values and
// native types.
type Value interface {
	// Kind returns the runtime representation tag.
	Kind() Kind
	// Type returns the interpreter-level type name.
	Type() string
	// String returns the value's display form.
	String() string
}
