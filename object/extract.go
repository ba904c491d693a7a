package object

import (
	interpruntime "github.com/coralang/interp-runtime"

	"github.com/coralang/interp-runtime/errors"
)

// Sentinel return values of the extraction primitives. A sentinel alone does
// not signal failure; callers must also consult ErrOccurred, since -1 and -1.0
// are perfectly valid payloads.
const (
	IntSentinel   int64   = -1
	FloatSentinel float64 = -1.0
)

// IntAsInt64 extracts the integer payload of a boxed Int. Bool converts as
// 0/1, the way a runtime whose booleans are integers behaves. Any other value
// returns IntSentinel and sets the error indicator.
func (in *Interp) IntAsInt64(o interpruntime.Value) int64 {
	switch v := o.(type) {
	case *Int:
		return v.v
	case *Bool:
		if v.v {
			return 1
		}
		return 0
	default:
		in.SetErr(errors.TypeMismatch(errors.PhaseRuntime, "int64", typeName(o)))
		return IntSentinel
	}
}

// FloatAsFloat64 extracts the float payload of a boxed Float, widening a
// boxed Int. Any other value returns FloatSentinel and sets the error
// indicator.
func (in *Interp) FloatAsFloat64(o interpruntime.Value) float64 {
	switch v := o.(type) {
	case *Float:
		return v.v
	case *Int:
		return float64(v.v)
	default:
		in.SetErr(errors.TypeMismatch(errors.PhaseRuntime, "float64", typeName(o)))
		return FloatSentinel
	}
}

// ComplexRealAsFloat64 extracts the real part of a boxed Complex. Float and
// Int are accepted as complex values with zero imaginary part. Any other
// value returns FloatSentinel and sets the error indicator.
func (in *Interp) ComplexRealAsFloat64(o interpruntime.Value) float64 {
	switch v := o.(type) {
	case *Complex:
		return real(v.v)
	case *Float:
		return v.v
	case *Int:
		return float64(v.v)
	default:
		in.SetErr(errors.TypeMismatch(errors.PhaseRuntime, "float64", typeName(o)))
		return FloatSentinel
	}
}

// ComplexImagAsFloat64 extracts the imaginary part of a boxed Complex. Float
// and Int yield 0. Any other value returns FloatSentinel and sets the error
// indicator.
func (in *Interp) ComplexImagAsFloat64(o interpruntime.Value) float64 {
	switch v := o.(type) {
	case *Complex:
		return imag(v.v)
	case *Float, *Int:
		return 0
	default:
		in.SetErr(errors.TypeMismatch(errors.PhaseRuntime, "float64", typeName(o)))
		return FloatSentinel
	}
}
