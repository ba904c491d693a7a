package bridge

import (
	"github.com/coralang/interp-runtime/object"
)

// FromInt64 boxes a native int64.
func (b *Bridge) FromInt64(v int64) *object.Int {
	return b.in.NewInt(v)
}

// FromInt32 boxes a native int32.
func (b *Bridge) FromInt32(v int32) *object.Int {
	return b.in.NewInt(int64(v))
}

// FromInt16 boxes a native int16.
func (b *Bridge) FromInt16(v int16) *object.Int {
	return b.in.NewInt(int64(v))
}

// FromInt8 boxes a native int8.
func (b *Bridge) FromInt8(v int8) *object.Int {
	return b.in.NewInt(int64(v))
}

// FromFloat64 boxes a native float64.
func (b *Bridge) FromFloat64(v float64) *object.Float {
	return b.in.NewFloat(v)
}

// FromFloat32 boxes a native float32, widening to double precision.
func (b *Bridge) FromFloat32(v float32) *object.Float {
	return b.in.NewFloat(float64(v))
}

// FromComplex128 boxes a native complex128 as a real/imaginary double pair.
func (b *Bridge) FromComplex128(v complex128) *object.Complex {
	return b.in.NewComplex(real(v), imag(v))
}

// FromComplex64 boxes a native complex64. Both parts widen to double
// precision before construction, the only form the primitive accepts.
func (b *Bridge) FromComplex64(v complex64) *object.Complex {
	return b.in.NewComplex(float64(real(v)), float64(imag(v)))
}

// FromBool returns the matching boolean singleton. It never allocates.
func (b *Bridge) FromBool(v bool) *object.Bool {
	if v {
		return object.True
	}
	return object.False
}
