package bridge

import (
	interpruntime "github.com/coralang/interp-runtime"

	"github.com/coralang/interp-runtime/errors"
	"github.com/coralang/interp-runtime/object"
)

// AsInt64 extracts a native int64 from a boxed integer. On failure the
// pending error indicator stays set for the caller to inspect.
func (b *Bridge) AsInt64(o interpruntime.Value) (int64, error) {
	v := b.in.IntAsInt64(o)
	if v == object.IntSentinel && b.in.ErrOccurred() {
		return 0, errors.ConversionFailed("int64", b.in.Err())
	}
	return v, nil
}

// AsInt32 extracts a native int32, keeping the low-order 32 bits.
func (b *Bridge) AsInt32(o interpruntime.Value) (int32, error) {
	v, err := b.AsInt64(o)
	return int32(v), err
}

// AsInt16 extracts a native int16, keeping the low-order 16 bits.
func (b *Bridge) AsInt16(o interpruntime.Value) (int16, error) {
	v, err := b.AsInt64(o)
	return int16(v), err
}

// AsInt8 extracts a native int8, keeping the low-order 8 bits.
func (b *Bridge) AsInt8(o interpruntime.Value) (int8, error) {
	v, err := b.AsInt64(o)
	return int8(v), err
}

// AsFloat64 extracts a native float64 from a boxed float.
func (b *Bridge) AsFloat64(o interpruntime.Value) (float64, error) {
	v := b.in.FloatAsFloat64(o)
	if v == object.FloatSentinel && b.in.ErrOccurred() {
		return 0, errors.ConversionFailed("float64", b.in.Err())
	}
	return v, nil
}

// AsFloat32 extracts a native float32, narrowing silently.
func (b *Bridge) AsFloat32(o interpruntime.Value) (float32, error) {
	v, err := b.AsFloat64(o)
	return float32(v), err
}

// AsComplex128 extracts a native complex128 from a boxed complex value. The
// real and imaginary parts are extracted separately; either can fail.
func (b *Bridge) AsComplex128(o interpruntime.Value) (complex128, error) {
	re := b.in.ComplexRealAsFloat64(o)
	if re == object.FloatSentinel && b.in.ErrOccurred() {
		return 0, errors.ConversionFailed("complex128", b.in.Err())
	}
	im := b.in.ComplexImagAsFloat64(o)
	if im == object.FloatSentinel && b.in.ErrOccurred() {
		return 0, errors.ConversionFailed("complex128", b.in.Err())
	}
	return complex(re, im), nil
}

// AsComplex64 extracts a native complex64, narrowing both parts to single
// precision silently.
func (b *Bridge) AsComplex64(o interpruntime.Value) (complex64, error) {
	v, err := b.AsComplex128(o)
	return complex64(v), err
}

// AsBool converts by identity against the True singleton. Every other value,
// the False singleton included, yields false. It cannot fail.
func (b *Bridge) AsBool(o interpruntime.Value) bool {
	return o == object.True
}
