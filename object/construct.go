package object

import (
	"go.uber.org/zap"
)

// NewInt boxes a 64-bit integer.
func (in *Interp) NewInt(v int64) *Int {
	in.allocs++
	Logger().Debug("box int", zap.Int64("value", v))
	return &Int{v: v}
}

// NewFloat boxes a double-precision float.
func (in *Interp) NewFloat(v float64) *Float {
	in.allocs++
	Logger().Debug("box float", zap.Float64("value", v))
	return &Float{v: v}
}

// NewComplex boxes a complex number from a double-precision real/imaginary
// pair, the only form the construction primitive accepts.
func (in *Interp) NewComplex(re, im float64) *Complex {
	in.allocs++
	Logger().Debug("box complex", zap.Float64("real", re), zap.Float64("imag", im))
	return &Complex{v: complex(re, im)}
}

// NewStr boxes a string.
func (in *Interp) NewStr(v string) *Str {
	in.allocs++
	Logger().Debug("box str", zap.Int("len", len(v)))
	return &Str{v: v}
}

// NewBool returns the matching boolean singleton. It never allocates.
func (in *Interp) NewBool(v bool) *Bool {
	if v {
		return True
	}
	return False
}
