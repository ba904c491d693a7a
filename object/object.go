package object

import (
	"strconv"

	interpruntime "github.com/coralang/interp-runtime"
)

// NoneType is the type of the None singleton.
type NoneType struct{}

// None is the interpreter's unit value.
var None = &NoneType{}

func (*NoneType) Kind() interpruntime.Kind { return interpruntime.KindNone }
func (*NoneType) Type() string             { return "none" }
func (*NoneType) String() string           { return "none" }

// Bool is a boxed boolean. The only two instances are the True and False
// singletons; identity comparison against True is the truth test.
type Bool struct {
	v bool
}

var (
	True  = &Bool{v: true}
	False = &Bool{v: false}
)

func (b *Bool) Kind() interpruntime.Kind { return interpruntime.KindBool }
func (b *Bool) Type() string             { return "bool" }
func (b *Bool) Value() bool              { return b.v }

func (b *Bool) String() string {
	if b.v {
		return "true"
	}
	return "false"
}

// Int is a boxed 64-bit signed integer.
type Int struct {
	v int64
}

func (i *Int) Kind() interpruntime.Kind { return interpruntime.KindInt }
func (i *Int) Type() string             { return "int" }
func (i *Int) Value() int64             { return i.v }
func (i *Int) String() string           { return strconv.FormatInt(i.v, 10) }

// Float is a boxed double-precision float.
type Float struct {
	v float64
}

func (f *Float) Kind() interpruntime.Kind { return interpruntime.KindFloat }
func (f *Float) Type() string             { return "float" }
func (f *Float) Value() float64           { return f.v }
func (f *Float) String() string           { return strconv.FormatFloat(f.v, 'g', -1, 64) }

// Complex is a boxed double-precision complex number.
type Complex struct {
	v complex128
}

func (c *Complex) Kind() interpruntime.Kind { return interpruntime.KindComplex }
func (c *Complex) Type() string             { return "complex" }
func (c *Complex) Value() complex128        { return c.v }
func (c *Complex) String() string           { return strconv.FormatComplex(c.v, 'g', -1, 128) }

// Str is a boxed immutable string.
type Str struct {
	v string
}

func (s *Str) Kind() interpruntime.Kind { return interpruntime.KindStr }
func (s *Str) Type() string             { return "str" }
func (s *Str) Value() string            { return s.v }
func (s *Str) String() string           { return strconv.Quote(s.v) }

// typeName is a nil-safe Type() for error reporting.
func typeName(o interpruntime.Value) string {
	if o == nil {
		return "nil"
	}
	return o.Type()
}
