package ndarray

import (
	"fmt"
	"strings"

	interpruntime "github.com/coralang/interp-runtime"
)

// Flags describe buffer ownership and memory order.
type Flags uint8

const (
	OwnsData Flags = 1 << iota
	CContiguous
	FContiguous
)

// Array is a boxed n-dimensional array: a dtype-tagged strided view over a
// flat byte buffer. Strides are in bytes.
type Array struct {
	dtype   DType
	shape   []int64
	strides []int64
	data    []byte
	base    *Array
	length  int64
	flags   Flags
}

// New builds a zero-filled C-contiguous array that owns its buffer.
// It panics on a negative dimension; shape construction is a programmer
// error, not a runtime condition.
func New(dtype DType, shape ...int64) *Array {
	length := int64(1)
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("ndarray: negative dimension %d", d))
		}
		length *= d
	}

	itemSize := int64(dtype.ItemSize())
	a := &Array{
		dtype:   dtype,
		shape:   append([]int64(nil), shape...),
		strides: contiguousStrides(shape, itemSize),
		data:    make([]byte, length*itemSize),
		length:  length,
		flags:   OwnsData | CContiguous,
	}
	if len(shape) <= 1 {
		a.flags |= FContiguous
	}
	return a
}

// contiguousStrides returns row-major byte strides for the given shape.
func contiguousStrides(shape []int64, itemSize int64) []int64 {
	strides := make([]int64, len(shape))
	acc := itemSize
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// FromInt64s builds an Int64 array from data reshaped to the given extents.
// It panics if len(data) does not match the shape.
func FromInt64s(data []int64, shape ...int64) *Array {
	a := New(Int64, shape...)
	if int64(len(data)) != a.length {
		panic(fmt.Sprintf("ndarray: %d elements do not fit shape %v", len(data), shape))
	}
	for i, v := range data {
		putUint64(a.data[i*8:], uint64(v))
	}
	return a
}

// FromFloat64s builds a Float64 array from data reshaped to the given
// extents. It panics if len(data) does not match the shape.
func FromFloat64s(data []float64, shape ...int64) *Array {
	a := New(Float64, shape...)
	if int64(len(data)) != a.length {
		panic(fmt.Sprintf("ndarray: %d elements do not fit shape %v", len(data), shape))
	}
	for i, v := range data {
		putFloat64(a.data[i*8:], v)
	}
	return a
}

// Transpose returns a view with reversed shape and strides sharing this
// array's buffer. C- and F-contiguity swap; the view never owns the data.
func (a *Array) Transpose() *Array {
	nd := len(a.shape)
	shape := make([]int64, nd)
	strides := make([]int64, nd)
	for i := 0; i < nd; i++ {
		shape[i] = a.shape[nd-1-i]
		strides[i] = a.strides[nd-1-i]
	}

	flags := Flags(0)
	if a.flags&CContiguous != 0 {
		flags |= FContiguous
	}
	if a.flags&FContiguous != 0 {
		flags |= CContiguous
	}

	base := a
	if a.base != nil {
		base = a.base
	}

	return &Array{
		dtype:   a.dtype,
		shape:   shape,
		strides: strides,
		data:    a.data,
		base:    base,
		length:  a.length,
		flags:   flags,
	}
}

// NDim returns the dimensionality.
func (a *Array) NDim() int { return len(a.shape) }

// Shape returns a copy of the per-dimension extents.
func (a *Array) Shape() []int64 { return append([]int64(nil), a.shape...) }

// Dim returns the extent of dimension i.
func (a *Array) Dim(i int) int64 { return a.shape[i] }

// Strides returns a copy of the per-dimension byte strides.
func (a *Array) Strides() []int64 { return append([]int64(nil), a.strides...) }

// Stride returns the byte stride of dimension i.
func (a *Array) Stride(i int) int64 { return a.strides[i] }

// ItemSize returns the element size in bytes.
func (a *Array) ItemSize() int { return a.dtype.ItemSize() }

// DType returns the element type tag.
func (a *Array) DType() DType { return a.dtype }

// Size returns the total element count.
func (a *Array) Size() int64 { return a.length }

// NBytes returns the total byte size of the logical contents.
func (a *Array) NBytes() int64 { return a.length * int64(a.dtype.ItemSize()) }

// Data returns the backing buffer. The slice aliases the array's storage;
// it is not a copy.
func (a *Array) Data() []byte { return a.data }

// Base returns the array this view was derived from, or nil for an owning
// array.
func (a *Array) Base() *Array { return a.base }

// HasFlag reports whether all bits of f are set.
func (a *Array) HasFlag(f Flags) bool { return a.flags&f == f }

// Kind implements the Value interface.
func (a *Array) Kind() interpruntime.Kind { return interpruntime.KindArray }

// Type implements the Value interface.
func (a *Array) Type() string { return "ndarray" }

// String returns a compact summary, not the element contents.
func (a *Array) String() string {
	dims := make([]string, len(a.shape))
	for i, d := range a.shape {
		dims[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("ndarray<%s>[%s]", a.dtype, strings.Join(dims, "x"))
}
