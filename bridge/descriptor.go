package bridge

import (
	"github.com/coralang/interp-runtime/ndarray"
)

// Descriptor is the native-side view of a boxed array: a handful of copied
// header fields plus an alias of the array's buffer. It never owns storage
// and must not outlive the array it was derived from.
type Descriptor struct {
	// NDim is the dimensionality.
	NDim int
	// Data aliases the array's buffer.
	Data []byte
	// ItemSize is the element size in bytes.
	ItemSize int
	// DType is the element type tag.
	DType ndarray.DType
	// Len is the total element count.
	Len int64
	// NBytes is the total byte size.
	NBytes int64
	// Shape holds the per-dimension extents.
	Shape []int64
	// Strides holds the per-dimension strides in element units.
	Strides []int64
	// IsView marks the descriptor as a non-owning view into storage managed
	// by the array extension. Always true for derived descriptors.
	IsView bool
}

// AsDescriptor derives a native descriptor from a boxed array. Rank and
// dtype are not validated here; callers establish those preconditions with
// HasRank and HasDType. Byte strides are normalized to element units using
// the element size.
func (b *Bridge) AsDescriptor(a *ndarray.Array) Descriptor {
	itemSize := int64(a.ItemSize())

	strides := a.Strides()
	for i, s := range strides {
		strides[i] = s / itemSize
	}

	return Descriptor{
		NDim:     a.NDim(),
		Data:     a.Data(),
		ItemSize: a.ItemSize(),
		DType:    a.DType(),
		Len:      a.Size(),
		NBytes:   a.NBytes(),
		Shape:    a.Shape(),
		Strides:  strides,
		IsView:   true,
	}
}
