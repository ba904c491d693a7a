package bridge

import (
	"testing"

	interpruntime "github.com/coralang/interp-runtime"

	"github.com/coralang/interp-runtime/ndarray"
	"github.com/coralang/interp-runtime/object"
)

func TestAsDescriptor(t *testing.T) {
	b, _ := newBridge()

	arr := ndarray.FromFloat64s([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	desc := b.AsDescriptor(arr)

	if desc.NDim != 2 {
		t.Errorf("NDim = %d, want 2", desc.NDim)
	}
	if desc.DType != ndarray.Float64 {
		t.Errorf("DType = %v, want float64", desc.DType)
	}
	if desc.ItemSize != 8 {
		t.Errorf("ItemSize = %d, want 8", desc.ItemSize)
	}
	if desc.Len != 6 {
		t.Errorf("Len = %d, want 6", desc.Len)
	}
	if desc.NBytes != 48 {
		t.Errorf("NBytes = %d, want 48", desc.NBytes)
	}
	if len(desc.Shape) != 2 || desc.Shape[0] != 2 || desc.Shape[1] != 3 {
		t.Errorf("Shape = %v, want [2 3]", desc.Shape)
	}
	// Byte strides [24 8] normalize to element strides [3 1].
	if len(desc.Strides) != 2 || desc.Strides[0] != 3 || desc.Strides[1] != 1 {
		t.Errorf("Strides = %v, want [3 1]", desc.Strides)
	}
	if !desc.IsView {
		t.Error("descriptor must be marked as a view")
	}
}

func TestAsDescriptor_TransposedStrides(t *testing.T) {
	b, _ := newBridge()

	arr := ndarray.FromFloat64s([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	desc := b.AsDescriptor(arr.Transpose())

	if desc.Shape[0] != 3 || desc.Shape[1] != 2 {
		t.Errorf("Shape = %v, want [3 2]", desc.Shape)
	}
	// Transposed byte strides [8 24] normalize to [1 3].
	if desc.Strides[0] != 1 || desc.Strides[1] != 3 {
		t.Errorf("Strides = %v, want [1 3]", desc.Strides)
	}
}

func TestAsDescriptor_DataAliasesBuffer(t *testing.T) {
	b, _ := newBridge()

	arr := ndarray.FromInt64s([]int64{10, 20, 30}, 3)
	desc := b.AsDescriptor(arr)

	// The descriptor is a view, not a copy: writes to the array show through.
	if err := arr.SetInt64(99, 1); err != nil {
		t.Fatalf("SetInt64: %v", err)
	}
	if &desc.Data[0] != &arr.Data()[0] {
		t.Error("descriptor data does not alias the array buffer")
	}
}

func TestAsDescriptor_FreshSequences(t *testing.T) {
	b, _ := newBridge()

	arr := ndarray.New(ndarray.Int32, 4, 5)
	d1 := b.AsDescriptor(arr)
	d2 := b.AsDescriptor(arr)

	// Shape and strides are owned by each descriptor.
	d1.Shape[0] = 999
	d1.Strides[0] = 999
	if d2.Shape[0] != 4 || d2.Strides[0] != 5 {
		t.Error("descriptors share header sequences")
	}
	if arr.Dim(0) != 4 {
		t.Error("descriptor mutation leaked into the array")
	}
}

func TestPredicates(t *testing.T) {
	in := object.New()

	arrays := []*ndarray.Array{
		ndarray.New(ndarray.Float64, 4),
		ndarray.New(ndarray.Int32, 2, 2),
		ndarray.New(ndarray.Complex128, 1, 2, 3),
	}

	tests := []struct {
		name  string
		val   interpruntime.Value
		rank  int
		dtype ndarray.DType
	}{
		{"f64 vector", arrays[0], 1, ndarray.Float64},
		{"i32 matrix", arrays[1], 2, ndarray.Int32},
		{"c128 cube", arrays[2], 3, ndarray.Complex128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !HasRank(tt.val, tt.rank) {
				t.Errorf("HasRank(%d) = false", tt.rank)
			}
			if HasRank(tt.val, tt.rank+1) {
				t.Errorf("HasRank(%d) = true", tt.rank+1)
			}
			if !HasDType(tt.val, tt.dtype) {
				t.Errorf("HasDType(%v) = false", tt.dtype)
			}
			if HasDType(tt.val, ndarray.Uint8) {
				t.Error("HasDType(uint8) = true")
			}
		})
	}

	// Non-arrays are false for both predicates, whatever the arguments.
	for _, o := range []interpruntime.Value{object.None, object.True, in.NewInt(3), in.NewStr("a")} {
		if HasRank(o, 0) || HasRank(o, 1) {
			t.Errorf("HasRank(%v) = true for non-array", o)
		}
		if HasDType(o, ndarray.Float64) {
			t.Errorf("HasDType(%v) = true for non-array", o)
		}
	}
}
