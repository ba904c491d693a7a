package bridge

import (
	interpruntime "github.com/coralang/interp-runtime"

	"github.com/coralang/interp-runtime/ndarray"
)

// HasRank reports whether o is a boxed array of the given dimensionality.
// False for anything that is not an array.
func HasRank(o interpruntime.Value, rank int) bool {
	a, ok := o.(*ndarray.Array)
	return ok && a.NDim() == rank
}

// HasDType reports whether o is a boxed array with the given element type
// tag. False for anything that is not an array.
func HasDType(o interpruntime.Value, dt ndarray.DType) bool {
	a, ok := o.(*ndarray.Array)
	return ok && a.DType() == dt
}
