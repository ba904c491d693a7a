package bridge

import (
	"github.com/coralang/interp-runtime/object"
)

// Bridge converts values for one interpreter context. It holds no other
// state; every conversion is a single-step transform.
type Bridge struct {
	in *object.Interp
}

// New binds a bridge to an interpreter context.
func New(in *object.Interp) *Bridge {
	return &Bridge{in: in}
}

// Interp returns the bound interpreter context.
func (b *Bridge) Interp() *object.Interp {
	return b.in
}
