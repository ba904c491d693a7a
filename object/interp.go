package object

import (
	"go.uber.org/zap"
)

// Interp is the interpreter context. It owns the pending error indicator and
// tracks boxed-value allocations.
//
// The indicator models the runtime's per-context error state explicitly: a
// failed extraction primitive sets it, nothing in this package clears it
// except ClearErr. Callers that ignore a left-set indicator across subsequent
// conversions will observe stale failures, exactly like the C-level runtime.
type Interp struct {
	pending error
	allocs  uint64
}

// New creates a fresh interpreter context with no pending error.
func New() *Interp {
	Logger().Debug("interp created")
	return &Interp{}
}

// Err returns the pending error indicator, or nil.
func (in *Interp) Err() error {
	return in.pending
}

// ErrOccurred reports whether the error indicator is set.
func (in *Interp) ErrOccurred() bool {
	return in.pending != nil
}

// SetErr sets the error indicator. A nil err is ignored so that an already
// pending error is never silently dropped.
func (in *Interp) SetErr(err error) {
	if err == nil {
		return
	}
	Logger().Debug("error indicator set", zap.Error(err))
	in.pending = err
}

// ClearErr clears the error indicator. Only deliberate caller code does this;
// conversion paths never do.
func (in *Interp) ClearErr() {
	in.pending = nil
}

// Allocs returns the number of boxed values constructed through this context.
func (in *Interp) Allocs() uint64 {
	return in.allocs
}
