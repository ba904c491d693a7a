// Package object implements the interpreter's boxed object model.
//
// Boxed scalars (Int, Float, Complex, Bool, Str, None) are immutable values
// implementing the root Value interface. Bool and None are singletons; compare
// them by identity, never by structure.
//
// The Interp type is the interpreter context. It carries the pending error
// indicator and exposes the extraction and construction primitives the bridge
// package builds on. Extraction primitives follow the runtime's C-level
// convention: on failure they return a sentinel value (IntSentinel or
// FloatSentinel) and set the pending indicator. They never clear an indicator;
// only ClearErr does.
//
// An Interp is not safe for concurrent use.
package object
