// Package interpruntime provides the runtime support layer for exchanging
// values between native code and an embedded scripting interpreter.
//
// Generated glue code (and hand-written extensions) use this library to
// convert the interpreter's boxed values into fixed-width native scalars and
// lightweight n-dimensional array descriptors, and to box native results back
// into interpreter values.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	interpruntime/       Root package with the shared Value interface and Kind enum
//	├── object/          Boxed object model: scalars, singletons, interpreter context
//	├── ndarray/         Numeric-array extension: dtypes, strided arrays, views
//	├── bridge/          Conversions between boxed values and native types
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     Conversion inspector CLI
//
// # Quick Start
//
// Convert a boxed integer to a native int32 and back:
//
//	in := object.New()
//	b := bridge.New(in)
//
//	v, err := b.AsInt32(in.NewInt(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	boxed := b.FromInt32(v)
//
// Derive an array descriptor from a boxed array:
//
//	arr := ndarray.FromFloat64s([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	if bridge.HasRank(arr, 2) && bridge.HasDType(arr, ndarray.Float64) {
//	    desc := b.AsDescriptor(arr)
//	    _ = desc.Strides // element units, not bytes
//	}
//
// # Ownership Model
//
// Boxed values are ordinary Go values managed by the garbage collector. The
// bridge borrows values on input and hands newly constructed values to the
// caller on output; it never retains a reference. Array descriptors alias the
// array's buffer and must not outlive the array they were derived from.
//
// # Error Model
//
// Extraction failures follow the interpreter's convention: the failing
// primitive returns a sentinel value and sets the pending error indicator on
// the object.Interp. Bridge conversions surface this as a structured error
// from the errors package and deliberately leave the indicator set so the
// calling context can inspect or propagate it.
//
// # Thread Safety
//
// An Interp and the values it produces are intended for use by a single
// goroutine. Boxed scalars are immutable and safe to share once constructed.
package interpruntime
