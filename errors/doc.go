// Package errors provides structured error types for the interp-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/host type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExtract, errors.KindTypeMismatch).
//		GoType("int64").
//		HostType("str").
//		Detail("cannot extract integer payload").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseExtract, "float64", "complex")
//	err := errors.OutOfBounds(errors.PhaseArray, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
