// Package ndarray implements the interpreter's numeric-array extension.
//
// An Array is a dtype-tagged, strided view over a flat byte buffer. Strides
// are expressed in bytes, matching the extension's memory layout convention;
// the bridge package normalizes them to element units when it derives a
// descriptor. Arrays constructed with New or the From* builders own their
// buffer and are C-contiguous; Transpose produces a non-owning view sharing
// the same buffer with reversed shape and strides.
//
// The accessor set (NDim, Shape, Strides, ItemSize, DType, Size, NBytes,
// Data, Base, HasFlag) is the surface generated glue code reads when handing
// an array across the native boundary.
package ndarray
