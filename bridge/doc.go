// Package bridge converts between the interpreter's boxed values and native
// fixed-width types.
//
// It is the layer generated glue code calls when a native function receives
// or returns interpreter values:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Boxed Value ←→ [Bridge] ←→ Native scalar / Descriptor    │
//	└──────────────────────────────────────────────────────────┘
//
// # Conversions
//
//	Inbound              Outbound          Notes
//	────────────────────────────────────────────────────────────
//	AsInt64/32/16/8      FromInt64/32/16/8 narrowing truncates silently
//	AsFloat64/32         FromFloat64/32    float32 narrows silently
//	AsComplex128/64      FromComplex128/64 boxed form is a double pair
//	AsBool               FromBool          singleton identity, never fails
//	AsDescriptor         —                 non-owning array view
//
// # Failure Protocol
//
// Inbound numeric conversions follow the runtime's extraction convention: a
// sentinel return combined with a set error indicator means failure. The
// bridge surfaces that as a conversion_failed error wrapping the pending
// error and leaves the indicator set; clearing it is the caller's decision.
// One consequence carries over from the runtime itself: a caller that leaves
// the indicator set across calls will see a later sentinel-valued success
// misreported as a failure. Clear or propagate pending errors promptly.
//
// # Truncation
//
// Narrowing an integer keeps the low-order bits and discards the rest, the
// same behavior as the extraction primitive the conversions wrap. Callers
// that need range checking must do it themselves.
//
// # Array Descriptors
//
// AsDescriptor reads the array's accessor surface field by field and
// normalizes byte strides to element units. It performs no rank or dtype
// validation; use HasRank and HasDType first. The descriptor aliases the
// array's buffer and must not outlive it.
package bridge
