// Package errors provides structured error types for the register machine
// instruction set.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: instruction index, opcode name, payload type
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindMissingTrailer).
//		At(12).
//		Op("i32.add_imm").
//		Detail("expected const32 data word").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseEncode, nil, 40000, "const16")
//	err := errors.OutOfBounds(errors.PhaseValidate, 3, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
