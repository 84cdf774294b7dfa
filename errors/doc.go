// Package errors provides structured error types for the cl-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the requested and actual
// shapes, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindSizeMismatch).
//		Actual("cl_uuid").
//		Detail("cl_uuid requires exactly 16 bytes, got %d", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SizeMismatch("cl_uuid", "exactly 16 bytes", 15)
//	err := errors.TypeMismatch("cl_uint", "string")
//	err := errors.NativeCall("clGetDeviceInfo", status)
//
// All errors implement the standard error interface and support errors.Is/As.
// The three phases distinguish the failure modes callers react to
// differently: a native call that failed, a malformed raw buffer, and a
// well-formed value the caller asked the wrong question of.
package errors
