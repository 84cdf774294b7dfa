package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseQuery   Phase = "query"   // native size-then-fill retrieval
	PhaseDecode  Phase = "decode"  // raw bytes to tagged value
	PhaseConvert Phase = "convert" // tagged value to concrete Go type
)

// Kind categorizes the error
type Kind string

const (
	KindSizeMismatch Kind = "size_mismatch"
	KindTypeMismatch Kind = "type_mismatch"
	KindInvalidUTF8  Kind = "invalid_utf8"
	KindInvalidData  Kind = "invalid_data"
	KindNativeCall   Kind = "native_call"
	KindUnsupported  Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Requested string
	Actual    string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Requested != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Requested != "" && e.Actual != "" {
			b.WriteString("requested ")
			b.WriteString(e.Requested)
			b.WriteString(", actual ")
			b.WriteString(e.Actual)
		} else if e.Requested != "" {
			b.WriteString("requested ")
			b.WriteString(e.Requested)
		} else {
			b.WriteString("actual ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Requested != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Requested sets the shape the caller asked for
func (b *Builder) Requested(s string) *Builder {
	b.err.Requested = s
	return b
}

// Actual sets the shape actually present
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SizeMismatch creates a decode error for a raw buffer whose length
// violates the declared shape's size rule. constraint is human-readable,
// e.g. "exactly 16 bytes" or "a multiple of 8 bytes".
func SizeMismatch(shape, constraint string, actualLen int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSizeMismatch,
		Actual: shape,
		Detail: fmt.Sprintf("%s requires %s, got %d", shape, constraint, actualLen),
		Value:  actualLen,
	}
}

// TypeMismatch creates a conversion error for a checked extraction that
// asked for a shape the stored value does not have
func TypeMismatch(requested, actual string) *Error {
	return &Error{
		Phase:     PhaseConvert,
		Kind:      KindTypeMismatch,
		Requested: requested,
		Actual:    actual,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Actual: "string",
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NativeCall creates an error for a failed OpenCL entry point
func NativeCall(op string, status int32) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindNativeCall,
		Detail: fmt.Sprintf("%s failed: %s (%d)", op, StatusString(status), status),
		Value:  status,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(what string) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
