package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseConvert,
				Kind:      KindTypeMismatch,
				Requested: "cl_uint",
				Actual:    "string",
				Detail:    "cannot extract",
			},
			contains: []string{"[convert]", "type_mismatch", "requested cl_uint", "actual string", "cannot extract"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindSizeMismatch,
			},
			contains: []string{"[decode]", "size_mismatch"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseQuery,
				Kind:   KindNativeCall,
				Detail: "clGetPlatformInfo failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[query]", "native_call", "clGetPlatformInfo failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	a := SizeMismatch("cl_uuid", "exactly 16 bytes", 15)
	b := SizeMismatch("cl_luid", "exactly 8 bytes", 9)
	c := TypeMismatch("cl_uint", "string")

	if !errors.Is(a, b) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("size_mismatch should not match type_mismatch")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(PhaseQuery, KindNativeCall, cause, "probe size")
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be found by errors.Is")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindSizeMismatch).
		Actual("cl_uuid").
		Detail("got %d bytes", 15).
		Value(15).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindSizeMismatch {
		t.Errorf("builder lost phase/kind: %+v", err)
	}
	if err.Detail != "got 15 bytes" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Value != 15 {
		t.Errorf("Value = %v", err.Value)
	}
}

func TestTypeMismatch_Fields(t *testing.T) {
	err := TypeMismatch("cl_uint", "string")
	if err.Requested != "cl_uint" || err.Actual != "string" {
		t.Errorf("TypeMismatch fields = %q, %q", err.Requested, err.Actual)
	}
	msg := err.Error()
	if !strings.Contains(msg, "cl_uint") || !strings.Contains(msg, "string") {
		t.Errorf("message should name both shapes: %q", msg)
	}
}

func TestInvalidUTF8_TruncatesPreview(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0xFF
	}
	err := InvalidUTF8(data)
	// 32 bytes hex-encoded is 64 chars; the message must not carry all 100.
	if strings.Contains(err.Detail, strings.Repeat("ff", 40)) {
		t.Errorf("preview not truncated: %q", err.Detail)
	}
}

func TestNativeCall_NamesKnownStatus(t *testing.T) {
	err := NativeCall("clGetDeviceInfo", StatusInvalidValue)
	if !strings.Contains(err.Error(), "CL_INVALID_VALUE") {
		t.Errorf("expected named status, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "-30") {
		t.Errorf("expected numeric status, got %q", err.Error())
	}
}

func TestStatusString_Unknown(t *testing.T) {
	if got := StatusString(-9999); got != "-9999" {
		t.Errorf("StatusString(-9999) = %q", got)
	}
}
