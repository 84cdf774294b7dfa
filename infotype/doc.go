// Package infotype decodes OpenCL info query results into tagged values.
//
// Every clGet*Info entry point returns raw bytes whose meaning depends on
// the parameter being queried: a cl_uint here, a NUL-padded string there,
// an array of size_t somewhere else. InfoType is the closed tagged union
// covering all of those shapes, and Decode is the validated
// reinterpretation that produces one:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ raw bytes + declared shape → [Decode] → InfoType → As*() │
//	└──────────────────────────────────────────────────────────┘
//
// # Shapes
//
//	Shape               Payload         Size rule
//	────────────────────────────────────────────────────────
//	cl_int/cl_uint      int32/uint32    exactly 4 bytes
//	cl_long/cl_ulong    int64/uint64    exactly 8 bytes
//	size_t/intptr_t     uint64/uintptr  exactly pointer width
//	T[] vectors         []T             multiple of stride; empty ok
//	string              string          any length; NUL run stripped
//	uchar[][]           [][]byte        length table must cover buffer
//	cl_uuid             [16]byte        exactly 16 bytes
//	cl_luid             [8]byte         exactly 8 bytes
//	cl_name_version[]   []NameVersion   multiple of 68
//	cl_image_format[]   []ImageFormat   multiple of 8
//
// A buffer that violates its shape's size rule fails with a structured
// size_mismatch error; it never panics and never truncates or pads.
// An empty buffer declared as a vector decodes to an empty vector, not
// an absent value.
//
// # Extraction and rendering
//
// Each shape has a checked As* extractor that fails with type_mismatch
// when the stored variant differs from the request. Rendering via
// String() is separate and total: it works for every well-formed value
// and produces identical output on every call.
//
// NUL handling follows one rule in one place: Decode strips the entire
// trailing NUL run from string payloads (the native call may over-allocate
// and zero-fill, so a single-byte strip is not enough), and nothing
// downstream re-strips.
//
// # Thread Safety
//
// Values are immutable and all functions here are pure; concurrent use
// on distinct inputs needs no coordination.
package infotype
