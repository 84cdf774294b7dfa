// Package clruntime provides a safe Go layer over the OpenCL 3.0
// introspection API.
//
// OpenCL's clGet*Info functions return heterogeneous values: scalars,
// NUL-padded strings, arrays, opaque handles, and fixed-size identifiers,
// all delivered as raw bytes through a two-call size-then-fill protocol.
// This library turns those raw buffers into typed, immutable values with
// structured errors instead of status-code checking.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cl-runtime/          Root package with the InfoSource collaborator interface
//	├── infotype/        Tagged info value: decoder, checked conversions, rendering
//	├── query/           Two-call raw retrieval and the param→shape table
//	├── clnative/        cgo-backed sources for real platforms and devices
//	├── errors/          Structured error types for debugging
//	└── cmd/clinspect/   CLI for browsing platform and device info
//
// # Quick Start
//
// Query a device name through a native source:
//
//	platforms, err := clnative.Platforms()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	devices, _ := clnative.Devices(platforms[0])
//
//	src := clnative.DeviceSource(devices[0])
//	info, err := query.GetInfo(src, query.DeviceName)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, err := info.AsString()
//	fmt.Println(name) // "gfx1030"
//
// # Value Model
//
// infotype.InfoType is a closed tagged union covering every shape an info
// query can return:
//
//   - Scalars: cl_int, cl_uint, cl_long, cl_ulong, size_t, intptr_t
//   - Vectors of each scalar width
//   - Strings (trailing NUL padding stripped at decode time)
//   - Byte blobs (one per device, lengths from a separate size table)
//   - Fixed-size identifiers: 16-byte UUIDs and 8-byte LUIDs
//   - cl_name_version and cl_image_format record vectors
//
// Values are immutable plain data: they own their payload and hold no
// reference to the native object they were read from. Extraction is
// checked; asking a string-valued info for a cl_uint fails with a
// type_mismatch error rather than coercing.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] size_mismatch: cl_uuid requires exactly 16 bytes, got 15
//	[convert] type_mismatch: requested cl_uint, actual string
//
// Decode and conversion failures are always recoverable values; nothing in
// this module panics on malformed input.
//
// # Thread Safety
//
// Decoding, conversion and rendering are pure functions over owned byte
// buffers and are safe to call concurrently on distinct inputs. Whether a
// native handle may be queried from multiple goroutines is a property of
// the OpenCL implementation behind it, not of this layer.
package clruntime
