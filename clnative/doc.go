// Package clnative binds the query layer to a real OpenCL installation.
//
// With the opencl build tag, Platforms and Devices enumerate through the
// system ICD loader and PlatformSource/DeviceSource wrap
// clGetPlatformInfo/clGetDeviceInfo as query.Func closures. Without the
// tag every entry point fails with an unsupported error, so callers can
// link and test against the package unconditionally.
//
// All cgo and raw-pointer handling lives here. By the time bytes reach
// the decoder they are owned Go memory; the rest of the library never
// touches native buffers.
//
// Whether one device handle may be queried from several goroutines at
// once depends on the vendor implementation; this package adds no
// locking of its own.
package clnative
