package clnative

// PlatformID and DeviceID are opaque native handles. They are only
// produced by enumeration here and consumed by the *Source constructors;
// this layer never dereferences them.
type PlatformID uintptr

type DeviceID uintptr

// Device type bits for Devices filtering (cl_device_type).
const (
	DeviceTypeDefault     uint64 = 1 << 0
	DeviceTypeCPU         uint64 = 1 << 1
	DeviceTypeGPU         uint64 = 1 << 2
	DeviceTypeAccelerator uint64 = 1 << 3
	DeviceTypeCustom      uint64 = 1 << 4
	DeviceTypeAll         uint64 = 0xFFFFFFFF
)
