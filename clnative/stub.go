//go:build !opencl

package clnative

import (
	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/query"
)

const unavailable = "OpenCL backend not compiled in; rebuild with -tags opencl"

// Available reports whether this build carries the native backend.
func Available() bool { return false }

// Platforms fails on builds without the opencl tag.
func Platforms() ([]PlatformID, error) {
	return nil, errors.Unsupported(unavailable)
}

// Devices fails on builds without the opencl tag.
func Devices(PlatformID, uint64) ([]DeviceID, error) {
	return nil, errors.Unsupported(unavailable)
}

// PlatformSource returns a source whose every query fails.
func PlatformSource(PlatformID) query.Func {
	return func(uint32, []byte) (int, error) {
		return 0, errors.Unsupported(unavailable)
	}
}

// DeviceSource returns a source whose every query fails.
func DeviceSource(DeviceID) query.Func {
	return func(uint32, []byte) (int, error) {
		return 0, errors.Unsupported(unavailable)
	}
}
