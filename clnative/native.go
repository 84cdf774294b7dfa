//go:build opencl

package clnative

/*
#cgo LDFLAGS: -lOpenCL
#define CL_TARGET_OPENCL_VERSION 300
#include <CL/cl.h>
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/query"
)

// Available reports whether this build carries the native backend.
func Available() bool { return true }

// Platforms enumerates the installed OpenCL platforms with the usual
// count-then-fetch pair of clGetPlatformIDs calls.
func Platforms() ([]PlatformID, error) {
	var count C.cl_uint
	if status := C.clGetPlatformIDs(0, nil, &count); status != C.CL_SUCCESS {
		return nil, errors.NativeCall("clGetPlatformIDs", int32(status))
	}
	if count == 0 {
		return nil, nil
	}

	ids := make([]C.cl_platform_id, count)
	if status := C.clGetPlatformIDs(count, &ids[0], nil); status != C.CL_SUCCESS {
		return nil, errors.NativeCall("clGetPlatformIDs", int32(status))
	}

	out := make([]PlatformID, count)
	for i, id := range ids {
		out[i] = PlatformID(uintptr(unsafe.Pointer(id)))
	}
	Logger().Debug("platforms enumerated", zap.Int("count", len(out)))
	return out, nil
}

// Devices enumerates the devices of a platform matching typeMask
// (DeviceTypeAll for everything). A platform with no matching devices
// returns an empty list, not an error.
func Devices(platform PlatformID, typeMask uint64) ([]DeviceID, error) {
	pid := C.cl_platform_id(unsafe.Pointer(uintptr(platform)))

	var count C.cl_uint
	status := C.clGetDeviceIDs(pid, C.cl_device_type(typeMask), 0, nil, &count)
	if status == C.CL_DEVICE_NOT_FOUND || (status == C.CL_SUCCESS && count == 0) {
		return nil, nil
	}
	if status != C.CL_SUCCESS {
		return nil, errors.NativeCall("clGetDeviceIDs", int32(status))
	}

	ids := make([]C.cl_device_id, count)
	if status := C.clGetDeviceIDs(pid, C.cl_device_type(typeMask), count, &ids[0], nil); status != C.CL_SUCCESS {
		return nil, errors.NativeCall("clGetDeviceIDs", int32(status))
	}

	out := make([]DeviceID, count)
	for i, id := range ids {
		out[i] = DeviceID(uintptr(unsafe.Pointer(id)))
	}
	return out, nil
}

// PlatformSource returns a query source bound to one platform.
func PlatformSource(platform PlatformID) query.Func {
	pid := C.cl_platform_id(unsafe.Pointer(uintptr(platform)))
	return func(param uint32, buf []byte) (int, error) {
		var size C.size_t
		if len(buf) == 0 {
			status := C.clGetPlatformInfo(pid, C.cl_platform_info(param), 0, nil, &size)
			if status != C.CL_SUCCESS {
				return 0, errors.NativeCall("clGetPlatformInfo", int32(status))
			}
			return int(size), nil
		}
		status := C.clGetPlatformInfo(pid, C.cl_platform_info(param),
			C.size_t(len(buf)), unsafe.Pointer(&buf[0]), &size)
		if status != C.CL_SUCCESS {
			return 0, errors.NativeCall("clGetPlatformInfo", int32(status))
		}
		return int(size), nil
	}
}

// DeviceSource returns a query source bound to one device.
func DeviceSource(device DeviceID) query.Func {
	did := C.cl_device_id(unsafe.Pointer(uintptr(device)))
	return func(param uint32, buf []byte) (int, error) {
		var size C.size_t
		if len(buf) == 0 {
			status := C.clGetDeviceInfo(did, C.cl_device_info(param), 0, nil, &size)
			if status != C.CL_SUCCESS {
				return 0, errors.NativeCall("clGetDeviceInfo", int32(status))
			}
			return int(size), nil
		}
		status := C.clGetDeviceInfo(did, C.cl_device_info(param),
			C.size_t(len(buf)), unsafe.Pointer(&buf[0]), &size)
		if status != C.CL_SUCCESS {
			return 0, errors.NativeCall("clGetDeviceInfo", int32(status))
		}
		return int(size), nil
	}
}
