package errors

import "strconv"

// OpenCL status codes returned by the native entry points. Only the codes
// an introspection call can realistically produce are named; anything else
// renders as its numeric value.
const (
	StatusSuccess                  int32 = 0
	StatusDeviceNotFound           int32 = -1
	StatusDeviceNotAvailable       int32 = -2
	StatusCompilerNotAvailable     int32 = -3
	StatusMemObjectAllocFailure    int32 = -4
	StatusOutOfResources           int32 = -5
	StatusOutOfHostMemory          int32 = -6
	StatusProfilingInfoNotAvail    int32 = -7
	StatusInvalidValue             int32 = -30
	StatusInvalidDeviceType        int32 = -31
	StatusInvalidPlatform          int32 = -32
	StatusInvalidDevice            int32 = -33
	StatusInvalidContext           int32 = -34
	StatusInvalidQueueProperties   int32 = -35
	StatusInvalidCommandQueue      int32 = -36
	StatusInvalidMemObject         int32 = -38
	StatusInvalidSampler           int32 = -41
	StatusInvalidProgram           int32 = -44
	StatusInvalidProgramExecutable int32 = -45
	StatusInvalidKernel            int32 = -48
	StatusInvalidEvent             int32 = -58
	StatusInvalidOperation         int32 = -59
)

var statusNames = map[int32]string{
	StatusSuccess:                  "CL_SUCCESS",
	StatusDeviceNotFound:           "CL_DEVICE_NOT_FOUND",
	StatusDeviceNotAvailable:       "CL_DEVICE_NOT_AVAILABLE",
	StatusCompilerNotAvailable:     "CL_COMPILER_NOT_AVAILABLE",
	StatusMemObjectAllocFailure:    "CL_MEM_OBJECT_ALLOCATION_FAILURE",
	StatusOutOfResources:           "CL_OUT_OF_RESOURCES",
	StatusOutOfHostMemory:          "CL_OUT_OF_HOST_MEMORY",
	StatusProfilingInfoNotAvail:    "CL_PROFILING_INFO_NOT_AVAILABLE",
	StatusInvalidValue:             "CL_INVALID_VALUE",
	StatusInvalidDeviceType:        "CL_INVALID_DEVICE_TYPE",
	StatusInvalidPlatform:          "CL_INVALID_PLATFORM",
	StatusInvalidDevice:            "CL_INVALID_DEVICE",
	StatusInvalidContext:           "CL_INVALID_CONTEXT",
	StatusInvalidQueueProperties:   "CL_INVALID_QUEUE_PROPERTIES",
	StatusInvalidCommandQueue:      "CL_INVALID_COMMAND_QUEUE",
	StatusInvalidMemObject:         "CL_INVALID_MEM_OBJECT",
	StatusInvalidSampler:           "CL_INVALID_SAMPLER",
	StatusInvalidProgram:           "CL_INVALID_PROGRAM",
	StatusInvalidProgramExecutable: "CL_INVALID_PROGRAM_EXECUTABLE",
	StatusInvalidKernel:            "CL_INVALID_KERNEL",
	StatusInvalidEvent:             "CL_INVALID_EVENT",
	StatusInvalidOperation:         "CL_INVALID_OPERATION",
}

// StatusString returns the CL_* name for a status code, or the numeric
// value when the code has no name here.
func StatusString(status int32) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return strconv.FormatInt(int64(status), 10)
}
