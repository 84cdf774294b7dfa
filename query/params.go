package query

import (
	"sort"

	"github.com/oclkit/cl-runtime/infotype"
)

// Representative OpenCL 3.0 info params. The full catalogue runs to
// hundreds of entries; this table carries the params an inspector needs,
// covering every shape the decoder handles. Unknown params still work
// through GetInfoShaped with a caller-supplied shape.

// clGetPlatformInfo params.
const (
	PlatformProfile               uint32 = 0x0900
	PlatformVersion               uint32 = 0x0901
	PlatformName                  uint32 = 0x0902
	PlatformVendor                uint32 = 0x0903
	PlatformExtensions            uint32 = 0x0904
	PlatformHostTimerResolution   uint32 = 0x0905
	PlatformNumericVersion        uint32 = 0x0906
	PlatformExtensionsWithVersion uint32 = 0x0907
)

// clGetDeviceInfo params.
const (
	DeviceType                     uint32 = 0x1000
	DeviceVendorID                 uint32 = 0x1001
	DeviceMaxComputeUnits          uint32 = 0x1002
	DeviceMaxWorkItemDimensions    uint32 = 0x1003
	DeviceMaxWorkGroupSize         uint32 = 0x1004
	DeviceMaxWorkItemSizes         uint32 = 0x1005
	DeviceMaxMemAllocSize          uint32 = 0x1010
	DeviceImageSupport             uint32 = 0x1016
	DeviceSingleFPConfig           uint32 = 0x101B
	DeviceGlobalMemSize            uint32 = 0x101F
	DeviceLocalMemSize             uint32 = 0x1023
	DeviceAvailable                uint32 = 0x1027
	DeviceName                     uint32 = 0x102B
	DeviceVendor                   uint32 = 0x102C
	DriverVersion                  uint32 = 0x102D
	DeviceProfile                  uint32 = 0x102E
	DeviceVersion                  uint32 = 0x102F
	DeviceExtensions               uint32 = 0x1030
	DevicePlatform                 uint32 = 0x1031
	DeviceOpenCLCVersion           uint32 = 0x103D
	DeviceParentDevice             uint32 = 0x1042
	DevicePartitionProperties      uint32 = 0x1044
	DeviceReferenceCount           uint32 = 0x1047
	DeviceSVMCapabilities          uint32 = 0x1053
	DeviceNumericVersion           uint32 = 0x105E
	DeviceExtensionsWithVersion    uint32 = 0x1060
	DeviceILsWithVersion           uint32 = 0x1061
	DeviceBuiltInKernelsWithVer    uint32 = 0x1062
	DeviceOpenCLCAllVersions       uint32 = 0x1066
	DeviceUUID                     uint32 = 0x106A // cl_khr_device_uuid
	DriverUUID                     uint32 = 0x106B
	DeviceLUIDValid                uint32 = 0x106C
	DeviceLUID                     uint32 = 0x106D
	DeviceNodeMask                 uint32 = 0x106E
)

// Param describes one known info param.
type Param struct {
	ID   uint32
	Name string
	Kind infotype.Kind
}

var params = map[uint32]Param{
	PlatformProfile:               {PlatformProfile, "CL_PLATFORM_PROFILE", infotype.KindStr},
	PlatformVersion:               {PlatformVersion, "CL_PLATFORM_VERSION", infotype.KindStr},
	PlatformName:                  {PlatformName, "CL_PLATFORM_NAME", infotype.KindStr},
	PlatformVendor:                {PlatformVendor, "CL_PLATFORM_VENDOR", infotype.KindStr},
	PlatformExtensions:            {PlatformExtensions, "CL_PLATFORM_EXTENSIONS", infotype.KindStr},
	PlatformHostTimerResolution:   {PlatformHostTimerResolution, "CL_PLATFORM_HOST_TIMER_RESOLUTION", infotype.KindUlong},
	PlatformNumericVersion:        {PlatformNumericVersion, "CL_PLATFORM_NUMERIC_VERSION", infotype.KindUint},
	PlatformExtensionsWithVersion: {PlatformExtensionsWithVersion, "CL_PLATFORM_EXTENSIONS_WITH_VERSION", infotype.KindVecNameVersion},

	DeviceType:                  {DeviceType, "CL_DEVICE_TYPE", infotype.KindUlong},
	DeviceVendorID:              {DeviceVendorID, "CL_DEVICE_VENDOR_ID", infotype.KindUint},
	DeviceMaxComputeUnits:       {DeviceMaxComputeUnits, "CL_DEVICE_MAX_COMPUTE_UNITS", infotype.KindUint},
	DeviceMaxWorkItemDimensions: {DeviceMaxWorkItemDimensions, "CL_DEVICE_MAX_WORK_ITEM_DIMENSIONS", infotype.KindUint},
	DeviceMaxWorkGroupSize:      {DeviceMaxWorkGroupSize, "CL_DEVICE_MAX_WORK_GROUP_SIZE", infotype.KindSize},
	DeviceMaxWorkItemSizes:      {DeviceMaxWorkItemSizes, "CL_DEVICE_MAX_WORK_ITEM_SIZES", infotype.KindVecSize},
	DeviceMaxMemAllocSize:       {DeviceMaxMemAllocSize, "CL_DEVICE_MAX_MEM_ALLOC_SIZE", infotype.KindUlong},
	DeviceImageSupport:          {DeviceImageSupport, "CL_DEVICE_IMAGE_SUPPORT", infotype.KindUint},
	DeviceSingleFPConfig:        {DeviceSingleFPConfig, "CL_DEVICE_SINGLE_FP_CONFIG", infotype.KindUlong},
	DeviceGlobalMemSize:         {DeviceGlobalMemSize, "CL_DEVICE_GLOBAL_MEM_SIZE", infotype.KindUlong},
	DeviceLocalMemSize:          {DeviceLocalMemSize, "CL_DEVICE_LOCAL_MEM_SIZE", infotype.KindUlong},
	DeviceAvailable:             {DeviceAvailable, "CL_DEVICE_AVAILABLE", infotype.KindUint},
	DeviceName:                  {DeviceName, "CL_DEVICE_NAME", infotype.KindStr},
	DeviceVendor:                {DeviceVendor, "CL_DEVICE_VENDOR", infotype.KindStr},
	DriverVersion:               {DriverVersion, "CL_DRIVER_VERSION", infotype.KindStr},
	DeviceProfile:               {DeviceProfile, "CL_DEVICE_PROFILE", infotype.KindStr},
	DeviceVersion:               {DeviceVersion, "CL_DEVICE_VERSION", infotype.KindStr},
	DeviceExtensions:            {DeviceExtensions, "CL_DEVICE_EXTENSIONS", infotype.KindStr},
	DevicePlatform:              {DevicePlatform, "CL_DEVICE_PLATFORM", infotype.KindPtr},
	DeviceOpenCLCVersion:        {DeviceOpenCLCVersion, "CL_DEVICE_OPENCL_C_VERSION", infotype.KindStr},
	DeviceParentDevice:          {DeviceParentDevice, "CL_DEVICE_PARENT_DEVICE", infotype.KindPtr},
	DevicePartitionProperties:   {DevicePartitionProperties, "CL_DEVICE_PARTITION_PROPERTIES", infotype.KindVecPtr},
	DeviceReferenceCount:        {DeviceReferenceCount, "CL_DEVICE_REFERENCE_COUNT", infotype.KindUint},
	DeviceSVMCapabilities:       {DeviceSVMCapabilities, "CL_DEVICE_SVM_CAPABILITIES", infotype.KindUlong},
	DeviceNumericVersion:        {DeviceNumericVersion, "CL_DEVICE_NUMERIC_VERSION", infotype.KindUint},
	DeviceExtensionsWithVersion: {DeviceExtensionsWithVersion, "CL_DEVICE_EXTENSIONS_WITH_VERSION", infotype.KindVecNameVersion},
	DeviceILsWithVersion:        {DeviceILsWithVersion, "CL_DEVICE_ILS_WITH_VERSION", infotype.KindVecNameVersion},
	DeviceBuiltInKernelsWithVer: {DeviceBuiltInKernelsWithVer, "CL_DEVICE_BUILT_IN_KERNELS_WITH_VERSION", infotype.KindVecNameVersion},
	DeviceOpenCLCAllVersions:    {DeviceOpenCLCAllVersions, "CL_DEVICE_OPENCL_C_ALL_VERSIONS", infotype.KindVecNameVersion},
	DeviceUUID:                  {DeviceUUID, "CL_DEVICE_UUID_KHR", infotype.KindUuid},
	DriverUUID:                  {DriverUUID, "CL_DRIVER_UUID_KHR", infotype.KindUuid},
	DeviceLUIDValid:             {DeviceLUIDValid, "CL_DEVICE_LUID_VALID_KHR", infotype.KindUint},
	DeviceLUID:                  {DeviceLUID, "CL_DEVICE_LUID_KHR", infotype.KindLuid},
	DeviceNodeMask:              {DeviceNodeMask, "CL_DEVICE_NODE_MASK_KHR", infotype.KindUint},
}

// ShapeOf returns the decode shape for a known param.
func ShapeOf(param uint32) (infotype.Kind, bool) {
	p, ok := params[param]
	return p.Kind, ok
}

// ParamName returns the CL_* name for a known param, or "" otherwise.
func ParamName(param uint32) string {
	return params[param].Name
}

// PlatformParams lists the known clGetPlatformInfo params in ID order.
func PlatformParams() []Param {
	return paramRange(0x0900, 0x0FFF)
}

// DeviceParams lists the known clGetDeviceInfo params in ID order.
func DeviceParams() []Param {
	return paramRange(0x1000, 0x1FFF)
}

func paramRange(lo, hi uint32) []Param {
	var out []Param
	for id, p := range params {
		if id >= lo && id <= hi {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
