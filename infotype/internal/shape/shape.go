package shape

import "unsafe"

// Kind identifies the declared interpretation of a raw info buffer.
type Kind uint8

const (
	KindInt Kind = iota
	KindUint
	KindLong
	KindUlong
	KindSize
	KindPtr
	KindStr
	KindVecInt
	KindVecUint
	KindVecLong
	KindVecUlong
	KindVecSize
	KindVecPtr
	KindVecVecUchar
	KindUuid
	KindLuid
	KindVecNameVersion
	KindVecImageFormat
)

// Sizes fixed by the OpenCL C API.
const (
	UuidSize = 16 // CL_UUID_SIZE_KHR
	LuidSize = 8  // CL_LUID_SIZE_KHR

	// cl_name_version: cl_version followed by char[64].
	NameVersionNameSize = 64
	NameVersionStride   = 4 + NameVersionNameSize

	// cl_image_format: two cl_uint fields.
	ImageFormatStride = 8
)

// PtrSize is the host pointer width; size_t and intptr_t values in an
// info buffer are this wide.
const PtrSize = int(unsafe.Sizeof(uintptr(0)))

var kindNames = [...]string{
	KindInt:            "cl_int",
	KindUint:           "cl_uint",
	KindLong:           "cl_long",
	KindUlong:          "cl_ulong",
	KindSize:           "size_t",
	KindPtr:            "intptr_t",
	KindStr:            "string",
	KindVecInt:         "cl_int[]",
	KindVecUint:        "cl_uint[]",
	KindVecLong:        "cl_long[]",
	KindVecUlong:       "cl_ulong[]",
	KindVecSize:        "size_t[]",
	KindVecPtr:         "intptr_t[]",
	KindVecVecUchar:    "uchar[][]",
	KindUuid:           "cl_uuid",
	KindLuid:           "cl_luid",
	KindVecNameVersion: "cl_name_version[]",
	KindVecImageFormat: "cl_image_format[]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether k is a single fixed-width numeric value.
func (k Kind) IsScalar() bool {
	return k <= KindPtr
}

// IsVec reports whether k is a variable-length sequence of fixed-width
// elements (including the record vectors).
func (k Kind) IsVec() bool {
	switch k {
	case KindVecInt, KindVecUint, KindVecLong, KindVecUlong,
		KindVecSize, KindVecPtr, KindVecNameVersion, KindVecImageFormat:
		return true
	}
	return false
}

// Width returns the byte width of k's scalar value or vector element.
// It is 0 for kinds without a fixed stride (string, blob vector).
func (k Kind) Width() int {
	switch k {
	case KindInt, KindUint, KindVecInt, KindVecUint:
		return 4
	case KindLong, KindUlong, KindVecLong, KindVecUlong:
		return 8
	case KindSize, KindPtr, KindVecSize, KindVecPtr:
		return PtrSize
	case KindVecNameVersion:
		return NameVersionStride
	case KindVecImageFormat:
		return ImageFormatStride
	}
	return 0
}

// FixedSize returns the exact byte length k requires, or 0 when the
// length is not fixed. Only the identifier kinds have a fixed total size.
func (k Kind) FixedSize() int {
	switch k {
	case KindUuid:
		return UuidSize
	case KindLuid:
		return LuidSize
	}
	return 0
}
