package infotype

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/oclkit/cl-runtime/infotype/internal/shape"
)

// InfoType is the decoded result of an OpenCL info query: exactly one of
// the shapes in the Kind enumeration, with its payload. Values are
// immutable plain data; they own their payload and hold no reference to
// the native object or buffer they were decoded from.
//
// The zero value is invalid; InfoType instances come from Decode,
// DecodeBlobs, or the typed constructors.
type InfoType struct {
	kind    shape.Kind
	payload any
}

// Version is a packed cl_version value: 10 bits major, 10 bits minor,
// 12 bits patch.
type Version uint32

func (v Version) Major() uint32 { return uint32(v >> 22) }
func (v Version) Minor() uint32 { return uint32(v>>12) & 0x3FF }
func (v Version) Patch() uint32 { return uint32(v) & 0xFFF }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// NameVersion is a decoded cl_name_version record: a versioned name such
// as an extension or an OpenCL C version. The name is stored with its NUL
// padding already stripped.
type NameVersion struct {
	Version Version
	Name    string
}

func (nv NameVersion) String() string {
	return nv.Name + " " + nv.Version.String()
}

// ImageFormat is a decoded cl_image_format record.
type ImageFormat struct {
	ChannelOrder    uint32
	ChannelDataType uint32
}

// Typed constructors. Each produces a value whose tag and payload shape
// are consistent; slice payloads are copied so the value cannot alias
// caller memory.

func Int(v int32) InfoType { return InfoType{shape.KindInt, v} }

func Uint(v uint32) InfoType { return InfoType{shape.KindUint, v} }

func Long(v int64) InfoType { return InfoType{shape.KindLong, v} }

func Ulong(v uint64) InfoType { return InfoType{shape.KindUlong, v} }

func Size(v uint64) InfoType { return InfoType{shape.KindSize, v} }

func Ptr(v uintptr) InfoType { return InfoType{shape.KindPtr, v} }

func Str(s string) InfoType { return InfoType{shape.KindStr, s} }

func Uuid(b [16]byte) InfoType { return InfoType{shape.KindUuid, b} }

func Luid(b [8]byte) InfoType { return InfoType{shape.KindLuid, b} }

func VecInt(v []int32) InfoType { return InfoType{shape.KindVecInt, slices.Clone(v)} }

func VecUint(v []uint32) InfoType { return InfoType{shape.KindVecUint, slices.Clone(v)} }

func VecLong(v []int64) InfoType { return InfoType{shape.KindVecLong, slices.Clone(v)} }

func VecUlong(v []uint64) InfoType { return InfoType{shape.KindVecUlong, slices.Clone(v)} }

func VecSize(v []uint64) InfoType { return InfoType{shape.KindVecSize, slices.Clone(v)} }

func VecPtr(v []uintptr) InfoType { return InfoType{shape.KindVecPtr, slices.Clone(v)} }

func VecNameVersion(v []NameVersion) InfoType {
	return InfoType{shape.KindVecNameVersion, slices.Clone(v)}
}

func VecImageFormat(v []ImageFormat) InfoType {
	return InfoType{shape.KindVecImageFormat, slices.Clone(v)}
}

// Blobs constructs a VecVecUchar value from per-device byte blobs.
func Blobs(blobs [][]byte) InfoType {
	cp := make([][]byte, len(blobs))
	for i, b := range blobs {
		cp[i] = slices.Clone(b)
	}
	return InfoType{shape.KindVecVecUchar, cp}
}

// Kind returns the value's shape tag.
func (v InfoType) Kind() Kind {
	return v.kind
}

// Equal reports whether v and o have the same tag and payload.
func (v InfoType) Equal(o InfoType) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case shape.KindVecInt:
		return slices.Equal(v.payload.([]int32), o.payload.([]int32))
	case shape.KindVecUint:
		return slices.Equal(v.payload.([]uint32), o.payload.([]uint32))
	case shape.KindVecLong:
		return slices.Equal(v.payload.([]int64), o.payload.([]int64))
	case shape.KindVecUlong, shape.KindVecSize:
		return slices.Equal(v.payload.([]uint64), o.payload.([]uint64))
	case shape.KindVecPtr:
		return slices.Equal(v.payload.([]uintptr), o.payload.([]uintptr))
	case shape.KindVecNameVersion:
		return slices.Equal(v.payload.([]NameVersion), o.payload.([]NameVersion))
	case shape.KindVecImageFormat:
		return slices.Equal(v.payload.([]ImageFormat), o.payload.([]ImageFormat))
	case shape.KindVecVecUchar:
		a, b := v.payload.([][]byte), o.payload.([][]byte)
		return slices.EqualFunc(a, b, slices.Equal)
	default:
		return v.payload == o.payload
	}
}

// String renders the value for diagnostics. It is total: every decoded
// value renders, including empty vectors and empty strings, and the
// output is stable across calls.
func (v InfoType) String() string {
	switch v.kind {
	case shape.KindInt:
		n, ok := v.payload.(int32)
		if !ok {
			break
		}
		return strconv.FormatInt(int64(n), 10)
	case shape.KindUint:
		n, ok := v.payload.(uint32)
		if !ok {
			break
		}
		return strconv.FormatUint(uint64(n), 10)
	case shape.KindLong:
		n, ok := v.payload.(int64)
		if !ok {
			break
		}
		return strconv.FormatInt(n, 10)
	case shape.KindUlong, shape.KindSize:
		n, ok := v.payload.(uint64)
		if !ok {
			break
		}
		return strconv.FormatUint(n, 10)
	case shape.KindPtr:
		p, ok := v.payload.(uintptr)
		if !ok {
			break
		}
		return "0x" + strconv.FormatUint(uint64(p), 16)
	case shape.KindStr:
		s, ok := v.payload.(string)
		if !ok {
			break
		}
		return s
	case shape.KindUuid:
		b, ok := v.payload.([16]byte)
		if !ok {
			break
		}
		return uuid.UUID(b).String()
	case shape.KindLuid:
		b, ok := v.payload.([8]byte)
		if !ok {
			break
		}
		return hex.EncodeToString(b[:])
	case shape.KindVecPtr:
		ptrs, ok := v.payload.([]uintptr)
		if !ok {
			break
		}
		parts := make([]string, len(ptrs))
		for i, p := range ptrs {
			parts[i] = "0x" + strconv.FormatUint(uint64(p), 16)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case shape.KindVecVecUchar:
		blobs, ok := v.payload.([][]byte)
		if !ok {
			break
		}
		parts := make([]string, len(blobs))
		for i, b := range blobs {
			parts[i] = strconv.Itoa(len(b)) + "B"
		}
		return "[" + strings.Join(parts, " ") + "]"
	case shape.KindVecNameVersion:
		nvs, ok := v.payload.([]NameVersion)
		if !ok {
			break
		}
		parts := make([]string, len(nvs))
		for i, nv := range nvs {
			parts[i] = nv.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case shape.KindVecInt, shape.KindVecUint, shape.KindVecLong,
		shape.KindVecUlong, shape.KindVecSize, shape.KindVecImageFormat:
		if v.payload == nil {
			break
		}
		return fmt.Sprintf("%v", v.payload)
	}
	return "<invalid>"
}
