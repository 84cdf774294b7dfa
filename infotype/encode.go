package infotype

import (
	"encoding/binary"

	"github.com/oclkit/cl-runtime/infotype/internal/shape"
)

// Bytes re-encodes the payload to the native byte layout Decode consumes.
// It is the inverse of Decode for every shape except strings, whose
// stripped NUL padding is not reproduced (the text round-trips, the
// padding does not), and blob vectors, which concatenate without their
// length table. A nil slice is returned only for the invalid zero value.
func (v InfoType) Bytes() []byte {
	switch v.kind {
	case shape.KindInt:
		n, ok := v.payload.(int32)
		if !ok {
			return nil
		}
		return binary.NativeEndian.AppendUint32(nil, uint32(n))
	case shape.KindUint:
		n, ok := v.payload.(uint32)
		if !ok {
			return nil
		}
		return binary.NativeEndian.AppendUint32(nil, n)
	case shape.KindLong:
		n, ok := v.payload.(int64)
		if !ok {
			return nil
		}
		return binary.NativeEndian.AppendUint64(nil, uint64(n))
	case shape.KindUlong, shape.KindSize:
		n, ok := v.payload.(uint64)
		if !ok {
			return nil
		}
		if v.kind == shape.KindSize {
			return appendSize(nil, n)
		}
		return binary.NativeEndian.AppendUint64(nil, n)
	case shape.KindPtr:
		p, ok := v.payload.(uintptr)
		if !ok {
			return nil
		}
		return appendSize(nil, uint64(p))
	case shape.KindStr:
		s, ok := v.payload.(string)
		if !ok {
			return nil
		}
		return []byte(s)
	case shape.KindVecInt:
		s, ok := v.payload.([]int32)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*4)
		for _, n := range s {
			out = binary.NativeEndian.AppendUint32(out, uint32(n))
		}
		return out
	case shape.KindVecUint:
		s, ok := v.payload.([]uint32)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*4)
		for _, n := range s {
			out = binary.NativeEndian.AppendUint32(out, n)
		}
		return out
	case shape.KindVecLong:
		s, ok := v.payload.([]int64)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*8)
		for _, n := range s {
			out = binary.NativeEndian.AppendUint64(out, uint64(n))
		}
		return out
	case shape.KindVecUlong:
		s, ok := v.payload.([]uint64)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*8)
		for _, n := range s {
			out = binary.NativeEndian.AppendUint64(out, n)
		}
		return out
	case shape.KindVecSize:
		s, ok := v.payload.([]uint64)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*shape.PtrSize)
		for _, n := range s {
			out = appendSize(out, n)
		}
		return out
	case shape.KindVecPtr:
		s, ok := v.payload.([]uintptr)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*shape.PtrSize)
		for _, p := range s {
			out = appendSize(out, uint64(p))
		}
		return out
	case shape.KindVecVecUchar:
		s, ok := v.payload.([][]byte)
		if !ok {
			return nil
		}
		out := []byte{}
		for _, b := range s {
			out = append(out, b...)
		}
		return out
	case shape.KindUuid:
		b, ok := v.payload.([16]byte)
		if !ok {
			return nil
		}
		return b[:]
	case shape.KindLuid:
		b, ok := v.payload.([8]byte)
		if !ok {
			return nil
		}
		return b[:]
	case shape.KindVecNameVersion:
		s, ok := v.payload.([]NameVersion)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*shape.NameVersionStride)
		for _, nv := range s {
			out = binary.NativeEndian.AppendUint32(out, uint32(nv.Version))
			var name [shape.NameVersionNameSize]byte
			copy(name[:], nv.Name)
			out = append(out, name[:]...)
		}
		return out
	case shape.KindVecImageFormat:
		s, ok := v.payload.([]ImageFormat)
		if !ok {
			return nil
		}
		out := make([]byte, 0, len(s)*shape.ImageFormatStride)
		for _, f := range s {
			out = binary.NativeEndian.AppendUint32(out, f.ChannelOrder)
			out = binary.NativeEndian.AppendUint32(out, f.ChannelDataType)
		}
		return out
	}
	return nil
}

func appendSize(out []byte, n uint64) []byte {
	if shape.PtrSize == 4 {
		return binary.NativeEndian.AppendUint32(out, uint32(n))
	}
	return binary.NativeEndian.AppendUint64(out, n)
}
