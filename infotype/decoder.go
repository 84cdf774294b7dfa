package infotype

import (
	"encoding/binary"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/infotype/internal/shape"
)

// Decode reinterprets a raw info buffer as the declared shape.
//
// Scalar shapes require the buffer to be exactly the scalar's width;
// vector shapes require an exact multiple of the element stride, with a
// zero-length buffer decoding to an empty vector rather than an error.
// The identifier shapes require their exact fixed size. String buffers
// may be any length; the entire run of trailing NUL padding is removed
// before UTF-8 validation, because the native call may over-allocate and
// zero-fill. Interior NULs are left alone.
//
// Byte order is host-native: the buffer was written by the host's own
// OpenCL implementation through the C ABI.
//
// Decode never retains raw; payloads are copied.
func Decode(k Kind, raw []byte) (InfoType, error) {
	switch k {
	case shape.KindInt:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Int(int32(binary.NativeEndian.Uint32(raw))), nil

	case shape.KindUint:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Uint(binary.NativeEndian.Uint32(raw)), nil

	case shape.KindLong:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Long(int64(binary.NativeEndian.Uint64(raw))), nil

	case shape.KindUlong:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Ulong(binary.NativeEndian.Uint64(raw)), nil

	case shape.KindSize:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Size(readSize(raw)), nil

	case shape.KindPtr:
		if err := wantExact(k, raw); err != nil {
			return InfoType{}, err
		}
		return Ptr(uintptr(readSize(raw))), nil

	case shape.KindStr:
		s, err := decodeString(raw)
		if err != nil {
			return InfoType{}, err
		}
		return Str(s), nil

	case shape.KindVecInt:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(binary.NativeEndian.Uint32(raw[i*4:]))
		}
		return InfoType{k, out}, nil

	case shape.KindVecUint:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]uint32, n)
		for i := range out {
			out[i] = binary.NativeEndian.Uint32(raw[i*4:])
		}
		return InfoType{k, out}, nil

	case shape.KindVecLong:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(binary.NativeEndian.Uint64(raw[i*8:]))
		}
		return InfoType{k, out}, nil

	case shape.KindVecUlong:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]uint64, n)
		for i := range out {
			out[i] = binary.NativeEndian.Uint64(raw[i*8:])
		}
		return InfoType{k, out}, nil

	case shape.KindVecSize:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]uint64, n)
		for i := range out {
			out[i] = readSize(raw[i*shape.PtrSize : (i+1)*shape.PtrSize])
		}
		return InfoType{k, out}, nil

	case shape.KindVecPtr:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]uintptr, n)
		for i := range out {
			out[i] = uintptr(readSize(raw[i*shape.PtrSize : (i+1)*shape.PtrSize]))
		}
		return InfoType{k, out}, nil

	case shape.KindUuid:
		if len(raw) != shape.UuidSize {
			return InfoType{}, errors.SizeMismatch(k.String(), "exactly 16 bytes", len(raw))
		}
		return Uuid([16]byte(raw)), nil

	case shape.KindLuid:
		if len(raw) != shape.LuidSize {
			return InfoType{}, errors.SizeMismatch(k.String(), "exactly 8 bytes", len(raw))
		}
		return Luid([8]byte(raw)), nil

	case shape.KindVecNameVersion:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]NameVersion, n)
		for i := range out {
			rec := raw[i*shape.NameVersionStride:]
			name, err := decodeString(rec[4 : 4+shape.NameVersionNameSize])
			if err != nil {
				return InfoType{}, err
			}
			out[i] = NameVersion{
				Version: Version(binary.NativeEndian.Uint32(rec)),
				Name:    name,
			}
		}
		return InfoType{k, out}, nil

	case shape.KindVecImageFormat:
		n, err := vecLen(k, raw)
		if err != nil {
			return InfoType{}, err
		}
		out := make([]ImageFormat, n)
		for i := range out {
			rec := raw[i*shape.ImageFormatStride:]
			out[i] = ImageFormat{
				ChannelOrder:    binary.NativeEndian.Uint32(rec),
				ChannelDataType: binary.NativeEndian.Uint32(rec[4:]),
			}
		}
		return InfoType{k, out}, nil

	case shape.KindVecVecUchar:
		return InfoType{}, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Actual(k.String()).
			Detail("blob vectors need a length table; use DecodeBlobs").
			Build()
	}

	return InfoType{}, errors.New(errors.PhaseDecode, errors.KindUnsupported).
		Detail("unknown shape kind %d", uint8(k)).
		Build()
}

// DecodeBlobs splits raw into one blob per entry of sizes, as returned by
// queries like CL_PROGRAM_BINARIES where a separate call supplies the
// per-device sizes. The table must account for every byte of raw.
func DecodeBlobs(raw []byte, sizes []int) (InfoType, error) {
	total := 0
	for _, s := range sizes {
		if s < 0 {
			return InfoType{}, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Actual(KindVecVecUchar.String()).
				Detail("negative blob size %d", s).
				Build()
		}
		total += s
	}
	if total != len(raw) {
		return InfoType{}, errors.SizeMismatch(KindVecVecUchar.String(),
			"the length table's total of "+strconv.Itoa(total)+" bytes", len(raw))
	}

	blobs := make([][]byte, len(sizes))
	off := 0
	for i, s := range sizes {
		blobs[i] = slices.Clone(raw[off : off+s])
		off += s
	}
	return InfoType{KindVecVecUchar, blobs}, nil
}

// wantExact validates a scalar buffer length against the kind's width.
func wantExact(k Kind, raw []byte) error {
	w := k.Width()
	if len(raw) != w {
		return errors.SizeMismatch(k.String(), "exactly "+strconv.Itoa(w)+" bytes", len(raw))
	}
	return nil
}

// vecLen validates a vector buffer length and returns the element count.
// An empty buffer is a valid empty vector, not an absent value.
func vecLen(k Kind, raw []byte) (int, error) {
	w := k.Width()
	if len(raw)%w != 0 {
		return 0, errors.SizeMismatch(k.String(), "a multiple of "+strconv.Itoa(w)+" bytes", len(raw))
	}
	return len(raw) / w, nil
}

// readSize reads a size_t/intptr_t-wide value, whichever width the host has.
func readSize(raw []byte) uint64 {
	if shape.PtrSize == 4 {
		return uint64(binary.NativeEndian.Uint32(raw))
	}
	return binary.NativeEndian.Uint64(raw)
}

// decodeString strips the whole trailing NUL run, then validates UTF-8.
// Implementations that strip a single terminator leave padding garbage
// behind when the native call over-allocates; the strip loop must consume
// every trailing zero.
func decodeString(raw []byte) (string, error) {
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	trimmed := raw[:end]
	if !utf8.Valid(trimmed) {
		return "", errors.InvalidUTF8(trimmed)
	}
	return string(trimmed), nil
}
