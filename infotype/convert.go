package infotype

import (
	"slices"

	"github.com/google/uuid"

	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/infotype/internal/shape"
)

// Checked extractors. Each succeeds only when the stored variant exactly
// matches the requested shape and fails with a type_mismatch error
// otherwise; there is no widening, narrowing, or reinterpretation.
// Slice-valued extractors return copies so the value stays immutable.

func (v InfoType) AsInt() (int32, error) {
	n, ok := v.payload.(int32)
	if !ok || v.kind != shape.KindInt {
		return 0, errors.TypeMismatch(shape.KindInt.String(), v.kind.String())
	}
	return n, nil
}

func (v InfoType) AsUint() (uint32, error) {
	n, ok := v.payload.(uint32)
	if !ok || v.kind != shape.KindUint {
		return 0, errors.TypeMismatch(shape.KindUint.String(), v.kind.String())
	}
	return n, nil
}

func (v InfoType) AsLong() (int64, error) {
	n, ok := v.payload.(int64)
	if !ok || v.kind != shape.KindLong {
		return 0, errors.TypeMismatch(shape.KindLong.String(), v.kind.String())
	}
	return n, nil
}

func (v InfoType) AsUlong() (uint64, error) {
	n, ok := v.payload.(uint64)
	if !ok || v.kind != shape.KindUlong {
		return 0, errors.TypeMismatch(shape.KindUlong.String(), v.kind.String())
	}
	return n, nil
}

func (v InfoType) AsSize() (uint64, error) {
	n, ok := v.payload.(uint64)
	if !ok || v.kind != shape.KindSize {
		return 0, errors.TypeMismatch(shape.KindSize.String(), v.kind.String())
	}
	return n, nil
}

func (v InfoType) AsPtr() (uintptr, error) {
	p, ok := v.payload.(uintptr)
	if !ok || v.kind != shape.KindPtr {
		return 0, errors.TypeMismatch(shape.KindPtr.String(), v.kind.String())
	}
	return p, nil
}

// AsString returns the decoded text. Trailing NUL padding was already
// removed at decode time; the result is returned as-is.
func (v InfoType) AsString() (string, error) {
	s, ok := v.payload.(string)
	if !ok || v.kind != shape.KindStr {
		return "", errors.TypeMismatch(shape.KindStr.String(), v.kind.String())
	}
	return s, nil
}

func (v InfoType) AsVecInt() ([]int32, error) {
	s, ok := v.payload.([]int32)
	if !ok || v.kind != shape.KindVecInt {
		return nil, errors.TypeMismatch(shape.KindVecInt.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecUint() ([]uint32, error) {
	s, ok := v.payload.([]uint32)
	if !ok || v.kind != shape.KindVecUint {
		return nil, errors.TypeMismatch(shape.KindVecUint.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecLong() ([]int64, error) {
	s, ok := v.payload.([]int64)
	if !ok || v.kind != shape.KindVecLong {
		return nil, errors.TypeMismatch(shape.KindVecLong.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecUlong() ([]uint64, error) {
	s, ok := v.payload.([]uint64)
	if !ok || v.kind != shape.KindVecUlong {
		return nil, errors.TypeMismatch(shape.KindVecUlong.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecSize() ([]uint64, error) {
	s, ok := v.payload.([]uint64)
	if !ok || v.kind != shape.KindVecSize {
		return nil, errors.TypeMismatch(shape.KindVecSize.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecPtr() ([]uintptr, error) {
	s, ok := v.payload.([]uintptr)
	if !ok || v.kind != shape.KindVecPtr {
		return nil, errors.TypeMismatch(shape.KindVecPtr.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

// AsBlobs returns the per-device byte blobs of a VecVecUchar value.
func (v InfoType) AsBlobs() ([][]byte, error) {
	s, ok := v.payload.([][]byte)
	if !ok || v.kind != shape.KindVecVecUchar {
		return nil, errors.TypeMismatch(shape.KindVecVecUchar.String(), v.kind.String())
	}
	out := make([][]byte, len(s))
	for i, b := range s {
		out[i] = slices.Clone(b)
	}
	return out, nil
}

// AsUuid returns the 16-byte identifier as a uuid.UUID.
func (v InfoType) AsUuid() (uuid.UUID, error) {
	b, ok := v.payload.([16]byte)
	if !ok || v.kind != shape.KindUuid {
		return uuid.UUID{}, errors.TypeMismatch(shape.KindUuid.String(), v.kind.String())
	}
	return uuid.UUID(b), nil
}

// AsLuid returns the 8-byte locally-unique identifier.
func (v InfoType) AsLuid() ([8]byte, error) {
	b, ok := v.payload.([8]byte)
	if !ok || v.kind != shape.KindLuid {
		return [8]byte{}, errors.TypeMismatch(shape.KindLuid.String(), v.kind.String())
	}
	return b, nil
}

func (v InfoType) AsVecNameVersion() ([]NameVersion, error) {
	s, ok := v.payload.([]NameVersion)
	if !ok || v.kind != shape.KindVecNameVersion {
		return nil, errors.TypeMismatch(shape.KindVecNameVersion.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}

func (v InfoType) AsVecImageFormat() ([]ImageFormat, error) {
	s, ok := v.payload.([]ImageFormat)
	if !ok || v.kind != shape.KindVecImageFormat {
		return nil, errors.TypeMismatch(shape.KindVecImageFormat.String(), v.kind.String())
	}
	return slices.Clone(s), nil
}
