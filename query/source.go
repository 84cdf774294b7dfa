package query

import (
	"go.uber.org/zap"

	clruntime "github.com/oclkit/cl-runtime"
	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/infotype"
)

// Func adapts a single query function to the clruntime.InfoSource
// interface. Called with a nil buffer it reports the required byte size;
// called with a buffer it fills it and returns the bytes written.
type Func func(param uint32, buf []byte) (int, error)

func (f Func) InfoSize(param uint32) (int, error) {
	return f(param, nil)
}

func (f Func) ReadInfo(param uint32, buf []byte) (int, error) {
	return f(param, buf)
}

// ReadRaw retrieves the raw bytes for param using the two-call protocol:
// probe the required size, then fill a buffer of exactly that size. A
// zero probe result is a valid empty value and skips the second call.
func ReadRaw(src clruntime.InfoSource, param uint32) ([]byte, error) {
	size, err := src.InfoSize(param)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, errors.InvalidData(errors.PhaseQuery,
			"size probe returned negative length")
	}
	Logger().Debug("info size probed",
		zap.Uint32("param", param),
		zap.Int("size", size))
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, err := src.ReadInfo(param, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, errors.New(errors.PhaseQuery, errors.KindInvalidData).
			Detail("fill call wrote %d bytes after a %d byte probe", n, size).
			Build()
	}
	return buf, nil
}

// GetInfo retrieves and decodes the value of param. The shape comes from
// the param table; params this library does not know decode with
// GetInfoShaped instead.
func GetInfo(src clruntime.InfoSource, param uint32) (infotype.InfoType, error) {
	k, ok := ShapeOf(param)
	if !ok {
		return infotype.InfoType{}, errors.New(errors.PhaseQuery, errors.KindUnsupported).
			Detail("no shape registered for param %#04x", param).
			Build()
	}
	return GetInfoShaped(src, param, k)
}

// GetInfoShaped retrieves param and decodes it as the given shape.
func GetInfoShaped(src clruntime.InfoSource, param uint32, k infotype.Kind) (infotype.InfoType, error) {
	raw, err := ReadRaw(src, param)
	if err != nil {
		return infotype.InfoType{}, err
	}
	v, err := infotype.Decode(k, raw)
	if err != nil {
		Logger().Debug("info decode failed",
			zap.Uint32("param", param),
			zap.String("shape", k.String()),
			zap.Int("len", len(raw)),
			zap.Error(err))
		return infotype.InfoType{}, err
	}
	return v, nil
}
