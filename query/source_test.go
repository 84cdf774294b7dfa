package query

import (
	"encoding/binary"
	stderrors "errors"
	"testing"

	"github.com/oclkit/cl-runtime/errors"
	"github.com/oclkit/cl-runtime/infotype"
)

// fakeSource serves canned values keyed by param and records the call
// sequence, standing in for a native clGet*Info entry point.
type fakeSource struct {
	values map[uint32][]byte
	calls  []string
}

func (f *fakeSource) InfoSize(param uint32) (int, error) {
	f.calls = append(f.calls, "size")
	v, ok := f.values[param]
	if !ok {
		return 0, errors.NativeCall("clGetDeviceInfo", errors.StatusInvalidValue)
	}
	return len(v), nil
}

func (f *fakeSource) ReadInfo(param uint32, buf []byte) (int, error) {
	f.calls = append(f.calls, "fill")
	v, ok := f.values[param]
	if !ok {
		return 0, errors.NativeCall("clGetDeviceInfo", errors.StatusInvalidValue)
	}
	return copy(buf, v), nil
}

func TestReadRaw_SizeThenFill(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{
		DeviceName: append([]byte("gfx1030"), 0),
	}}

	raw, err := ReadRaw(src, DeviceName)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if len(raw) != 8 {
		t.Errorf("raw length = %d", len(raw))
	}
	if len(src.calls) != 2 || src.calls[0] != "size" || src.calls[1] != "fill" {
		t.Errorf("call sequence = %v", src.calls)
	}
}

func TestReadRaw_ZeroSizeSkipsFill(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{
		DeviceExtensions: {},
	}}

	raw, err := ReadRaw(src, DeviceExtensions)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if raw == nil || len(raw) != 0 {
		t.Errorf("expected empty non-nil buffer, got %v", raw)
	}
	if len(src.calls) != 1 {
		t.Errorf("zero-size value should not trigger a fill call: %v", src.calls)
	}
}

func TestReadRaw_PropagatesNativeError(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{}}
	_, err := ReadRaw(src, DeviceName)
	if err == nil {
		t.Fatal("expected native error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindNativeCall {
		t.Fatalf("expected native_call, got %v", err)
	}
}

// shortFillSource probes one size but writes fewer bytes.
type shortFillSource struct{ fakeSource }

func (s *shortFillSource) ReadInfo(param uint32, buf []byte) (int, error) {
	return len(buf) - 1, nil
}

func TestReadRaw_ShortFillFails(t *testing.T) {
	src := &shortFillSource{fakeSource{values: map[uint32][]byte{
		DeviceName: []byte("abcd"),
	}}}
	_, err := ReadRaw(src, DeviceName)
	if err == nil {
		t.Fatal("short fill should fail")
	}
}

func TestGetInfo_DecodesPerTable(t *testing.T) {
	units := binary.NativeEndian.AppendUint32(nil, 36)
	src := &fakeSource{values: map[uint32][]byte{
		DeviceMaxComputeUnits: units,
		DeviceVendor:          append([]byte("Advanced Micro Devices, Inc."), 0, 0, 0),
	}}

	v, err := GetInfo(src, DeviceMaxComputeUnits)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	n, err := v.AsUint()
	if err != nil || n != 36 {
		t.Errorf("AsUint = %d, %v", n, err)
	}

	v, err = GetInfo(src, DeviceVendor)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	s, err := v.AsString()
	if err != nil || s != "Advanced Micro Devices, Inc." {
		t.Errorf("AsString = %q, %v", s, err)
	}
}

func TestGetInfo_UnknownParam(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{}}
	_, err := GetInfo(src, 0xFFFF)
	if err == nil {
		t.Fatal("unknown param should fail")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
}

func TestGetInfoShaped_OverridesTable(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{
		0x4242: append([]byte("vendor specific"), 0),
	}}
	v, err := GetInfoShaped(src, 0x4242, infotype.KindStr)
	if err != nil {
		t.Fatalf("GetInfoShaped failed: %v", err)
	}
	if s, _ := v.AsString(); s != "vendor specific" {
		t.Errorf("AsString = %q", s)
	}
}

func TestGetInfoShaped_DecodeFailureSurfaces(t *testing.T) {
	src := &fakeSource{values: map[uint32][]byte{
		DeviceUUID: make([]byte, 15),
	}}
	_, err := GetInfoShaped(src, DeviceUUID, infotype.KindUuid)
	if err == nil {
		t.Fatal("truncated uuid should fail decode")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindSizeMismatch {
		t.Fatalf("expected size_mismatch, got %v", err)
	}
}

func TestFunc_ImplementsInfoSource(t *testing.T) {
	payload := append([]byte("OpenCL 3.0"), 0, 0, 0, 0, 0)
	f := Func(func(param uint32, buf []byte) (int, error) {
		if buf == nil {
			return len(payload), nil
		}
		return copy(buf, payload), nil
	})

	v, err := GetInfo(f, PlatformVersion)
	if err != nil {
		t.Fatalf("GetInfo over Func failed: %v", err)
	}
	s, err := v.AsString()
	if err != nil || s != "OpenCL 3.0" {
		t.Errorf("AsString = %q, %v", s, err)
	}
}
