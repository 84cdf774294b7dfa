package infotype

import (
	"strings"
	"testing"
)

func TestString_IsTotalAndStable(t *testing.T) {
	values := []InfoType{
		Int(-3),
		Uint(3),
		Long(-1 << 40),
		Ulong(1 << 63),
		Size(0),
		Ptr(0xFF00),
		Str(""),
		Str("OpenCL 3.0"),
		VecInt(nil),
		VecUint([]uint32{1}),
		VecLong([]int64{}),
		VecUlong([]uint64{1, 2}),
		VecSize([]uint64{64}),
		VecPtr([]uintptr{0x10}),
		Blobs(nil),
		Blobs([][]byte{{1, 2, 3}, {}}),
		Uuid([16]byte{}),
		Luid([8]byte{0xAB}),
		VecNameVersion([]NameVersion{{Version: Version(3 << 22), Name: "cl_khr_fp64"}}),
		VecImageFormat([]ImageFormat{{ChannelOrder: 1, ChannelDataType: 2}}),
		{}, // invalid zero value still renders
	}
	for _, v := range values {
		first := v.String()
		second := v.String()
		if first != second {
			t.Errorf("%s: rendering not stable: %q then %q", v.Kind(), first, second)
		}
	}
}

func TestString_Scalars(t *testing.T) {
	tests := []struct {
		v    InfoType
		want string
	}{
		{Int(-3), "-3"},
		{Uint(4294967295), "4294967295"},
		{Ulong(18446744073709551615), "18446744073709551615"},
		{Size(1024), "1024"},
		{Ptr(0xBEEF), "0xbeef"},
		{Str("FULL_PROFILE"), "FULL_PROFILE"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestString_Uuid(t *testing.T) {
	v := Uuid([16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	if got := v.String(); got != "00010203-0405-0607-0809-0a0b0c0d0e0f" {
		t.Errorf("uuid rendering = %q", got)
	}
}

func TestString_Luid(t *testing.T) {
	v := Luid([8]byte{0xDE, 0xAD, 0, 0, 0, 0, 0, 1})
	if got := v.String(); got != "dead000000000001" {
		t.Errorf("luid rendering = %q", got)
	}
}

func TestString_Blobs(t *testing.T) {
	v := Blobs([][]byte{make([]byte, 1024), make([]byte, 16)})
	got := v.String()
	if !strings.Contains(got, "1024B") || !strings.Contains(got, "16B") {
		t.Errorf("blob rendering = %q", got)
	}
}

func TestString_NameVersion(t *testing.T) {
	nv := NameVersion{Version: Version(3<<22 | 2<<12 | 1), Name: "cl_khr_fp16"}
	if got := nv.String(); got != "cl_khr_fp16 3.2.1" {
		t.Errorf("NameVersion.String() = %q", got)
	}
}

func TestVersion_Fields(t *testing.T) {
	v := Version(3<<22 | 0<<12 | 0)
	if v.Major() != 3 || v.Minor() != 0 || v.Patch() != 0 {
		t.Errorf("version fields = %d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	if v.String() != "3.0.0" {
		t.Errorf("Version.String() = %q", v.String())
	}

	max := Version(1023<<22 | 1023<<12 | 4095)
	if max.Major() != 1023 || max.Minor() != 1023 || max.Patch() != 4095 {
		t.Errorf("max version fields = %d.%d.%d", max.Major(), max.Minor(), max.Patch())
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b InfoType
		want bool
	}{
		{"same int", Int(5), Int(5), true},
		{"different int", Int(5), Int(6), false},
		{"same tag different kind", Uint(5), Int(5), false},
		{"ulong vs size same bits", Ulong(5), Size(5), false},
		{"same string", Str("a"), Str("a"), true},
		{"same vec", VecUlong([]uint64{1, 2}), VecUlong([]uint64{1, 2}), true},
		{"different vec", VecUlong([]uint64{1, 2}), VecUlong([]uint64{1, 3}), false},
		{"empty vs nil vec", VecUlong([]uint64{}), VecUlong(nil), true},
		{"same uuid", Uuid([16]byte{1}), Uuid([16]byte{1}), true},
		{"different uuid", Uuid([16]byte{1}), Uuid([16]byte{2}), false},
		{"same blobs", Blobs([][]byte{{1}, {2}}), Blobs([][]byte{{1}, {2}}), true},
		{"different blobs", Blobs([][]byte{{1}}), Blobs([][]byte{{2}}), false},
		{"same name version",
			VecNameVersion([]NameVersion{{Version: 1, Name: "x"}}),
			VecNameVersion([]NameVersion{{Version: 1, Name: "x"}}), true},
		{"zero values", InfoType{}, InfoType{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructors_CopySlices(t *testing.T) {
	src := []uint64{1, 2, 3}
	v := VecUlong(src)
	src[0] = 99
	got, _ := v.AsVecUlong()
	if got[0] != 1 {
		t.Error("constructor aliases caller slice")
	}
}

func TestKind(t *testing.T) {
	if Int(1).Kind() != KindInt {
		t.Error("Int kind wrong")
	}
	if Str("").Kind() != KindStr {
		t.Error("Str kind wrong")
	}
	if Uuid([16]byte{}).Kind() != KindUuid {
		t.Error("Uuid kind wrong")
	}
}
