package shape

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInt, "cl_int"},
		{KindUlong, "cl_ulong"},
		{KindStr, "string"},
		{KindVecSize, "size_t[]"},
		{KindVecVecUchar, "uchar[][]"},
		{KindUuid, "cl_uuid"},
		{KindLuid, "cl_luid"},
		{KindVecNameVersion, "cl_name_version[]"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_Width(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInt, 4},
		{KindUint, 4},
		{KindLong, 8},
		{KindUlong, 8},
		{KindSize, PtrSize},
		{KindPtr, PtrSize},
		{KindVecInt, 4},
		{KindVecUlong, 8},
		{KindVecSize, PtrSize},
		{KindVecNameVersion, 68},
		{KindVecImageFormat, 8},
		{KindStr, 0},
		{KindVecVecUchar, 0},
		{KindUuid, 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Width(); got != tt.want {
			t.Errorf("%s.Width() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKind_FixedSize(t *testing.T) {
	if got := KindUuid.FixedSize(); got != 16 {
		t.Errorf("KindUuid.FixedSize() = %d", got)
	}
	if got := KindLuid.FixedSize(); got != 8 {
		t.Errorf("KindLuid.FixedSize() = %d", got)
	}
	if got := KindStr.FixedSize(); got != 0 {
		t.Errorf("KindStr.FixedSize() = %d", got)
	}
}

func TestKind_Predicates(t *testing.T) {
	for _, k := range []Kind{KindInt, KindUint, KindLong, KindUlong, KindSize, KindPtr} {
		if !k.IsScalar() {
			t.Errorf("%s should be scalar", k)
		}
		if k.IsVec() {
			t.Errorf("%s should not be a vector", k)
		}
	}
	for _, k := range []Kind{KindVecInt, KindVecUint, KindVecLong, KindVecUlong, KindVecSize, KindVecPtr, KindVecNameVersion, KindVecImageFormat} {
		if !k.IsVec() {
			t.Errorf("%s should be a vector", k)
		}
		if k.IsScalar() {
			t.Errorf("%s should not be scalar", k)
		}
	}
	for _, k := range []Kind{KindStr, KindVecVecUchar, KindUuid, KindLuid} {
		if k.IsScalar() || k.IsVec() {
			t.Errorf("%s should be neither scalar nor vector", k)
		}
	}
}
