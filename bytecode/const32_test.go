package bytecode

import (
	"math"
	"testing"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
)

func TestAnyConst32_Layout(t *testing.T) {
	var c AnyConst32
	if got := unsafe.Sizeof(c); got != 4 {
		t.Errorf("Sizeof(AnyConst32) = %d, want 4", got)
	}
	if got := unsafe.Alignof(c); got != 2 {
		t.Errorf("Alignof(AnyConst32) = %d, want 2", got)
	}
}

func TestAnyConst32_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0xFFFF, 0x10000, 0x7FFFFFFF, 0x80000000, 0xDEADBEEF, math.MaxUint32}
	for v := uint32(0); v < 1<<20; v += 4099 {
		values = append(values, v, ^v)
	}
	for _, v := range values {
		c := AnyConst32FromU32(v)
		if c.U32() != v {
			t.Fatalf("U32() = %#x, want %#x", c.U32(), v)
		}
		if c.I32() != int32(v) {
			t.Fatalf("I32() = %d, want %d", c.I32(), int32(v))
		}
		if AnyConst32FromI32(int32(v)) != c {
			t.Fatalf("FromI32(%d) differs from FromU32", int32(v))
		}
	}
}

func TestAnyConst32_SignExtension(t *testing.T) {
	tests := []struct {
		name string
		c    AnyConst32
		want int32
	}{
		{"i16 -1", AnyConst32FromI16(-1), -1},
		{"i16 min", AnyConst32FromI16(math.MinInt16), math.MinInt16},
		{"i8 -128", AnyConst32FromI8(-128), -128},
		{"i8 127", AnyConst32FromI8(127), 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.I32(); got != tt.want {
				t.Errorf("I32() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnyConst32_Bool(t *testing.T) {
	if !AnyConst32FromBool(true).Bool() || AnyConst32FromBool(true).U32() != 1 {
		t.Error("true must encode as 1")
	}
	if AnyConst32FromBool(false).Bool() || AnyConst32FromBool(false).U32() != 0 {
		t.Error("false must encode as 0")
	}
}

func TestAnyConst32_F32BitExact(t *testing.T) {
	bits := []uint32{
		0x00000000, // +0
		0x80000000, // -0
		0x7F800000, // +inf
		0xFF800000, // -inf
		0x7FC00000, // canonical NaN
		0x7FC00001, // quiet NaN with payload
		0xFFC12345, // negative quiet NaN with payload
		0x00000001, // smallest subnormal
		0x3F800000, // 1.0
	}
	for _, b := range bits {
		c := AnyConst32FromF32(math.Float32frombits(b))
		if got := math.Float32bits(c.F32()); got != b {
			t.Errorf("bits %#x round-tripped to %#x", b, got)
		}
		if got := c.Cell(api.ValueTypeF32); got != uint64(b) {
			t.Errorf("Cell(f32) of %#x = %#x", b, got)
		}
	}
}

func TestAnyConst32_FromI64(t *testing.T) {
	tests := []struct {
		v  int64
		ok bool
	}{
		{0, true},
		{-1, true},
		{math.MaxInt32, true},
		{math.MinInt32, true},
		{math.MaxInt32 + 1, false},
		{math.MinInt32 - 1, false},
		{math.MaxInt64, false},
	}
	for _, tt := range tests {
		c, ok := AnyConst32FromI64(tt.v)
		if ok != tt.ok {
			t.Errorf("AnyConst32FromI64(%d) ok = %v, want %v", tt.v, ok, tt.ok)
			continue
		}
		if ok && c.I64() != tt.v {
			t.Errorf("I64() = %d, want %d", c.I64(), tt.v)
		}
	}
}

func TestAnyConst32_Cell(t *testing.T) {
	c := AnyConst32FromI32(-1)
	if got := c.Cell(api.ValueTypeI32); got != api.EncodeI32(-1) {
		t.Errorf("Cell(i32) = %#x", got)
	}
	if got := c.Cell(api.ValueTypeI64); got != math.MaxUint64 {
		t.Errorf("Cell(i64) = %#x, want sign-extended", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Cell(f64) should panic")
		}
	}()
	c.Cell(api.ValueTypeF64)
}

func TestConst32_Typed(t *testing.T) {
	if got := Const32Of[int32](-100_000).Value(); got != -100_000 {
		t.Errorf("int32 Value() = %d", got)
	}
	if got := Const32Of[uint32](math.MaxUint32).Value(); got != math.MaxUint32 {
		t.Errorf("uint32 Value() = %d", got)
	}
	if got := Const32Of[float32](1.5).Value(); got != 1.5 {
		t.Errorf("float32 Value() = %v", got)
	}

	c, ok := Const32FromI64(-7)
	if !ok || c.Value() != -7 {
		t.Errorf("Const32FromI64(-7) = %d, %v", c.Value(), ok)
	}
	if _, ok := Const32FromI64(1 << 33); ok {
		t.Error("Const32FromI64(1<<33) should not fit")
	}

	u := Const32As[uint32](Const32Of[int32](-1).Any())
	if u.Value() != math.MaxUint32 {
		t.Errorf("retagged Value() = %d", u.Value())
	}
}
