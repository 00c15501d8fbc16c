package bytecode

import (
	"math"
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/errors"
)

func TestAnyConst16_RoundTripI16(t *testing.T) {
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		c := AnyConst16FromI16(int16(v))
		if got := c.I16(); int(got) != v {
			t.Fatalf("I16() = %d, want %d", got, v)
		}
		if got := c.I32(); int(got) != v {
			t.Fatalf("I32() = %d, want %d", got, v)
		}
		if got := c.I64(); int(got) != v {
			t.Fatalf("I64() = %d, want %d", got, v)
		}
	}
}

func TestAnyConst16_RoundTripU16(t *testing.T) {
	for v := 0; v <= math.MaxUint16; v++ {
		c := AnyConst16FromU16(uint16(v))
		if got := c.U16(); int(got) != v {
			t.Fatalf("U16() = %d, want %d", got, v)
		}
		if got := c.U32(); int(got) != v {
			t.Fatalf("U32() = %d, want %d", got, v)
		}
		if got := c.U64(); int(got) != v {
			t.Fatalf("U64() = %d, want %d", got, v)
		}
	}
}

func TestAnyConst16_SharedStorage(t *testing.T) {
	// The same 16 bits decode differently depending on the extension.
	c := AnyConst16FromU16(0xFFFF)
	if c.I32() != -1 {
		t.Errorf("I32() = %d, want -1", c.I32())
	}
	if c.U32() != 0xFFFF {
		t.Errorf("U32() = %d, want 65535", c.U32())
	}
	if c.I64() != -1 || c.U64() != 0xFFFF {
		t.Errorf("I64() = %d U64() = %d", c.I64(), c.U64())
	}
}

func TestAnyConst16_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		fn   func() bool
		ok   bool
	}{
		{"i32 max16", func() bool { _, ok := AnyConst16FromI32(math.MaxInt16); return ok }, true},
		{"i32 min16", func() bool { _, ok := AnyConst16FromI32(math.MinInt16); return ok }, true},
		{"i32 max16+1", func() bool { _, ok := AnyConst16FromI32(math.MaxInt16 + 1); return ok }, false},
		{"i32 min16-1", func() bool { _, ok := AnyConst16FromI32(math.MinInt16 - 1); return ok }, false},
		{"u32 maxu16", func() bool { _, ok := AnyConst16FromU32(math.MaxUint16); return ok }, true},
		{"u32 maxu16+1", func() bool { _, ok := AnyConst16FromU32(math.MaxUint16 + 1); return ok }, false},
		{"i64 max16", func() bool { _, ok := AnyConst16FromI64(math.MaxInt16); return ok }, true},
		{"i64 min16-1", func() bool { _, ok := AnyConst16FromI64(math.MinInt16 - 1); return ok }, false},
		{"i64 max", func() bool { _, ok := AnyConst16FromI64(math.MaxInt64); return ok }, false},
		{"u64 maxu16", func() bool { _, ok := AnyConst16FromU64(math.MaxUint16); return ok }, true},
		{"u64 max", func() bool { _, ok := AnyConst16FromU64(math.MaxUint64); return ok }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.ok {
				t.Errorf("ok = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestTryAnyConst16(t *testing.T) {
	c, err := TryAnyConst16(-5)
	if err != nil {
		t.Fatal(err)
	}
	if c.I16() != -5 {
		t.Errorf("I16() = %d, want -5", c.I16())
	}

	_, err = TryAnyConst16(40000)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	target := &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOverflow}
	if !errors.Is(err, target) {
		t.Errorf("error %v does not match %v", err, target)
	}
}

func TestNewConst16(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		c, ok := NewConst16[int32](100)
		if !ok || c.Value() != 100 {
			t.Errorf("NewConst16[int32](100) = %v, %v", c.Value(), ok)
		}
		if _, ok := NewConst16[int32](40000); ok {
			t.Error("NewConst16[int32](40000) should not fit")
		}
		c, ok = NewConst16[int32](-32768)
		if !ok || c.Value() != -32768 {
			t.Errorf("NewConst16[int32](-32768) = %v, %v", c.Value(), ok)
		}
	})

	t.Run("uint32", func(t *testing.T) {
		c, ok := NewConst16[uint32](40000)
		if !ok || c.Value() != 40000 {
			t.Errorf("NewConst16[uint32](40000) = %v, %v", c.Value(), ok)
		}
		if _, ok := NewConst16[uint32](70000); ok {
			t.Error("NewConst16[uint32](70000) should not fit")
		}
	})

	t.Run("int64", func(t *testing.T) {
		c, ok := NewConst16[int64](-1)
		if !ok || c.Value() != -1 {
			t.Errorf("NewConst16[int64](-1) = %v, %v", c.Value(), ok)
		}
		if _, ok := NewConst16[int64](1 << 40); ok {
			t.Error("NewConst16[int64](1<<40) should not fit")
		}
	})

	t.Run("uint64", func(t *testing.T) {
		c, ok := NewConst16[uint64](math.MaxUint16)
		if !ok || c.Value() != math.MaxUint16 {
			t.Errorf("NewConst16[uint64](MaxUint16) = %v, %v", c.Value(), ok)
		}
	})
}

func TestConst16_RetagChangesExtension(t *testing.T) {
	c, _ := NewConst16[uint32](0xFFFF)
	if got := Const16As[int32](c.Any()).Value(); got != -1 {
		t.Errorf("int32 view = %d, want -1", got)
	}
	if got := Const16As[uint64](c.Any()).Value(); got != 0xFFFF {
		t.Errorf("uint64 view = %d, want 65535", got)
	}
}

func TestConst16_Cell(t *testing.T) {
	i32, _ := NewConst16[int32](-2)
	if got := i32.Cell(); got != api.EncodeI32(-2) {
		t.Errorf("int32 Cell() = %#x", got)
	}
	i64, _ := NewConst16[int64](-2)
	if got := i64.Cell(); got != api.EncodeI64(-2) {
		t.Errorf("int64 Cell() = %#x", got)
	}
	u64, _ := NewConst16[uint64](7)
	if got := u64.Cell(); got != 7 {
		t.Errorf("uint64 Cell() = %#x", got)
	}
}
