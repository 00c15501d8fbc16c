package wasm_test

import (
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/wasm"
)

func TestValTypeString(t *testing.T) {
	tests := []struct {
		want string
		v    wasm.ValType
	}{
		{"i32", wasm.ValI32},
		{"i64", wasm.ValI64},
		{"f32", wasm.ValF32},
		{"f64", wasm.ValF64},
		{"v128", wasm.ValV128},
		{"funcref", wasm.ValFuncRef},
		{"externref", wasm.ValExtern},
		{"unknown", wasm.ValType(0xFF)},
	}

	for _, tt := range tests {
		got := tt.v.String()
		if got != tt.want {
			t.Errorf("ValType(0x%02x).String() = %q, want %q", byte(tt.v), got, tt.want)
		}
	}
}

func TestValTypeAPI(t *testing.T) {
	tests := []struct {
		v    wasm.ValType
		want api.ValueType
		ok   bool
	}{
		{wasm.ValI32, api.ValueTypeI32, true},
		{wasm.ValI64, api.ValueTypeI64, true},
		{wasm.ValF32, api.ValueTypeF32, true},
		{wasm.ValF64, api.ValueTypeF64, true},
		{wasm.ValExtern, api.ValueTypeExternref, true},
		{wasm.ValFuncRef, 0, false},
		{wasm.ValV128, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, ok := tt.v.API()
			if ok != tt.ok || got != tt.want {
				t.Errorf("API() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
			if ok && wasm.FromAPI(got) != tt.v {
				t.Errorf("FromAPI(%v) = %v, want %v", got, wasm.FromAPI(got), tt.v)
			}
		})
	}
}

func TestValTypeSize(t *testing.T) {
	tests := []struct {
		v    wasm.ValType
		size int
	}{
		{wasm.ValI32, 4},
		{wasm.ValF32, 4},
		{wasm.ValI64, 8},
		{wasm.ValF64, 8},
		{wasm.ValFuncRef, 0},
	}
	for _, tt := range tests {
		if got := tt.v.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.v, got, tt.size)
		}
		if got := tt.v.IsNumeric(); got != (tt.size > 0) {
			t.Errorf("%v.IsNumeric() = %v", tt.v, got)
		}
	}
}

func TestOpcodeName(t *testing.T) {
	tests := []struct {
		op   byte
		want string
	}{
		{wasm.OpUnreachable, "unreachable"},
		{wasm.OpBrIf, "br_if"},
		{wasm.OpI32Add, "i32.add"},
		{wasm.OpI64RemU, "i64.rem_u"},
		{wasm.OpF32Copysign, "f32.copysign"},
		{wasm.OpI32Load8S, "i32.load8_s"},
		{wasm.OpI64Store32, "i64.store32"},
		{wasm.OpI32TruncF64U, "i32.trunc_f64_u"},
		{wasm.OpF64PromoteF32, "f64.promote_f32"},
		{wasm.OpI64Extend32S, "i64.extend32_s"},
		{0xFF, ""},
	}
	for _, tt := range tests {
		if got := wasm.OpcodeName(tt.op); got != tt.want {
			t.Errorf("OpcodeName(0x%02x) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestNaturalAlign(t *testing.T) {
	for op := wasm.OpI32Load; op <= wasm.OpI64Store32; op++ {
		a, ok := wasm.NaturalAlign(op)
		if !ok {
			t.Fatalf("NaturalAlign(%s) missing", wasm.OpcodeName(op))
		}
		if a > 3 {
			t.Errorf("NaturalAlign(%s) = %d", wasm.OpcodeName(op), a)
		}
		if wasm.IsLoad(op) == wasm.IsStore(op) {
			t.Errorf("%s must be exactly one of load or store", wasm.OpcodeName(op))
		}
	}

	if _, ok := wasm.NaturalAlign(wasm.OpI32Add); ok {
		t.Error("NaturalAlign(i32.add) should not be defined")
	}
	if a, _ := wasm.NaturalAlign(wasm.OpI64Load16S); a != 1 {
		t.Errorf("NaturalAlign(i64.load16_s) = %d, want 1", a)
	}
}
