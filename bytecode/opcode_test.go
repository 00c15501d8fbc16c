package bytecode

import (
	"strings"
	"testing"

	"github.com/tetratelabs/wazero/api"
)

func TestOpcode_Table(t *testing.T) {
	seen := make(map[string]Opcode, NumOpcodes())
	for op := Opcode(1); int(op) < NumOpcodes(); op++ {
		info := op.Info()
		if info.Name == "" {
			t.Errorf("opcode %d has no name", op)
		}
		if prev, ok := seen[info.Name]; ok {
			t.Errorf("%s: name shared with opcode %d", info.Name, prev)
		}
		seen[info.Name] = op
		if !op.Valid() {
			t.Errorf("%s: not valid", op)
		}
		if op.String() != info.Name {
			t.Errorf("%s: String() = %q", info.Name, op.String())
		}
		if info.Trailer != TrailerNone && op.Words() != 2 {
			t.Errorf("%s: Words() = %d, want 2", op, op.Words())
		}
		if info.Trailer == TrailerNone && op.Words() != 1 {
			t.Errorf("%s: Words() = %d, want 1", op, op.Words())
		}
		if info.NonZeroImm && info.Type != api.ValueTypeI32 && info.Type != api.ValueTypeI64 {
			t.Errorf("%s: NonZeroImm on non-integer operator", op)
		}
	}
}

func TestOpcode_Invalid(t *testing.T) {
	if OpInvalid.Valid() {
		t.Error("OpInvalid must not be valid")
	}
	bad := Opcode(NumOpcodes())
	if bad.Valid() {
		t.Error("out of range opcode must not be valid")
	}
	if got := bad.String(); !strings.HasPrefix(got, "opcode(") {
		t.Errorf("String() = %q", got)
	}
	if bad.Shape() != ShapeNone {
		t.Errorf("Shape() = %v", bad.Shape())
	}
}

func TestOpcode_IsData(t *testing.T) {
	for op := Opcode(0); int(op) < NumOpcodes(); op++ {
		want := op == OpConst32 || op == OpConstRef || op == OpRegister
		if op.IsData() != want {
			t.Errorf("%s: IsData() = %v, want %v", op, op.IsData(), want)
		}
	}
}

func TestOpcode_Trailers(t *testing.T) {
	tests := []struct {
		op      Opcode
		trailer Trailer
	}{
		{OpI32AddImm, TrailerConst32},
		{OpI32SubImmRev, TrailerConst32},
		{OpF32Load, TrailerConst32},
		{OpI64Store, TrailerRegister},
		{OpReturnImm, TrailerConstRef},
		{OpCopyImm, TrailerConstRef},
		{OpI32AddImm16, TrailerNone},
		{OpI32LoadAt, TrailerNone},
		{OpBranch, TrailerNone},
	}
	for _, tt := range tests {
		if got := tt.op.Info().Trailer; got != tt.trailer {
			t.Errorf("%s: Trailer = %v, want %v", tt.op, got, tt.trailer)
		}
	}
	if TrailerNone.Opcode() != OpInvalid || TrailerRegister.Opcode() != OpRegister {
		t.Error("Trailer.Opcode mismatch")
	}
}

func TestOpcode_NonZeroImm(t *testing.T) {
	tests := []struct {
		op   Opcode
		want bool
	}{
		{OpI32DivSImm16, true},
		{OpI32DivUImm, true},
		{OpI64RemUImm16, true},
		{OpI64RemSImm, true},
		{OpI32DivSImm16Rev, false},
		{OpI32DivS, false},
		{OpF32DivImm, false},
		{OpI32AddImm16, false},
	}
	for _, tt := range tests {
		if got := tt.op.Info().NonZeroImm; got != tt.want {
			t.Errorf("%s: NonZeroImm = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestShape_String(t *testing.T) {
	if ShapeBinaryImm16.String() != "binary_imm16" {
		t.Errorf("String() = %q", ShapeBinaryImm16.String())
	}
	if got := Shape(200).String(); got != "shape(200)" {
		t.Errorf("String() = %q", got)
	}
}
