package bytecode

import (
	"testing"

	"github.com/wippyai/wasm-regvm/errors"
)

func TestValidate(t *testing.T) {
	one16, _ := NewConst16[int32](1)
	zero16, _ := NewConst16[int32](0)
	zero64, _ := NewConst16[uint64](0)
	zero32, _ := Const32FromI64(0)
	three, _ := Const32FromI64(3)

	tests := []struct {
		name string
		code []Instruction
		kind errors.Kind
		pos  int
	}{
		{
			name: "empty",
		},
		{
			name: "well formed",
			code: concat(
				[]Instruction{I32AddImm16(0, 1, one16)},
				I64DivSImm(1, 2, three).AppendTo(nil),
				I32Store(0, Const32Of[uint32](0), 1).AppendTo(nil),
				ReturnImm(0).AppendTo(nil),
			),
		},
		{
			name: "invalid opcode",
			code: []Instruction{Return(), {op: Opcode(NumOpcodes() + 3)}},
			kind: errors.KindInvalidOpcode,
			pos:  1,
		},
		{
			name: "stray data word",
			code: []Instruction{DataConst32(AnyConst32FromU32(1)), Return()},
			kind: errors.KindStrayData,
		},
		{
			name: "missing trailer at end",
			code: []Instruction{I32AddImm(0, 0, Const32Of[int32](5)).Head()},
			kind: errors.KindMissingTrailer,
		},
		{
			name: "wrong trailer kind",
			code: []Instruction{I32Store(0, Const32Of[uint32](0), 1).Head(), DataConst32(AnyConst32{})},
			kind: errors.KindMissingTrailer,
		},
		{
			name: "zero imm16 divisor",
			code: []Instruction{Return(), I32DivSImm16(0, 1, zero16)},
			kind: errors.KindInvalidData,
			pos:  1,
		},
		{
			name: "zero imm16 unsigned divisor",
			code: []Instruction{I64RemUImm16(0, 1, zero64)},
			kind: errors.KindInvalidData,
		},
		{
			name: "zero const32 divisor",
			code: I64DivUImm(0, 1, zero32).AppendTo(nil),
			kind: errors.KindInvalidData,
		},
		{
			name: "inline int8 overflow",
			code: []Instruction{storeOffset16(OpI32Store8Offset16Imm, 0, Const16[uint32]{}, 200)},
			kind: errors.KindOverflow,
		},
		{
			name: "branch past end",
			code: []Instruction{Branch(1)},
			kind: errors.KindOutOfBounds,
		},
		{
			name: "branch before start",
			code: []Instruction{Return(), BranchNez(0, -2)},
			kind: errors.KindOutOfBounds,
			pos:  1,
		},
		{
			name: "branch into data word",
			code: concat([]Instruction{Branch(2)}, ReturnImm(1).AppendTo(nil)),
			kind: errors.KindInvalidData,
		},
		{
			name: "unknown trap code",
			code: []Instruction{Trap(TrapInvalidInstruction + 1)},
			kind: errors.KindInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.code)
			if tt.kind == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("Validate() = %v, want %s", err, tt.kind)
			}
			if e.Kind != tt.kind || e.Phase != errors.PhaseValidate {
				t.Errorf("Validate() = %v, want %s", err, tt.kind)
			}
			if e.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", e.Pos, tt.pos)
			}
		})
	}
}

func concat(parts ...[]Instruction) []Instruction {
	var out []Instruction
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
