package bytecode

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInstruction_String(t *testing.T) {
	imm100, _ := NewConst16[int32](100)
	immU, _ := NewConst16[uint32](60000)
	off8, _ := NewConst16[uint32](8)
	c64, _ := Const32FromI64(-5)

	tests := []struct {
		instr Instruction
		want  string
	}{
		{I32AddImm16(2, 0, imm100), "i32.add_imm16 r2, r0, 100"},
		{I32SubImm16Rev(2, imm100, 0), "i32.sub_imm16_rev r2, 100, r0"},
		{I32DivUImm16(1, 1, immU), "i32.div_u_imm16 r1, r1, 60000"},
		{I64Mul(3, -1, 4), "i64.mul r3, c0, r4"},
		{F32Neg(0, 1), "f32.neg r0, r1"},
		{F64CopysignImm(0, 1, SignNeg), "f64.copysign_imm r0, r1, -"},
		{I32LoadAt(0, Const32Of[uint32](4096)), "i32.load_at r0, 4096"},
		{I64LoadOffset16(0, 1, off8), "i64.load_offset16 r0, r1, 8"},
		{I32Store16Offset16Imm(1, off8, -7), "i32.store16_offset16_imm r1, 8, -7"},
		{I32Store8AtImm(Const32Of[uint32](16), -1), "i32.store8_at_imm 16, -1"},
		{F64StoreAt(Const32Of[uint32](16), 2), "f64.store_at 16, r2"},
		{Branch(-4), "branch -4"},
		{BranchEqz(3, 7), "branch_eqz r3, +7"},
		{Return(), "return"},
		{ReturnReg(2), "return_reg r2"},
		{ReturnI64Imm32(c64), "return_i64_imm32 -5"},
		{CopyImm32(1, AnyConst32FromI32(-3)), "copy_imm32 r1, -3"},
		{Trap(TrapIntegerDivisionByZero), `trap "integer divide by zero"`},
		{DataConstRef(9), "const_ref @9"},
		{DataRegister(-2), "register c1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.instr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeq_String(t *testing.T) {
	seq := I32Store(0, Const32Of[uint32](100_000), 5)
	if got, want := seq.String(), "i32.store r0, 100000; register r5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDisassemble(t *testing.T) {
	code := concat(
		I32AddImm(0, 1, Const32Of[int32](-70000)).AppendTo(nil),
		[]Instruction{Return()},
	)
	var buf bytes.Buffer
	if err := Disassemble(&buf, code); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"   0  i32.add_imm r0, r1",
		"   1    const32 -70000",
		"   2  return",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Disassemble() =\n%s\nwant\n%s", buf.String(), want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestDisassemble_WriteError(t *testing.T) {
	if err := Disassemble(failWriter{}, []Instruction{Return()}); err == nil {
		t.Error("expected write error")
	}
}
