package bytecode

import (
	"math"
	"testing"
	"unsafe"

	"github.com/wippyai/wasm-regvm/errors"
)

func TestInstruction_Layout(t *testing.T) {
	var i Instruction
	if got := unsafe.Sizeof(i); got != 8 {
		t.Errorf("Sizeof(Instruction) = %d, want 8", got)
	}
	if got := unsafe.Alignof(i); got != 2 {
		t.Errorf("Alignof(Instruction) = %d, want 2", got)
	}
}

func mustConst16[T Const16Type](t *testing.T, v T) Const16[T] {
	t.Helper()
	c, ok := NewConst16(v)
	if !ok {
		t.Fatalf("NewConst16(%v) does not fit", v)
	}
	return c
}

func TestInstruction_BinaryImm16(t *testing.T) {
	instr := I32AddImm16(2, 0, mustConst16[int32](t, 100))
	if instr.Opcode() != OpI32AddImm16 {
		t.Fatalf("Opcode() = %v", instr.Opcode())
	}
	ops := instr.BinaryImm16I32()
	if ops.Result != 2 || ops.Reg != 0 || ops.Imm.Value() != 100 {
		t.Errorf("decoded %+v", ops)
	}
	if instr.Imm16().I16() != 100 {
		t.Errorf("Imm16() = %d", instr.Imm16().I16())
	}
}

func TestInstruction_BinaryImm16Rev(t *testing.T) {
	instr := I64SubImm16Rev(1, mustConst16[int64](t, -5), 3)
	ops := instr.BinaryImm16I64()
	if ops.Result != 1 || ops.Reg != 3 || ops.Imm.Value() != -5 {
		t.Errorf("decoded %+v", ops)
	}
}

func TestInstruction_BinaryImm16Unsigned(t *testing.T) {
	instr := I32DivUImm16(0, 1, mustConst16[uint32](t, 60000))
	if got := instr.BinaryImm16U32().Imm.Value(); got != 60000 {
		t.Errorf("U32 imm = %d, want 60000", got)
	}
	instr = I64LtUImm16(0, 1, mustConst16[uint64](t, math.MaxUint16))
	if got := instr.BinaryImm16U64().Imm.Value(); got != math.MaxUint16 {
		t.Errorf("U64 imm = %d", got)
	}
}

func TestInstruction_BinaryImm16WrongTag(t *testing.T) {
	instr := I32AddImm16(0, 0, mustConst16[int32](t, 1))
	defer func() {
		r := recover()
		err, ok := r.(*errors.Error)
		if !ok || err.Kind != errors.KindShapeMismatch {
			t.Errorf("recovered %v, want shape mismatch", r)
		}
	}()
	instr.BinaryImm16U64()
}

func TestInstruction_ShapeMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"binary as unary", func() { I32Add(0, 1, 2).Unary() }},
		{"unary as binary", func() { I32Clz(0, 1).Binary() }},
		{"return as branch", func() { Return().Branch() }},
		{"data as store", func() { DataRegister(1).Store() }},
		{"trap as const ref", func() { Trap(TrapUnreachable).ConstRef() }},
		{"copy as reg", func() { Copy(0, 1).Reg() }},
		{"add as const32", func() { I32Add(0, 1, 2).Const32() }},
		{"non-branch offset", func() { Return().WithBranchOffset(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestInstruction_UnaryBinary(t *testing.T) {
	u := F64Sqrt(4, -1).Unary()
	if u.Result != 4 || u.Input != -1 || !u.Input.IsConst() {
		t.Errorf("Unary() = %+v", u)
	}
	b := I64Xor(1, 2, 3).Binary()
	if b != NewBinInstr(1, 2, 3) {
		t.Errorf("Binary() = %+v", b)
	}
}

func TestInstruction_Imm(t *testing.T) {
	seq := I32MulImm(5, 6, Const32Of[int32](-100_000))
	if seq.Head().Opcode() != OpI32MulImm || seq.Data().Opcode() != OpConst32 {
		t.Fatalf("Seq = %v", seq)
	}
	u := seq.Head().Unary()
	if u.Result != 5 || u.Input != 6 {
		t.Errorf("head = %+v", u)
	}
	if got := seq.Data().Const32().I32(); got != -100_000 {
		t.Errorf("data = %d", got)
	}

	rev := F32DivImmRev(0, Const32Of[float32](2.5), 1)
	if got := rev.Data().Const32().F32(); got != 2.5 {
		t.Errorf("rev data = %v", got)
	}
	if rev.Head().Unary().Input != 1 {
		t.Errorf("rev input = %v", rev.Head().Unary().Input)
	}
}

func TestInstruction_CopysignImm(t *testing.T) {
	ops := F32CopysignImm(1, 2, SignOf(float32(-3))).CopysignImm()
	if ops.Result != 1 || ops.Lhs != 2 || ops.Rhs != SignNeg {
		t.Errorf("CopysignImm() = %+v", ops)
	}
	if SignOf(math.Copysign(0, -1)) != SignNeg || SignOf(0.0) != SignPos {
		t.Error("SignOf must follow the sign bit")
	}
}

func TestInstruction_Loads(t *testing.T) {
	seq := I64Load16S(1, 2, Const32Of[uint32](0x12345))
	l := seq.Head().Load()
	if l.Result != 1 || l.Ptr != 2 {
		t.Errorf("Load() = %+v", l)
	}
	if seq.Data().Const32().U32() != 0x12345 {
		t.Errorf("offset = %#x", seq.Data().Const32().U32())
	}

	at := I32LoadAt(3, Const32Of[uint32](math.MaxUint32)).LoadAt()
	if at.Result != 3 || at.Address.Value() != math.MaxUint32 {
		t.Errorf("LoadAt() = %+v", at)
	}

	off := F64LoadOffset16(4, 5, mustConst16[uint32](t, 0xFFFF)).LoadOffset16()
	if off.Result != 4 || off.Ptr != 5 || off.Offset.Value() != 0xFFFF {
		t.Errorf("LoadOffset16() = %+v", off)
	}
}

func TestInstruction_Stores(t *testing.T) {
	seq := I32Store(1, Const32Of[uint32](1<<20), 7)
	s := seq.Head().Store()
	if s.Ptr != 1 || s.Offset.Value() != 1<<20 {
		t.Errorf("Store() = %+v", s)
	}
	if seq.Data().Reg() != 7 {
		t.Errorf("value = %v", seq.Data().Reg())
	}

	o := I64StoreOffset16(2, mustConst16[uint32](t, 8), -3).StoreOffset16()
	if o.Ptr != 2 || o.Offset.Value() != 8 || o.Value != -3 {
		t.Errorf("StoreOffset16() = %+v", o)
	}

	o8 := I32Store8Offset16Imm(2, mustConst16[uint32](t, 1), -128).StoreOffset16Imm8()
	if o8.Value != -128 {
		t.Errorf("StoreOffset16Imm8() = %+v", o8)
	}

	o16 := I64Store32Offset16Imm(2, mustConst16[uint32](t, 1), math.MinInt16).StoreOffset16Imm16()
	if o16.Value != math.MinInt16 {
		t.Errorf("StoreOffset16Imm16() = %+v", o16)
	}

	a := F32StoreAt(Const32Of[uint32](64), 9).StoreAt()
	if a.Address.Value() != 64 || a.Value != 9 {
		t.Errorf("StoreAt() = %+v", a)
	}

	a8 := I64Store8AtImm(Const32Of[uint32](65), 127).StoreAtImm8()
	if a8.Address.Value() != 65 || a8.Value != 127 {
		t.Errorf("StoreAtImm8() = %+v", a8)
	}

	a16 := I32StoreAtImm(Const32Of[uint32](66), -2).StoreAtImm16()
	if a16.Address.Value() != 66 || a16.Value != -2 {
		t.Errorf("StoreAtImm16() = %+v", a16)
	}
}

func TestInstruction_Control(t *testing.T) {
	if got := Trap(TrapIntegerDivisionByZero).TrapCode(); got != TrapIntegerDivisionByZero {
		t.Errorf("TrapCode() = %v", got)
	}
	if got := ReturnReg(-1).Reg(); got != -1 {
		t.Errorf("ReturnReg.Reg() = %v", got)
	}
	if got := ReturnImm32(AnyConst32FromF32(1.25)).Const32().F32(); got != 1.25 {
		t.Errorf("ReturnImm32.Const32() = %v", got)
	}
	c, _ := Const32FromI64(-9)
	if got := ReturnI64Imm32(c).Const32().I64(); got != -9 {
		t.Errorf("ReturnI64Imm32.Const32() = %v", got)
	}

	seq := ReturnImm(42)
	if seq.Head().Opcode() != OpReturnImm || seq.Data().ConstRef() != 42 {
		t.Errorf("ReturnImm = %v", seq)
	}

	r, v := CopyImm32(3, AnyConst32FromI32(-1)).RegImm32()
	if r != 3 || v.I32() != -1 {
		t.Errorf("CopyImm32.RegImm32() = %v, %v", r, v.I32())
	}
	r, v = CopyI64Imm32(4, c).RegImm32()
	if r != 4 || v.I64() != -9 {
		t.Errorf("CopyI64Imm32.RegImm32() = %v, %v", r, v.I64())
	}

	cp := CopyImm(5, math.MaxUint32)
	if cp.Head().Reg() != 5 || cp.Data().ConstRef() != math.MaxUint32 {
		t.Errorf("CopyImm = %v", cp)
	}
	if u := Copy(1, 2).Unary(); u.Result != 1 || u.Input != 2 {
		t.Errorf("Copy.Unary() = %+v", u)
	}
}

func TestInstruction_Branches(t *testing.T) {
	if got := Branch(-3).Branch(); got != -3 {
		t.Errorf("Branch() = %d", got)
	}
	bc := BranchNez(7, math.MaxInt32).BranchCond()
	if bc.Condition != 7 || bc.Offset != math.MaxInt32 {
		t.Errorf("BranchCond() = %+v", bc)
	}

	patched := BranchEqz(1, 0).WithBranchOffset(math.MinInt32)
	if got := patched.BranchCond(); got.Condition != 1 || got.Offset != math.MinInt32 {
		t.Errorf("patched = %+v", got)
	}
	if patched.Opcode() != OpBranchEqz {
		t.Errorf("patched opcode = %v", patched.Opcode())
	}
}
