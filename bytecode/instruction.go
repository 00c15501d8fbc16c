package bytecode

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/errors"
)

// Instruction is a single instruction word of the register machine.
//
// Go has no union types, so the payload is a flattened set of three 16-bit
// slots whose meaning depends on the shape of the opcode. An instruction
// word is 8 bytes large and 2-byte aligned.
//
// Most instructions occupy a single word. Instructions whose opcode has a
// Trailer are immediately followed by a data word (OpConst32, OpConstRef or
// OpRegister) holding an extra parameter. Such instructions are built as a
// Seq so that both words are always emitted together.
//
// The decoding accessors check the payload layout of the opcode and panic
// on a mismatch: decoding a word with the wrong shape is an interpreter bug.
type Instruction struct {
	op      Opcode
	a, b, c uint16
}

// Opcode returns the opcode of the instruction word.
func (i Instruction) Opcode() Opcode {
	return i.op
}

func (i Instruction) expect(want Shape) {
	if have := i.op.Shape(); have != want {
		panic(errors.ShapeMismatch(i.op.String(), have.String(), want.String()))
	}
}

func (i Instruction) const32() AnyConst32 {
	return AnyConst32{lo: i.b, hi: i.c}
}

func unary(op Opcode, result, input Register) Instruction {
	return Instruction{op: op, a: uint16(result), b: uint16(input)}
}

func binary(op Opcode, result, lhs, rhs Register) Instruction {
	return Instruction{op: op, a: uint16(result), b: uint16(lhs), c: uint16(rhs)}
}

func binaryImm16(op Opcode, result, reg Register, imm AnyConst16) Instruction {
	return Instruction{op: op, a: uint16(result), b: uint16(reg), c: imm.U16()}
}

func regImm32(op Opcode, reg Register, imm AnyConst32) Instruction {
	return Instruction{op: op, a: uint16(reg), b: imm.lo, c: imm.hi}
}

func imm32(op Opcode, imm AnyConst32) Instruction {
	return Instruction{op: op, b: imm.lo, c: imm.hi}
}

func copysignImm(op Opcode, result, lhs Register, sign Sign) Instruction {
	return Instruction{op: op, a: uint16(result), b: uint16(lhs), c: uint16(sign)}
}

func loadOffset16(op Opcode, result, ptr Register, offset Const16[uint32]) Instruction {
	return Instruction{op: op, a: uint16(result), b: uint16(ptr), c: offset.Any().U16()}
}

func store(op Opcode, ptr Register, offset Const32[uint32]) Instruction {
	return regImm32(op, ptr, offset.Any())
}

func storeOffset16(op Opcode, ptr Register, offset Const16[uint32], value uint16) Instruction {
	return Instruction{op: op, a: uint16(ptr), b: offset.Any().U16(), c: value}
}

func storeAt(op Opcode, address Const32[uint32], value uint16) Instruction {
	a := address.Any()
	return Instruction{op: op, a: value, b: a.lo, c: a.hi}
}

func branch(op Opcode, condition Register, offset BranchOffset) Instruction {
	return regImm32(op, condition, AnyConst32FromI32(int32(offset)))
}

// Unary decodes a ShapeUnary instruction.
func (i Instruction) Unary() UnaryInstr {
	i.expect(ShapeUnary)
	return UnaryInstr{Result: Register(i.a), Input: Register(i.b)}
}

// Binary decodes a ShapeBinary instruction.
func (i Instruction) Binary() BinInstr {
	i.expect(ShapeBinary)
	return BinInstr{Result: Register(i.a), Lhs: Register(i.b), Rhs: Register(i.c)}
}

func decodeBinaryImm16[T Const16Type](i Instruction) BinInstrImm16[T] {
	i.expect(ShapeBinaryImm16)
	if want := imm16TagName(i.op.Info()); want != tagName[T]() {
		panic(errors.ShapeMismatch(i.op.String(), "const16<"+want+">", "const16<"+tagName[T]()+">"))
	}
	return BinInstrImm16[T]{
		Result: Register(i.a),
		Reg:    Register(i.b),
		Imm:    Const16As[T](AnyConst16FromU16(i.c)),
	}
}

// BinaryImm16I32 decodes a ShapeBinaryImm16 instruction of a signed i32 operator.
func (i Instruction) BinaryImm16I32() BinInstrImm16[int32] {
	return decodeBinaryImm16[int32](i)
}

// BinaryImm16U32 decodes a ShapeBinaryImm16 instruction of an unsigned i32 operator.
func (i Instruction) BinaryImm16U32() BinInstrImm16[uint32] {
	return decodeBinaryImm16[uint32](i)
}

// BinaryImm16I64 decodes a ShapeBinaryImm16 instruction of a signed i64 operator.
func (i Instruction) BinaryImm16I64() BinInstrImm16[int64] {
	return decodeBinaryImm16[int64](i)
}

// BinaryImm16U64 decodes a ShapeBinaryImm16 instruction of an unsigned i64 operator.
func (i Instruction) BinaryImm16U64() BinInstrImm16[uint64] {
	return decodeBinaryImm16[uint64](i)
}

// Imm16 returns the untyped 16-bit immediate of a ShapeBinaryImm16 instruction.
func (i Instruction) Imm16() AnyConst16 {
	i.expect(ShapeBinaryImm16)
	return AnyConst16FromU16(i.c)
}

// Load decodes the head word of a general load. The offset is held by the
// following OpConst32 word.
func (i Instruction) Load() LoadInstr {
	i.expect(ShapeUnary)
	return LoadInstr{Result: Register(i.a), Ptr: Register(i.b)}
}

// LoadAt decodes a load from a constant address.
func (i Instruction) LoadAt() LoadAtInstr {
	i.expect(ShapeRegImm32)
	return LoadAtInstr{Result: Register(i.a), Address: Const32As[uint32](i.const32())}
}

// LoadOffset16 decodes a load with a 16-bit offset.
func (i Instruction) LoadOffset16() LoadOffset16Instr {
	i.expect(ShapeLoadOffset16)
	return LoadOffset16Instr{
		Result: Register(i.a),
		Ptr:    Register(i.b),
		Offset: Const16As[uint32](AnyConst16FromU16(i.c)),
	}
}

// Store decodes the head word of a general store. The value is held by the
// following OpRegister word.
func (i Instruction) Store() StoreInstr {
	i.expect(ShapeStore)
	return StoreInstr{Ptr: Register(i.a), Offset: Const32As[uint32](i.const32())}
}

func decodeStoreOffset16[V StoreValue](i Instruction, want Shape, value V) StoreOffset16Instr[V] {
	i.expect(want)
	return StoreOffset16Instr[V]{
		Ptr:    Register(i.a),
		Offset: Const16As[uint32](AnyConst16FromU16(i.b)),
		Value:  value,
	}
}

// StoreOffset16 decodes a store with a 16-bit offset of a register value.
func (i Instruction) StoreOffset16() StoreOffset16Instr[Register] {
	return decodeStoreOffset16(i, ShapeStoreOffset16, Register(i.c))
}

// StoreOffset16Imm8 decodes a store with a 16-bit offset of an inline int8 value.
func (i Instruction) StoreOffset16Imm8() StoreOffset16Instr[int8] {
	return decodeStoreOffset16(i, ShapeStoreOffset16Imm8, int8(i.c))
}

// StoreOffset16Imm16 decodes a store with a 16-bit offset of an inline int16 value.
func (i Instruction) StoreOffset16Imm16() StoreOffset16Instr[int16] {
	return decodeStoreOffset16(i, ShapeStoreOffset16Imm16, int16(i.c))
}

func decodeStoreAt[V StoreValue](i Instruction, want Shape, value V) StoreAtInstr[V] {
	i.expect(want)
	return StoreAtInstr[V]{Address: Const32As[uint32](i.const32()), Value: value}
}

// StoreAt decodes a store of a register value to a constant address.
func (i Instruction) StoreAt() StoreAtInstr[Register] {
	return decodeStoreAt(i, ShapeStoreAt, Register(i.a))
}

// StoreAtImm8 decodes a store of an inline int8 value to a constant address.
func (i Instruction) StoreAtImm8() StoreAtInstr[int8] {
	return decodeStoreAt(i, ShapeStoreAtImm8, int8(i.a))
}

// StoreAtImm16 decodes a store of an inline int16 value to a constant address.
func (i Instruction) StoreAtImm16() StoreAtInstr[int16] {
	return decodeStoreAt(i, ShapeStoreAtImm16, int16(i.a))
}

// CopysignImm decodes a copysign with a constant sign.
func (i Instruction) CopysignImm() CopysignImmInstr {
	i.expect(ShapeCopysignImm)
	return CopysignImmInstr{Result: Register(i.a), Lhs: Register(i.b), Rhs: Sign(i.c)}
}

// RegImm32 decodes a register and a 32-bit constant, as used by
// OpCopyImm32 and OpCopyI64Imm32.
func (i Instruction) RegImm32() (Register, AnyConst32) {
	i.expect(ShapeRegImm32)
	return Register(i.a), i.const32()
}

// TrapCode returns the trap code of an OpTrap instruction.
func (i Instruction) TrapCode() TrapCode {
	i.expect(ShapeTrap)
	return TrapCode(i.a)
}

// ConstRef returns the constant pool reference of an OpConstRef data word.
func (i Instruction) ConstRef() ConstRef {
	i.expect(ShapeConstRef)
	return ConstRef(i.const32().U32())
}

// Const32 returns the 32-bit constant of an OpConst32 data word or of a
// ShapeImm32 instruction such as OpReturnImm32.
func (i Instruction) Const32() AnyConst32 {
	if s := i.op.Shape(); s != ShapeImm32 {
		i.expect(ShapeConst32)
	}
	return i.const32()
}

// Reg returns the register of an OpRegister data word or of a ShapeReg
// instruction such as OpReturnReg.
func (i Instruction) Reg() Register {
	if s := i.op.Shape(); s != ShapeReg {
		i.expect(ShapeRegister)
	}
	return Register(i.a)
}

// Branch returns the offset of an unconditional branch.
func (i Instruction) Branch() BranchOffset {
	i.expect(ShapeBranch)
	return BranchOffset(i.const32().I32())
}

// BranchCond decodes a conditional branch.
func (i Instruction) BranchCond() BranchCondInstr {
	i.expect(ShapeBranchCond)
	return BranchCondInstr{Condition: Register(i.a), Offset: BranchOffset(i.const32().I32())}
}

// branchOffset returns the offset of any branch and whether i is a branch.
func (i Instruction) branchOffset() (BranchOffset, bool) {
	switch i.op.Shape() {
	case ShapeBranch, ShapeBranchCond:
		return BranchOffset(i.const32().I32()), true
	}
	return 0, false
}

// WithBranchOffset returns a copy of the branch instruction i targeting offset.
func (i Instruction) WithBranchOffset(offset BranchOffset) Instruction {
	if _, ok := i.branchOffset(); !ok {
		i.expect(ShapeBranch)
	}
	c := AnyConst32FromI32(int32(offset))
	i.b, i.c = c.lo, c.hi
	return i
}

func imm16TagName(info OpInfo) string {
	switch {
	case info.Type == api.ValueTypeI64 && info.Unsigned:
		return "uint64"
	case info.Type == api.ValueTypeI64:
		return "int64"
	case info.Unsigned:
		return "uint32"
	default:
		return "int32"
	}
}

func tagName[T Const16Type]() string {
	var zero T
	switch any(zero).(type) {
	case int32:
		return "int32"
	case uint32:
		return "uint32"
	case int64:
		return "int64"
	default:
		return "uint64"
	}
}
