package bytecode

import "math"

// ConstRef references a value stored in the constant pool of the engine.
// The handle is opaque to the bytecode.
type ConstRef uint32

// BranchOffset is the signed distance in instruction words from a branch
// instruction to its target.
type BranchOffset int32

// BinInstr is a binary instruction over two registers.
type BinInstr struct {
	// Result receives the result of the computation.
	Result Register
	// Lhs holds the left-hand side operand.
	Lhs Register
	// Rhs holds the right-hand side operand.
	Rhs Register
}

// NewBinInstr creates a new BinInstr.
func NewBinInstr(result, lhs, rhs Register) BinInstr {
	return BinInstr{Result: result, Lhs: lhs, Rhs: rhs}
}

// BinInstrImm16 is a binary instruction with one register operand and one
// 16-bit immediate operand.
//
// The opcode decides whether Reg is the left-hand or the right-hand side.
// Forward variants compute "Reg op Imm", the Rev variants "Imm op Reg".
type BinInstrImm16[T Const16Type] struct {
	Result Register
	Reg    Register
	Imm    Const16[T]
}

// NewBinInstrImm16 creates a new BinInstrImm16.
func NewBinInstrImm16[T Const16Type](result, reg Register, imm Const16[T]) BinInstrImm16[T] {
	return BinInstrImm16[T]{Result: result, Reg: reg, Imm: imm}
}

// UnaryInstr is an instruction with a single register input.
//
// It also serves as the head word of binary instructions whose 32-bit
// immediate is stored in the following Const32 word.
type UnaryInstr struct {
	Result Register
	Input  Register
}

// NewUnaryInstr creates a new UnaryInstr.
func NewUnaryInstr(result, input Register) UnaryInstr {
	return UnaryInstr{Result: result, Input: input}
}

// LoadInstr is a general load instruction.
//
// The offset is stored in the Const32 word that immediately follows the
// load in the instruction stream.
type LoadInstr struct {
	Result Register
	Ptr    Register
}

// NewLoadInstr creates a new LoadInstr.
func NewLoadInstr(result, ptr Register) LoadInstr {
	return LoadInstr{Result: result, Ptr: ptr}
}

// LoadAtInstr loads from a constant ptr+offset address.
type LoadAtInstr struct {
	Result  Register
	Address Const32[uint32]
}

// NewLoadAtInstr creates a new LoadAtInstr.
func NewLoadAtInstr(result Register, address Const32[uint32]) LoadAtInstr {
	return LoadAtInstr{Result: result, Address: address}
}

// LoadOffset16Instr is a load whose offset fits into 16 bits.
// The whole instruction fits a single word.
type LoadOffset16Instr struct {
	Result Register
	Ptr    Register
	Offset Const16[uint32]
}

// NewLoadOffset16Instr creates a new LoadOffset16Instr.
func NewLoadOffset16Instr(result, ptr Register, offset Const16[uint32]) LoadOffset16Instr {
	return LoadOffset16Instr{Result: result, Ptr: ptr, Offset: offset}
}

// StoreInstr is a general store instruction.
//
// The stored value is held by the Register word that immediately follows
// the store in the instruction stream.
type StoreInstr struct {
	Ptr    Register
	Offset Const32[uint32]
}

// NewStoreInstr creates a new StoreInstr.
func NewStoreInstr(ptr Register, offset Const32[uint32]) StoreInstr {
	return StoreInstr{Ptr: ptr, Offset: offset}
}

// StoreValue lists the representations of a stored value: a register or a
// small integer embedded in the instruction.
type StoreValue interface {
	Register | int8 | int16
}

// StoreOffset16Instr is a store whose offset fits into 16 bits.
// The whole instruction fits a single word.
type StoreOffset16Instr[V StoreValue] struct {
	Ptr    Register
	Offset Const16[uint32]
	Value  V
}

// NewStoreOffset16Instr creates a new StoreOffset16Instr.
func NewStoreOffset16Instr[V StoreValue](ptr Register, offset Const16[uint32], value V) StoreOffset16Instr[V] {
	return StoreOffset16Instr[V]{Ptr: ptr, Offset: offset, Value: value}
}

// StoreAtInstr stores to a constant address.
type StoreAtInstr[V StoreValue] struct {
	Address Const32[uint32]
	Value   V
}

// NewStoreAtInstr creates a new StoreAtInstr.
func NewStoreAtInstr[V StoreValue](address Const32[uint32], value V) StoreAtInstr[V] {
	return StoreAtInstr[V]{Address: address, Value: value}
}

// Sign is the sign of a floating point value.
type Sign uint16

const (
	SignPos Sign = iota
	SignNeg
)

// SignOf returns the sign bit of f, including the sign of zeros and NaNs.
func SignOf[F float32 | float64](f F) Sign {
	if math.Signbit(float64(f)) {
		return SignNeg
	}
	return SignPos
}

func (s Sign) String() string {
	if s == SignNeg {
		return "-"
	}
	return "+"
}

// CopysignImmInstr is f32.copysign or f64.copysign with a constant sign.
type CopysignImmInstr struct {
	Result Register
	Lhs    Register
	Rhs    Sign
}

// NewCopysignImmInstr creates a new CopysignImmInstr.
func NewCopysignImmInstr(result, lhs Register, rhs Sign) CopysignImmInstr {
	return CopysignImmInstr{Result: result, Lhs: lhs, Rhs: rhs}
}

// BranchCondInstr is a conditional branch on a register.
type BranchCondInstr struct {
	Condition Register
	Offset    BranchOffset
}
