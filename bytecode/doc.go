// Package bytecode defines the register machine instruction set WebAssembly
// function bodies are translated into.
//
// # Instruction Words
//
// An Instruction is an 8 byte word made of an Opcode and a three slot 16-bit
// payload. The Shape of the opcode determines how the payload is decoded:
//
//	instr := bytecode.I32AddImm16(0, 1, imm) // r0 = r1 + imm
//	ops := instr.BinaryImm16I32()
//	fmt.Println(ops.Imm.Value())
//
// Instructions whose operands do not fit a single word are built as a Seq:
// the instruction itself followed by a data word (OpConst32, OpConstRef or
// OpRegister). Data words are never executed.
//
//	seq := bytecode.I32AddImm(0, 1, bytecode.Const32Of[int32](100_000))
//	code = seq.AppendTo(code)
//
// # Registers
//
// A Register addresses a slot of the call frame. Negative registers address
// the function-local constants, so any operand can read a constant without
// a dedicated instruction form. Contiguous registers are described by a
// RegisterSpan and iterated with RegisterSpanIter.
//
// # Constants
//
// AnyConst16 and AnyConst32 carry small immediates inline. Const16 and
// Const32 tag them with the Go type they decode to:
//
//	c, ok := bytecode.NewConst16[int32](100) // ok
//	_, ok = bytecode.NewConst16[int32](40000) // !ok, does not fit
//
// # Encoding
//
// The Encoder appends instructions to a function body, keeps data words
// next to the instruction owning them and patches forward branches. Finish
// validates the result:
//
//	enc := bytecode.NewEncoderWithDefaults()
//	br := enc.Push(bytecode.BranchEqz(0, 0))
//	enc.Push(bytecode.Trap(bytecode.TrapUnreachable))
//	_ = enc.PatchBranch(br, enc.Push(bytecode.Return()))
//	code, err := enc.Finish()
//
// # Families
//
// Each supported Wasm operator maps to a Family listing the opcode of every
// Encoding it can be translated to:
//
//	f, _ := bytecode.LookupFamily(wasm.OpI32Sub)
//	op, _ := f.Opcode(bytecode.EncImm16Rev) // bytecode.OpI32SubImm16Rev
//
// The opcode table, the families and the constructors are generated by
// internal/isagen.
package bytecode
