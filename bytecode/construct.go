package bytecode

// DataConst32 creates an OpConst32 data word.
func DataConst32(c AnyConst32) Instruction {
	return imm32(OpConst32, c)
}

// DataConstRef creates an OpConstRef data word.
func DataConstRef(ref ConstRef) Instruction {
	return imm32(OpConstRef, AnyConst32FromU32(uint32(ref)))
}

// DataRegister creates an OpRegister data word.
func DataRegister(r Register) Instruction {
	return Instruction{op: OpRegister, a: uint16(r)}
}

// Trap creates an OpTrap instruction.
func Trap(code TrapCode) Instruction {
	return Instruction{op: OpTrap, a: uint16(code)}
}

// Return creates an OpReturn instruction.
func Return() Instruction {
	return Instruction{op: OpReturn}
}

// ReturnReg creates an OpReturnReg instruction.
func ReturnReg(value Register) Instruction {
	return Instruction{op: OpReturnReg, a: uint16(value)}
}

// ReturnImm32 creates an OpReturnImm32 instruction for i32 and f32 results.
func ReturnImm32(value AnyConst32) Instruction {
	return imm32(OpReturnImm32, value)
}

// ReturnI64Imm32 creates an OpReturnI64Imm32 instruction.
func ReturnI64Imm32(value Const32[int64]) Instruction {
	return imm32(OpReturnI64Imm32, value.Any())
}

// ReturnImm creates an OpReturnImm instruction returning a constant pool value.
func ReturnImm(value ConstRef) Seq {
	return withConstRef(Instruction{op: OpReturnImm}, value)
}

// Copy creates an OpCopy instruction.
func Copy(result, value Register) Instruction {
	return unary(OpCopy, result, value)
}

// CopyImm32 creates an OpCopyImm32 instruction for i32 and f32 values.
func CopyImm32(result Register, value AnyConst32) Instruction {
	return regImm32(OpCopyImm32, result, value)
}

// CopyI64Imm32 creates an OpCopyI64Imm32 instruction.
func CopyI64Imm32(result Register, value Const32[int64]) Instruction {
	return regImm32(OpCopyI64Imm32, result, value.Any())
}

// CopyImm creates an OpCopyImm instruction copying a constant pool value.
func CopyImm(result Register, value ConstRef) Seq {
	return withConstRef(Instruction{op: OpCopyImm, a: uint16(result)}, value)
}

// Branch creates an unconditional OpBranch instruction.
func Branch(offset BranchOffset) Instruction {
	return branch(OpBranch, 0, offset)
}

// BranchEqz creates an OpBranchEqz instruction.
func BranchEqz(condition Register, offset BranchOffset) Instruction {
	return branch(OpBranchEqz, condition, offset)
}

// BranchNez creates an OpBranchNez instruction.
func BranchNez(condition Register, offset BranchOffset) Instruction {
	return branch(OpBranchNez, condition, offset)
}
