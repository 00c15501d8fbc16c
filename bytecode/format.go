package bytecode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns the instruction in assembly-like notation, for example
// "i32.add_imm16 r2, r0, 100".
func (i Instruction) String() string {
	if !i.op.Valid() {
		return i.op.String()
	}
	info := i.op.Info()
	name := info.Name

	switch info.Shape {
	case ShapeNone:
		return name
	case ShapeTrap:
		return fmt.Sprintf("%s %q", name, TrapCode(i.a).String())
	case ShapeConstRef:
		return fmt.Sprintf("%s @%d", name, i.const32().U32())
	case ShapeConst32:
		return fmt.Sprintf("%s %d", name, i.const32().I32())
	case ShapeRegister, ShapeReg:
		return fmt.Sprintf("%s %s", name, Register(i.a))
	case ShapeImm32:
		return fmt.Sprintf("%s %s", name, formatImm32(i.op, i.const32()))
	case ShapeUnary:
		return fmt.Sprintf("%s %s, %s", name, Register(i.a), Register(i.b))
	case ShapeBinary:
		return fmt.Sprintf("%s %s, %s, %s", name, Register(i.a), Register(i.b), Register(i.c))
	case ShapeBinaryImm16:
		imm := formatImm16(info, AnyConst16FromU16(i.c))
		if strings.HasSuffix(name, "_rev") {
			return fmt.Sprintf("%s %s, %s, %s", name, Register(i.a), imm, Register(i.b))
		}
		return fmt.Sprintf("%s %s, %s, %s", name, Register(i.a), Register(i.b), imm)
	case ShapeRegImm32:
		return fmt.Sprintf("%s %s, %s", name, Register(i.a), formatImm32(i.op, i.const32()))
	case ShapeCopysignImm:
		return fmt.Sprintf("%s %s, %s, %s", name, Register(i.a), Register(i.b), Sign(i.c))
	case ShapeLoadOffset16:
		return fmt.Sprintf("%s %s, %s, %d", name, Register(i.a), Register(i.b), i.c)
	case ShapeStore:
		return fmt.Sprintf("%s %s, %d", name, Register(i.a), i.const32().U32())
	case ShapeStoreOffset16:
		return fmt.Sprintf("%s %s, %d, %s", name, Register(i.a), i.b, Register(i.c))
	case ShapeStoreOffset16Imm8:
		return fmt.Sprintf("%s %s, %d, %d", name, Register(i.a), i.b, int8(i.c))
	case ShapeStoreOffset16Imm16:
		return fmt.Sprintf("%s %s, %d, %d", name, Register(i.a), i.b, int16(i.c))
	case ShapeStoreAt:
		return fmt.Sprintf("%s %d, %s", name, i.const32().U32(), Register(i.a))
	case ShapeStoreAtImm8:
		return fmt.Sprintf("%s %d, %d", name, i.const32().U32(), int8(i.a))
	case ShapeStoreAtImm16:
		return fmt.Sprintf("%s %d, %d", name, i.const32().U32(), int16(i.a))
	case ShapeBranch:
		return fmt.Sprintf("%s %s", name, formatOffset(BranchOffset(i.const32().I32())))
	case ShapeBranchCond:
		return fmt.Sprintf("%s %s, %s", name, Register(i.a), formatOffset(BranchOffset(i.const32().I32())))
	}
	return name
}

func formatImm16(info OpInfo, c AnyConst16) string {
	if info.Unsigned {
		return strconv.FormatUint(uint64(c.U16()), 10)
	}
	return strconv.FormatInt(int64(c.I16()), 10)
}

func formatImm32(op Opcode, c AnyConst32) string {
	switch op {
	case OpReturnImm32, OpCopyImm32:
		return strconv.FormatInt(int64(c.I32()), 10)
	case OpReturnI64Imm32, OpCopyI64Imm32:
		return strconv.FormatInt(c.I64(), 10)
	}
	// constant address of a load
	return strconv.FormatUint(uint64(c.U32()), 10)
}

func formatOffset(o BranchOffset) string {
	if o >= 0 {
		return "+" + strconv.Itoa(int(o))
	}
	return strconv.Itoa(int(o))
}

// Disassemble writes one line per instruction word of code to w.
// Data words are indented below the instruction they belong to.
func Disassemble(w io.Writer, code []Instruction) error {
	for pos, instr := range code {
		indent := ""
		if instr.op.IsData() {
			indent = "  "
		}
		if _, err := fmt.Fprintf(w, "%4d  %s%s\n", pos, indent, instr); err != nil {
			return err
		}
	}
	return nil
}
