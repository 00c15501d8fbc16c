package bytecode

import (
	"math"

	"github.com/wippyai/wasm-regvm/errors"
)

// Validate checks that code is a well-formed instruction stream.
//
// Every opcode must be known, every instruction with a Trailer must be
// followed by the matching data word, data words may only appear in that
// position, branches must target an instruction inside the stream, and the
// immediate divisor of integer division and remainder must not be zero.
func Validate(code []Instruction) error {
	for pos := 0; pos < len(code); {
		instr := code[pos]
		op := instr.op
		if !op.Valid() {
			return errors.InvalidOpcode(errors.PhaseValidate, pos, uint16(op))
		}
		if op.IsData() {
			return errors.StrayData(errors.PhaseValidate, pos, op.String())
		}
		info := op.Info()
		if info.Trailer != TrailerNone {
			want := info.Trailer.Opcode()
			if pos+1 >= len(code) || code[pos+1].op != want {
				return errors.MissingTrailer(errors.PhaseValidate, pos, op.String(), want.String())
			}
		}
		if err := validatePayload(code, pos); err != nil {
			return err
		}
		pos += op.Words()
	}
	return nil
}

func validatePayload(code []Instruction, pos int) error {
	instr := code[pos]
	info := instr.op.Info()

	if info.NonZeroImm {
		var divisor uint32
		switch info.Shape {
		case ShapeBinaryImm16:
			divisor = uint32(instr.c)
		default:
			divisor = code[pos+1].const32().U32()
		}
		if divisor == 0 {
			return errors.New(errors.PhaseValidate, errors.KindInvalidData).
				At(pos).
				Op(instr.op.String()).
				Detail("immediate divisor is zero").
				Build()
		}
	}

	switch info.Shape {
	case ShapeTrap:
		if code := TrapCode(instr.a); code > TrapInvalidInstruction {
			return errors.InvalidData(errors.PhaseValidate, pos, "unknown trap code "+code.String())
		}
	case ShapeStoreOffset16Imm8:
		if v := int16(instr.c); v < math.MinInt8 || v > math.MaxInt8 {
			return int8Overflow(pos, instr.op, v)
		}
	case ShapeStoreAtImm8:
		if v := int16(instr.a); v < math.MinInt8 || v > math.MaxInt8 {
			return int8Overflow(pos, instr.op, v)
		}
	case ShapeBranch, ShapeBranchCond:
		offset, _ := instr.branchOffset()
		target := int64(pos) + int64(offset)
		if target < 0 || target >= int64(len(code)) {
			return errors.OutOfBounds(errors.PhaseValidate, pos, int(target), len(code))
		}
		if code[target].op.IsData() {
			return errors.InvalidData(errors.PhaseValidate, pos, "branch targets a data word")
		}
	}
	return nil
}

func int8Overflow(pos int, op Opcode, v int16) error {
	return errors.New(errors.PhaseValidate, errors.KindOverflow).
		At(pos).
		Op(op.String()).
		Type("int8").
		Value(v).
		Detail("inline value %d overflows int8", v).
		Build()
}
