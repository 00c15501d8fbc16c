package bytecode

import (
	"fmt"

	"github.com/wippyai/wasm-regvm/errors"
)

// TrapCode is the reason an OpTrap instruction aborts execution.
type TrapCode uint16

const (
	TrapUnreachable TrapCode = iota
	TrapMemoryOutOfBounds
	TrapTableOutOfBounds
	TrapIndirectCallToNull
	TrapIntegerDivisionByZero
	TrapIntegerOverflow
	TrapBadConversionToInteger
	TrapStackOverflow
	TrapBadSignature

	// TrapInvalidInstruction is raised when execution reaches a data word
	// or an invalid opcode.
	TrapInvalidInstruction
)

var trapMessages = [...]string{
	TrapUnreachable:            "wasm `unreachable` instruction executed",
	TrapMemoryOutOfBounds:      "out of bounds memory access",
	TrapTableOutOfBounds:       "undefined element: out of bounds table access",
	TrapIndirectCallToNull:     "uninitialized element 2",
	TrapIntegerDivisionByZero:  "integer divide by zero",
	TrapIntegerOverflow:        "integer overflow",
	TrapBadConversionToInteger: "invalid conversion to integer",
	TrapStackOverflow:          "call stack exhausted",
	TrapBadSignature:           "indirect call type mismatch",
	TrapInvalidInstruction:     "invalid instruction",
}

// String returns the trap message.
func (c TrapCode) String() string {
	if int(c) < len(trapMessages) {
		return trapMessages[c]
	}
	return fmt.Sprintf("trap(%d)", uint16(c))
}

// Err returns the trap as a runtime error.
func (c TrapCode) Err() error {
	return errors.Trap(c)
}

// CheckExecutable reports a TrapInvalidInstruction error if i must never be
// executed: data words and invalid opcodes.
func CheckExecutable(i Instruction) error {
	if !i.op.Valid() || i.op.IsData() {
		err := errors.Trap(TrapInvalidInstruction)
		err.Op = i.op.String()
		return err
	}
	return nil
}
