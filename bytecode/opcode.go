package bytecode

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

//go:generate go run ./internal/isagen -out .

// Opcode selects the operation of an instruction word and the shape its
// payload is decoded as.
type Opcode uint16

// Shape describes how the payload of an instruction word is laid out.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeTrap
	ShapeConstRef
	ShapeConst32
	ShapeRegister
	ShapeReg
	ShapeImm32
	ShapeUnary
	ShapeBinary
	ShapeBinaryImm16
	ShapeRegImm32
	ShapeCopysignImm
	ShapeLoadOffset16
	ShapeStore
	ShapeStoreOffset16
	ShapeStoreOffset16Imm8
	ShapeStoreOffset16Imm16
	ShapeStoreAt
	ShapeStoreAtImm8
	ShapeStoreAtImm16
	ShapeBranch
	ShapeBranchCond
)

var shapeNames = [...]string{
	ShapeNone:               "none",
	ShapeTrap:               "trap",
	ShapeConstRef:           "const_ref",
	ShapeConst32:            "const32",
	ShapeRegister:           "register",
	ShapeReg:                "reg",
	ShapeImm32:              "imm32",
	ShapeUnary:              "unary",
	ShapeBinary:             "binary",
	ShapeBinaryImm16:        "binary_imm16",
	ShapeRegImm32:           "reg_imm32",
	ShapeCopysignImm:        "copysign_imm",
	ShapeLoadOffset16:       "load_offset16",
	ShapeStore:              "store",
	ShapeStoreOffset16:      "store_offset16",
	ShapeStoreOffset16Imm8:  "store_offset16_imm8",
	ShapeStoreOffset16Imm16: "store_offset16_imm16",
	ShapeStoreAt:            "store_at",
	ShapeStoreAtImm8:        "store_at_imm8",
	ShapeStoreAtImm16:       "store_at_imm16",
	ShapeBranch:             "branch",
	ShapeBranchCond:         "branch_cond",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Trailer names the data word that must immediately follow an instruction.
type Trailer uint8

const (
	TrailerNone Trailer = iota
	TrailerConst32
	TrailerConstRef
	TrailerRegister
)

// Opcode returns the opcode of the data word t requires.
func (t Trailer) Opcode() Opcode {
	switch t {
	case TrailerConst32:
		return OpConst32
	case TrailerConstRef:
		return OpConstRef
	case TrailerRegister:
		return OpRegister
	default:
		return OpInvalid
	}
}

// OpInfo is the static description of an opcode.
type OpInfo struct {
	Name    string
	Shape   Shape
	Trailer Trailer

	// Type is the value type named by the operator prefix, zero if none.
	Type api.ValueType

	// Unsigned is set for operators that interpret integers as unsigned.
	// Their immediates use unsigned Const16 and Const32 tags.
	Unsigned bool

	// NonZeroImm is set for integer division and remainder with an
	// immediate divisor. The translator never encodes a zero divisor.
	NonZeroImm bool
}

// Info returns the static description of op.
// Unknown opcodes yield the description of OpInvalid.
func (op Opcode) Info() OpInfo {
	if op >= numOpcodes {
		return opInfos[OpInvalid]
	}
	return opInfos[op]
}

// Valid reports whether op is a known opcode other than OpInvalid.
func (op Opcode) Valid() bool {
	return op != OpInvalid && op < numOpcodes
}

// Shape returns the payload layout of op.
func (op Opcode) Shape() Shape {
	return op.Info().Shape
}

// Words returns the number of instruction words an instruction with this
// opcode occupies, including its trailing data word.
func (op Opcode) Words() int {
	if op.Info().Trailer != TrailerNone {
		return 2
	}
	return 1
}

// IsData reports whether op is a data-only word. Data words are parameters
// of the instruction before them and must never be executed.
func (op Opcode) IsData() bool {
	switch op {
	case OpConst32, OpConstRef, OpRegister:
		return true
	}
	return false
}

func (op Opcode) String() string {
	if op.Valid() {
		return opInfos[op].Name
	}
	return fmt.Sprintf("opcode(%d)", uint16(op))
}

// NumOpcodes returns the number of opcodes including OpInvalid.
func NumOpcodes() int {
	return int(numOpcodes)
}
