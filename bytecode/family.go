package bytecode

// Encoding selects one of the instruction forms a Wasm operator can be
// translated to, depending on which of its operands are constants.
type Encoding uint8

const (
	// EncReg has all operands in registers.
	EncReg Encoding = iota
	// EncImm16 has the right-hand operand inline as a 16-bit constant.
	EncImm16
	// EncImm16Rev has the left-hand operand inline as a 16-bit constant.
	EncImm16Rev
	// EncImm has the right-hand operand in a trailing OpConst32 word.
	EncImm
	// EncImmRev has the left-hand operand in a trailing OpConst32 word.
	EncImmRev
	// EncCopysignImm has the sign operand of copysign inline.
	EncCopysignImm
	// EncAt accesses a constant address.
	EncAt
	// EncOffset16 accesses ptr plus a 16-bit offset.
	EncOffset16
	// EncOffset16Imm is EncOffset16 with an inline value to store.
	EncOffset16Imm
	// EncAtImm is EncAt with an inline value to store.
	EncAtImm

	numEncodings
)

var encodingNames = [numEncodings]string{
	EncReg:         "reg",
	EncImm16:       "imm16",
	EncImm16Rev:    "imm16_rev",
	EncImm:         "imm",
	EncImmRev:      "imm_rev",
	EncCopysignImm: "copysign_imm",
	EncAt:          "at",
	EncOffset16:    "offset16",
	EncOffset16Imm: "offset16_imm",
	EncAtImm:       "at_imm",
}

func (e Encoding) String() string {
	if e < numEncodings {
		return encodingNames[e]
	}
	return "encoding(?)"
}

// Encodings returns all encodings in declaration order.
func Encodings() []Encoding {
	out := make([]Encoding, numEncodings)
	for i := range out {
		out[i] = Encoding(i)
	}
	return out
}

// Family groups the opcodes a single Wasm operator translates to.
type Family struct {
	Name  string
	Wasm  byte
	Forms [numEncodings]Opcode
}

// Opcode returns the opcode of the family for enc.
func (f Family) Opcode(enc Encoding) (Opcode, bool) {
	if enc >= numEncodings {
		return OpInvalid, false
	}
	op := f.Forms[enc]
	return op, op != OpInvalid
}

// Opcodes returns all opcodes of the family in encoding order.
func (f Family) Opcodes() []Opcode {
	var out []Opcode
	for _, op := range f.Forms {
		if op != OpInvalid {
			out = append(out, op)
		}
	}
	return out
}

var familyByWasm = func() map[byte]int {
	m := make(map[byte]int, len(families))
	for i, f := range families {
		m[f.Wasm] = i
	}
	return m
}()

// LookupFamily returns the family translating the Wasm opcode op.
func LookupFamily(op byte) (Family, bool) {
	i, ok := familyByWasm[op]
	if !ok {
		return Family{}, false
	}
	return families[i], true
}

// Families returns all instruction families.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}
