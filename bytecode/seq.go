package bytecode

// Seq is an instruction followed by its data word.
//
// Constructors of opcodes with a Trailer return a Seq instead of a single
// Instruction so the head and the data word cannot be separated while the
// function body is being built.
type Seq struct {
	head, data Instruction
}

func withConst32(head Instruction, c AnyConst32) Seq {
	return Seq{head: head, data: DataConst32(c)}
}

func withRegister(head Instruction, r Register) Seq {
	return Seq{head: head, data: DataRegister(r)}
}

func withConstRef(head Instruction, ref ConstRef) Seq {
	return Seq{head: head, data: DataConstRef(ref)}
}

// Head returns the executable instruction of the sequence.
func (s Seq) Head() Instruction {
	return s.head
}

// Data returns the data word following the head.
func (s Seq) Data() Instruction {
	return s.data
}

// Words returns both instruction words in stream order.
func (s Seq) Words() [2]Instruction {
	return [2]Instruction{s.head, s.data}
}

// AppendTo appends both words to dst.
func (s Seq) AppendTo(dst []Instruction) []Instruction {
	return append(dst, s.head, s.data)
}

func (s Seq) String() string {
	return s.head.String() + "; " + s.data.String()
}
