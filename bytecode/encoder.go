package bytecode

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-regvm/errors"
)

// Instr is the index of an instruction word in an Encoder's stream.
type Instr uint32

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// Logger overrides the package logger when set.
	Logger *zap.Logger

	// Capacity is the number of instruction words preallocated.
	Capacity int

	// ValidateOnFinish runs Validate over the stream in Finish.
	ValidateOnFinish bool
}

// DefaultEncoderOptions returns the default encoder configuration.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{
		Capacity:         64,
		ValidateOnFinish: true,
	}
}

// Encoder builds the instruction stream of a single function.
// Not safe for concurrent use.
type Encoder struct {
	log  *zap.Logger
	code []Instruction
	opts EncoderOptions
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts EncoderOptions) *Encoder {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Encoder{
		log:  log.Named("encoder"),
		code: make([]Instruction, 0, max(opts.Capacity, 0)),
		opts: opts,
	}
}

// NewEncoderWithDefaults creates an encoder with default options.
func NewEncoderWithDefaults() *Encoder {
	return NewEncoder(DefaultEncoderOptions())
}

// Push appends a single-word instruction and returns its position.
//
// Push panics if i is a data word, has an invalid opcode, or needs a
// trailing data word; such instructions must be appended with PushSeq.
func (e *Encoder) Push(i Instruction) Instr {
	switch {
	case !i.op.Valid():
		panic(errors.InvalidOpcode(errors.PhaseEncode, int(e.Next()), uint16(i.op)))
	case i.op.IsData():
		panic(errors.StrayData(errors.PhaseEncode, int(e.Next()), i.op.String()))
	case i.op.Words() != 1:
		panic(errors.MissingTrailer(errors.PhaseEncode, int(e.Next()), i.op.String(), i.op.Info().Trailer.Opcode().String()))
	}
	at := e.Next()
	e.code = append(e.code, i)
	return at
}

// PushSeq appends an instruction together with its data word and returns
// the position of the head.
func (e *Encoder) PushSeq(s Seq) Instr {
	if !s.head.op.Valid() {
		panic(errors.InvalidOpcode(errors.PhaseEncode, int(e.Next()), uint16(s.head.op)))
	}
	at := e.Next()
	e.code = s.AppendTo(e.code)
	return at
}

// Next returns the position the next pushed instruction will have.
func (e *Encoder) Next() Instr {
	return Instr(len(e.code))
}

// Len returns the number of instruction words in the stream.
func (e *Encoder) Len() int {
	return len(e.code)
}

// Get returns the instruction word at position at.
func (e *Encoder) Get(at Instr) Instruction {
	return e.code[at]
}

// BranchOffsetBetween returns the offset a branch at src needs to reach dst.
func BranchOffsetBetween(src, dst Instr) (BranchOffset, error) {
	offset := int64(dst) - int64(src)
	if offset < math.MinInt32 || offset > math.MaxInt32 {
		return 0, errors.Overflow(errors.PhaseEncode, []string{"branch"}, offset, "int32")
	}
	return BranchOffset(offset), nil
}

// PatchBranch updates the branch at position at to target.
// Used to resolve forward branches once their target is known.
func (e *Encoder) PatchBranch(at, target Instr) error {
	if int(at) >= len(e.code) {
		return errors.OutOfBounds(errors.PhaseEncode, errors.NoPos, int(at), len(e.code))
	}
	instr := e.code[at]
	if _, ok := instr.branchOffset(); !ok {
		return errors.New(errors.PhaseEncode, errors.KindShapeMismatch).
			At(int(at)).
			Op(instr.op.String()).
			Detail("not a branch").
			Build()
	}
	offset, err := BranchOffsetBetween(at, target)
	if err != nil {
		return err
	}
	e.code[at] = instr.WithBranchOffset(offset)
	e.log.Debug("patched branch",
		zap.Uint32("at", uint32(at)),
		zap.Uint32("target", uint32(target)),
		zap.Int32("offset", int32(offset)))
	return nil
}

// Finish returns the encoded stream and resets the encoder.
// With ValidateOnFinish set the stream is validated first and returned
// together with the validation error.
func (e *Encoder) Finish() ([]Instruction, error) {
	code := e.code
	e.code = nil

	if e.opts.ValidateOnFinish {
		if err := Validate(code); err != nil {
			e.log.Warn("encoded stream failed validation",
				zap.Int("words", len(code)),
				zap.Error(err))
			return code, err
		}
	}
	e.log.Debug("finished function", zap.Int("words", len(code)))
	return code, nil
}

// Reset discards the stream while keeping the allocated capacity.
func (e *Encoder) Reset() {
	e.code = e.code[:0]
}
