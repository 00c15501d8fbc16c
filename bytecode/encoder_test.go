package bytecode

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/wasm-regvm/errors"
)

func TestSeq(t *testing.T) {
	seq := I32AddImm(1, 2, Const32Of[int32](70000))
	words := seq.Words()
	if words[0] != seq.Head() || words[1] != seq.Data() {
		t.Errorf("Words() = %v", words)
	}
	code := seq.AppendTo(nil)
	if len(code) != 2 || code[0].Opcode() != OpI32AddImm || code[1].Opcode() != OpConst32 {
		t.Errorf("AppendTo() = %v", code)
	}
	if err := Validate(code); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEncoder_Push(t *testing.T) {
	enc := NewEncoderWithDefaults()
	a := enc.Push(I32Add(0, 1, 2))
	b := enc.PushSeq(I32Store(0, Const32Of[uint32](4), 1))
	c := enc.Push(Return())

	if a != 0 || b != 1 || c != 3 {
		t.Errorf("positions = %d %d %d, want 0 1 3", a, b, c)
	}
	if enc.Len() != 4 || enc.Next() != 4 {
		t.Errorf("Len() = %d Next() = %d", enc.Len(), enc.Next())
	}
	if enc.Get(2).Opcode() != OpRegister {
		t.Errorf("Get(2) = %v", enc.Get(2))
	}

	code, err := enc.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 4 {
		t.Errorf("Finish() = %d words", len(code))
	}
	if enc.Len() != 0 {
		t.Errorf("encoder not reset after Finish")
	}
}

func TestEncoder_PushPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Encoder)
	}{
		{"data word", func(e *Encoder) { e.Push(DataConst32(AnyConst32FromU32(1))) }},
		{"invalid", func(e *Encoder) { e.Push(Instruction{}) }},
		{"multi-word head", func(e *Encoder) { e.Push(I32AddImm(0, 0, Const32Of[int32](1)).Head()) }},
		{"invalid seq", func(e *Encoder) { e.PushSeq(Seq{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoderWithDefaults()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
				if enc.Len() != 0 {
					t.Errorf("stream modified: %d words", enc.Len())
				}
			}()
			tt.fn(enc)
		})
	}
}

func TestEncoder_PatchBranch(t *testing.T) {
	enc := NewEncoderWithDefaults()
	br := enc.Push(BranchEqz(0, 0))
	enc.Push(Trap(TrapUnreachable))
	ret := enc.Push(Return())
	back := enc.Push(Branch(0))

	if err := enc.PatchBranch(br, ret); err != nil {
		t.Fatal(err)
	}
	if err := enc.PatchBranch(back, br); err != nil {
		t.Fatal(err)
	}
	if got := enc.Get(br).BranchCond().Offset; got != 2 {
		t.Errorf("forward offset = %d, want 2", got)
	}
	if got := enc.Get(back).Branch(); got != -3 {
		t.Errorf("backward offset = %d, want -3", got)
	}

	if _, err := enc.Finish(); err != nil {
		t.Errorf("Finish() = %v", err)
	}
}

func TestEncoder_PatchBranchErrors(t *testing.T) {
	enc := NewEncoderWithDefaults()
	ret := enc.Push(Return())

	err := enc.PatchBranch(ret, 0)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindShapeMismatch}) {
		t.Errorf("patching non-branch: %v", err)
	}
	err = enc.PatchBranch(10, 0)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOutOfBounds}) {
		t.Errorf("patching out of range: %v", err)
	}
}

func TestBranchOffsetBetween(t *testing.T) {
	if o, err := BranchOffsetBetween(10, 4); err != nil || o != -6 {
		t.Errorf("BranchOffsetBetween(10, 4) = %d, %v", o, err)
	}
	if _, err := BranchOffsetBetween(0, math.MaxUint32); err == nil {
		t.Error("expected overflow")
	}
}

func TestEncoder_FinishValidates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	opts := DefaultEncoderOptions()
	opts.Logger = zap.New(core)
	enc := NewEncoder(opts)

	enc.Push(Branch(5))
	_, err := enc.Finish()
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindOutOfBounds}) {
		t.Fatalf("Finish() = %v", err)
	}
	if logs.Len() != 1 {
		t.Errorf("expected one warning, got %d", logs.Len())
	}

	opts.ValidateOnFinish = false
	enc = NewEncoder(opts)
	enc.Push(Branch(5))
	if _, err := enc.Finish(); err != nil {
		t.Errorf("Finish() without validation = %v", err)
	}
}

func TestEncoder_Reset(t *testing.T) {
	enc := NewEncoder(EncoderOptions{Capacity: 4})
	enc.Push(Return())
	enc.Reset()
	if enc.Len() != 0 {
		t.Errorf("Len() = %d after Reset", enc.Len())
	}
	if at := enc.Push(Return()); at != 0 {
		t.Errorf("Push after Reset = %d", at)
	}
}
