package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindMissingTrailer,
				Path:   []string{"func", "3"},
				Op:     "i32.add_imm",
				Type:   "i32",
				Detail: "expected const32 data word",
				Pos:    7,
			},
			contains: []string{"[validate]", "missing_trailer", "at word 7", "func.3", "i32.add_imm (i32)", "expected const32"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindOutOfBounds,
				Pos:   NoPos,
			},
			contains: []string{"[decode]", "out_of_bounds"},
			excludes: []string{"at word"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindTrap,
				Detail: "unreachable",
				Cause:  errors.New("underlying error"),
				Pos:    NoPos,
			},
			contains: []string{"[runtime]", "trap", "unreachable", "caused by", "underlying error"},
		},
		{
			name: "op only",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindStrayData,
				Op:     "const32",
				Detail: "data word without owning instruction",
				Pos:    0,
			},
			contains: []string{"at word 0", ": const32 - data word"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindOverflow,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseEncode, Kind: KindOverflow}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseValidate, KindShapeMismatch).
		Path("func", "main").
		Op("i32.add").
		Type("binary").
		At(4).
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "unary", "binary").
		Build()

	if err.Phase != PhaseValidate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseValidate)
	}
	if err.Kind != KindShapeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindShapeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "func" || err.Path[1] != "main" {
		t.Errorf("Path = %v, want [func main]", err.Path)
	}
	if err.Op != "i32.add" {
		t.Errorf("Op = %v, want 'i32.add'", err.Op)
	}
	if err.Type != "binary" {
		t.Errorf("Type = %v, want 'binary'", err.Type)
	}
	if err.Pos != 4 {
		t.Errorf("Pos = %v, want 4", err.Pos)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected unary, got binary" {
		t.Errorf("Detail = %v, want 'expected unary, got binary'", err.Detail)
	}
}

func TestBuilder_DefaultPos(t *testing.T) {
	err := New(PhaseEncode, KindOverflow).Build()
	if err.Pos != NoPos {
		t.Errorf("Pos = %v, want NoPos", err.Pos)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseEncode, []string{"rhs"}, 40000, "const16")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != 40000 {
			t.Errorf("Value = %v, want 40000", err.Value)
		}
		if !strings.Contains(err.Error(), "overflows const16") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseValidate, 2, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 || err.Pos != 2 {
			t.Errorf("Value = %v Pos = %v, want 10 and 2", err.Value, err.Pos)
		}
	})

	t.Run("InvalidOpcode", func(t *testing.T) {
		err := InvalidOpcode(PhaseValidate, 0, 9999)
		if err.Kind != KindInvalidOpcode {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidOpcode)
		}
		if !strings.Contains(err.Detail, "9999") {
			t.Errorf("Detail = %v, should contain opcode", err.Detail)
		}
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		err := ShapeMismatch("i32.add", "binary", "unary")
		if err.Phase != PhaseDecode || err.Kind != KindShapeMismatch {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Pos != NoPos {
			t.Errorf("Pos = %v, want NoPos", err.Pos)
		}
	})

	t.Run("MissingTrailer", func(t *testing.T) {
		err := MissingTrailer(PhaseValidate, 3, "i32.add_imm", "const32")
		if err.Kind != KindMissingTrailer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingTrailer)
		}
	})

	t.Run("StrayData", func(t *testing.T) {
		err := StrayData(PhaseValidate, 0, "register")
		if err.Kind != KindStrayData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindStrayData)
		}
	})

	t.Run("Trap", func(t *testing.T) {
		err := Trap(trapCode("100% out of fuel"))
		if err.Phase != PhaseRuntime || err.Kind != KindTrap {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Detail != "100% out of fuel" || err.Value != trapCode("100% out of fuel") {
			t.Errorf("Detail=%q Value=%v", err.Detail, err.Value)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseGenerate, "f64 immediates")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(PhaseGenerate, KindInvalidData, cause, "write output")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause chain")
		}
		if err.Pos != NoPos {
			t.Errorf("Pos = %d, want NoPos", err.Pos)
		}
		if got := Wrap(PhaseGenerate, KindInvalidData, cause, "100% done").Detail; got != "100% done" {
			t.Errorf("Detail = %q", got)
		}
	})
}

func TestIsAs(t *testing.T) {
	inner := MissingTrailer(PhaseValidate, 1, "i32.load", "const32")
	wrapped := Wrap(PhaseEncode, KindInvalidData, inner, "finish")

	if !Is(wrapped, &Error{Phase: PhaseValidate, Kind: KindMissingTrailer}) {
		t.Error("Is should find the wrapped error")
	}

	var e *Error
	if !As(wrapped, &e) || e.Kind != KindInvalidData {
		t.Errorf("As = %v", e)
	}
}

type trapCode string

func (c trapCode) String() string { return string(c) }
