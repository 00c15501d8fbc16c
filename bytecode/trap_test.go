package bytecode

import (
	"testing"

	"github.com/wippyai/wasm-regvm/errors"
)

func TestTrapCode_String(t *testing.T) {
	tests := []struct {
		code TrapCode
		want string
	}{
		{TrapUnreachable, "wasm `unreachable` instruction executed"},
		{TrapIntegerDivisionByZero, "integer divide by zero"},
		{TrapIntegerOverflow, "integer overflow"},
		{TrapInvalidInstruction, "invalid instruction"},
		{TrapCode(500), "trap(500)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTrapCode_Err(t *testing.T) {
	err := TrapMemoryOutOfBounds.Err()
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindTrap}) {
		t.Fatalf("Err() = %v", err)
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Value != TrapMemoryOutOfBounds {
		t.Errorf("Value = %v", e.Value)
	}

	for c := TrapUnreachable; c <= TrapInvalidInstruction+1; c++ {
		if !errors.As(c.Err(), &e) || e.Detail != c.String() {
			t.Errorf("%d: Detail = %q, want %q", c, e.Detail, c.String())
		}
	}
}

func TestCheckExecutable(t *testing.T) {
	tests := []struct {
		name  string
		instr Instruction
		ok    bool
	}{
		{"return", Return(), true},
		{"add", I32Add(0, 1, 2), true},
		{"const32", DataConst32(AnyConst32FromU32(1)), false},
		{"const ref", DataConstRef(1), false},
		{"register", DataRegister(1), false},
		{"invalid", Instruction{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckExecutable(tt.instr)
			if (err == nil) != tt.ok {
				t.Fatalf("CheckExecutable() = %v", err)
			}
			if err == nil {
				return
			}
			var e *errors.Error
			if !errors.As(err, &e) || e.Kind != errors.KindTrap || e.Phase != errors.PhaseRuntime {
				t.Fatalf("CheckExecutable() = %v, want trap", err)
			}
			if e.Value != TrapInvalidInstruction || e.Op != tt.instr.Opcode().String() {
				t.Errorf("Value = %v Op = %q", e.Value, e.Op)
			}
		})
	}
}
