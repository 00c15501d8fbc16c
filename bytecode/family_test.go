package bytecode

import (
	"strings"
	"testing"

	"github.com/wippyai/wasm-regvm/wasm"
)

func TestFamilies_Consistent(t *testing.T) {
	fams := Families()
	if len(fams) == 0 {
		t.Fatal("no families")
	}
	seen := make(map[byte]bool)
	for _, f := range fams {
		if seen[f.Wasm] {
			t.Errorf("%s: duplicate Wasm opcode %#x", f.Name, f.Wasm)
		}
		seen[f.Wasm] = true

		if got := wasm.OpcodeName(f.Wasm); got != f.Name {
			t.Errorf("%s: Wasm opcode %#x is named %q", f.Name, f.Wasm, got)
		}

		reg, ok := f.Opcode(EncReg)
		if !ok {
			t.Errorf("%s: missing register form", f.Name)
			continue
		}
		if reg.String() != f.Name {
			t.Errorf("%s: register form is %s", f.Name, reg)
		}

		for _, enc := range Encodings() {
			op, ok := f.Opcode(enc)
			if !ok {
				continue
			}
			if !strings.HasPrefix(op.String(), f.Name) {
				t.Errorf("%s/%s: opcode %s", f.Name, enc, op)
			}
		}
	}
}

func TestLookupFamily(t *testing.T) {
	f, ok := LookupFamily(wasm.OpI32Sub)
	if !ok {
		t.Fatal("i32.sub not found")
	}
	tests := []struct {
		enc  Encoding
		want Opcode
	}{
		{EncReg, OpI32Sub},
		{EncImm16, OpI32SubImm16},
		{EncImm16Rev, OpI32SubImm16Rev},
		{EncImm, OpI32SubImm},
		{EncImmRev, OpI32SubImmRev},
	}
	for _, tt := range tests {
		got, ok := f.Opcode(tt.enc)
		if !ok || got != tt.want {
			t.Errorf("Opcode(%s) = %s, %v want %s", tt.enc, got, ok, tt.want)
		}
	}
	if _, ok := f.Opcode(EncAt); ok {
		t.Error("i32.sub has no at form")
	}
	if _, ok := f.Opcode(Encoding(99)); ok {
		t.Error("unknown encoding must not resolve")
	}
	if len(f.Opcodes()) != 5 {
		t.Errorf("Opcodes() = %v", f.Opcodes())
	}

	if _, ok := LookupFamily(wasm.OpCall); ok {
		t.Error("call has no family")
	}
}

func TestFamilies_Memory(t *testing.T) {
	for op := wasm.OpI32Load; op <= wasm.OpI64Store32; op++ {
		f, ok := LookupFamily(op)
		if !ok {
			t.Errorf("%s: no family", wasm.OpcodeName(op))
			continue
		}
		if _, ok := f.Opcode(EncAt); !ok {
			t.Errorf("%s: no at form", f.Name)
		}
		if _, ok := f.Opcode(EncOffset16); !ok {
			t.Errorf("%s: no offset16 form", f.Name)
		}
		_, hasImm := f.Opcode(EncAtImm)
		if wasm.IsStore(op) && f.Name[0] == 'i' && !hasImm {
			t.Errorf("%s: integer store without inline value form", f.Name)
		}
	}
}

func TestFamilies_CopyIsolated(t *testing.T) {
	fams := Families()
	fams[0].Name = "changed"
	if Families()[0].Name == "changed" {
		t.Error("Families must return a copy")
	}
}

func TestEncoding_String(t *testing.T) {
	if EncOffset16Imm.String() != "offset16_imm" {
		t.Errorf("String() = %q", EncOffset16Imm.String())
	}
	if len(Encodings()) != int(numEncodings) {
		t.Errorf("Encodings() = %v", Encodings())
	}
}
