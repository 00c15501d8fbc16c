package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-regvm/errors"
	"github.com/wippyai/wasm-regvm/wasm"
)

func TestCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"i32.add", "I32Add"},
		{"i32.sub_imm16_rev", "I32SubImm16Rev"},
		{"i64.load8_s_offset16", "I64Load8SOffset16"},
		{"return_i64_imm32", "ReturnI64Imm32"},
		{"f32.copysign_imm", "F32CopysignImm"},
	}
	for _, tt := range tests {
		if got := camel(tt.in); got != tt.want {
			t.Errorf("camel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name         string
		tag16, tag32 string
	}{
		{"i32.add", "int32", "int32"},
		{"i32.div_u", "uint32", "uint32"},
		{"i64.rem_s", "int64", "int64"},
		{"i64.lt_u", "uint64", "int64"},
		{"f32.sub", "int32", "float32"},
	}
	for _, tt := range tests {
		if got := tag16(tt.name); got != tt.tag16 {
			t.Errorf("tag16(%q) = %q, want %q", tt.name, got, tt.tag16)
		}
		if got := tag32(tt.name); got != tt.tag32 {
			t.Errorf("tag32(%q) = %q, want %q", tt.name, got, tt.tag32)
		}
	}
}

func TestBuildRows(t *testing.T) {
	fams := buildFamilies()
	if len(fams) != 145 {
		t.Errorf("families = %d, want 145", len(fams))
	}
	rows, err := buildRows(fams)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 377 {
		t.Errorf("rows = %d, want 377", len(rows))
	}
	if err := checkUnique(rows); err != nil {
		t.Fatal(err)
	}

	nonZero := 0
	for _, r := range rows {
		if r.NonZero {
			nonZero++
			if !strings.HasPrefix(r.Name, "i") {
				t.Errorf("%s: NonZero on a float operator", r.Name)
			}
		}
		if r.Ctor != "" {
			if _, ok := ctors[r.Ctor]; !ok {
				t.Errorf("%s: unknown constructor kind %q", r.Name, r.Ctor)
			}
		}
	}
	if nonZero != 16 {
		t.Errorf("NonZero rows = %d, want 16", nonZero)
	}
}

func TestRowRendering(t *testing.T) {
	r, err := familyRow(family{name: "i32.sub", kind: kindBinary}, "imm16_rev")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.Params(), "result Register, lhs Const16[int32], rhs Register"; got != want {
		t.Errorf("Params() = %q, want %q", got, want)
	}
	if got, want := r.Body(), "binaryImm16(OpI32SubImm16Rev, result, rhs, lhs.Any())"; got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}

	r, err = familyRow(family{name: "i64.store8", kind: kindStore}, "at_imm")
	if err != nil {
		t.Fatal(err)
	}
	if r.Shape != "ShapeStoreAtImm8" {
		t.Errorf("Shape = %s, want ShapeStoreAtImm8", r.Shape)
	}
	if got, want := r.Params(), "address Const32[uint32], value int8"; got != want {
		t.Errorf("Params() = %q, want %q", got, want)
	}

	if _, err := familyRow(family{name: "i32.load", kind: kindLoad}, "imm"); err == nil {
		t.Error("expected error for unknown load form")
	}
}

func TestFamilyRowErrors(t *testing.T) {
	unsupported := &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindUnsupported}
	tests := []struct {
		name string
		f    family
		form string
	}{
		{"unknown operator", family{name: "i32.madd", kind: kindBinary}, "reg"},
		{"add as load", family{name: "i32.add", kind: kindLoad}, "reg"},
		{"load as store", family{name: "i32.load", kind: kindStore}, "reg"},
		{"unknown form", family{name: "i32.add", kind: kindBinary}, "at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := familyRow(tt.f, tt.form)
			if !errors.Is(err, unsupported) {
				t.Errorf("familyRow() = %v, want unsupported", err)
			}
		})
	}
}

func TestAccess(t *testing.T) {
	tests := []struct {
		name   string
		op     byte
		narrow string
	}{
		{"i32.store8", wasm.OpI32Store8, "int8"},
		{"i64.store8", wasm.OpI64Store8, "int8"},
		{"i32.store16", wasm.OpI32Store16, "int16"},
		{"i64.store32", wasm.OpI64Store32, "int16"},
		{"i64.store", wasm.OpI64Store, "int16"},
	}
	for _, tt := range tests {
		align, err := access(tt.name, tt.op)
		if err != nil {
			t.Fatalf("access(%s) = %v", tt.name, err)
		}
		if got := narrow(align); got != tt.narrow {
			t.Errorf("narrow(%s) = %s, want %s", tt.name, got, tt.narrow)
		}
	}

	_, err := access("i32.store", wasm.OpI64Store)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindOverflow}) {
		t.Errorf("8-byte access for i32 = %v, want overflow", err)
	}
	if _, err := access("i32.add", wasm.OpI32Add); err == nil {
		t.Error("expected error for non-memory operator")
	}
}

func TestAPIConst(t *testing.T) {
	for typ, want := range map[string]string{
		"i32": "api.ValueTypeI32",
		"i64": "api.ValueTypeI64",
		"f32": "api.ValueTypeF32",
		"f64": "api.ValueTypeF64",
	} {
		got, err := apiConst(typ)
		if err != nil || got != want {
			t.Errorf("apiConst(%s) = %q, %v, want %q", typ, got, err, want)
		}
	}
	if _, err := apiConst("v128"); err == nil {
		t.Error("expected error for v128")
	}
}

func TestCheckUnique(t *testing.T) {
	err := checkUnique([]row{{Op: "OpI32Add"}, {Op: "OpI32Add"}})
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindInvalidData}) {
		t.Errorf("checkUnique() = %v", err)
	}
}

func TestRunMatchesCheckedIn(t *testing.T) {
	dir := t.TempDir()
	if err := run(zap.NewNop(), dir); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"opcode_gen.go", "construct_gen.go"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		want, err := os.ReadFile(filepath.Join("..", "..", name))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Errorf("%s is stale, run go generate", name)
		}
	}
}
