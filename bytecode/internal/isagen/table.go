package main

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/errors"
	"github.com/wippyai/wasm-regvm/wasm"
)

type kind int

const (
	kindUnary kind = iota
	kindBinary
	kindLoad
	kindStore
)

// family is a Wasm operator and the instruction forms it translates to.
type family struct {
	name  string
	kind  kind
	forms []string
}

// row is a single opcode of the generated instruction set.
type row struct {
	Name    string
	Op      string
	Shape   string
	Type    string
	APIType string
	Trailer string
	Doc     string
	Narrow  string

	Unsigned bool
	NonZero  bool

	// constructor, empty for hand-written ones
	Ctor string
	Func string
	Wasm string
}

type control struct {
	name, shape, typ, trailer, doc string
}

var controls = []control{
	{"const_ref", "ShapeConstRef", "", "", "OpConstRef is a data word holding a ConstRef parameter of the preceding instruction. Executing it traps."},
	{"const32", "ShapeConst32", "", "", "OpConst32 is a data word holding a 32-bit parameter of the preceding instruction. Executing it traps."},
	{"register", "ShapeRegister", "", "", "OpRegister is a data word holding a Register parameter of the preceding instruction. Executing it traps."},
	{"trap", "ShapeTrap", "", "", "OpTrap traps execution with its TrapCode."},
	{"return", "ShapeNone", "", "", "OpReturn returns from the function without results."},
	{"return_reg", "ShapeReg", "", "", "OpReturnReg returns the value of a register."},
	{"return_imm32", "ShapeImm32", "", "", "OpReturnImm32 returns a 32-bit constant."},
	{"return_i64_imm32", "ShapeImm32", "i64", "", "OpReturnI64Imm32 returns a 32-bit constant sign-extended to i64."},
	{"return_imm", "ShapeNone", "", "TrailerConstRef", "OpReturnImm returns a constant pool value. Followed by an OpConstRef word."},
	{"copy", "ShapeUnary", "", "", "OpCopy copies the input register to the result register."},
	{"copy_imm32", "ShapeRegImm32", "", "", "OpCopyImm32 copies a 32-bit constant to the result register."},
	{"copy_i64_imm32", "ShapeRegImm32", "i64", "", "OpCopyI64Imm32 copies a 32-bit constant sign-extended to i64 to the result register."},
	{"copy_imm", "ShapeReg", "", "TrailerConstRef", "OpCopyImm copies a constant pool value to the result register. Followed by an OpConstRef word."},
	{"branch", "ShapeBranch", "", "", "OpBranch branches unconditionally by its offset."},
	{"branch_eqz", "ShapeBranchCond", "", "", "OpBranchEqz branches by its offset if the condition register is zero."},
	{"branch_nez", "ShapeBranchCond", "", "", "OpBranchNez branches by its offset if the condition register is not zero."},
}

var suffixes = map[string]string{
	"reg":          "",
	"imm16":        "_imm16",
	"imm16_rev":    "_imm16_rev",
	"imm":          "_imm",
	"imm_rev":      "_imm_rev",
	"copysign_imm": "_imm",
	"at":           "_at",
	"offset16":     "_offset16",
	"offset16_imm": "_offset16_imm",
	"at_imm":       "_at_imm",
}

var encodings = map[string]string{
	"reg":          "EncReg",
	"imm16":        "EncImm16",
	"imm16_rev":    "EncImm16Rev",
	"imm":          "EncImm",
	"imm_rev":      "EncImmRev",
	"copysign_imm": "EncCopysignImm",
	"at":           "EncAt",
	"offset16":     "EncOffset16",
	"offset16_imm": "EncOffset16Imm",
	"at_imm":       "EncAtImm",
}

var valueTypes = map[string]wasm.ValType{
	"i32": wasm.ValI32,
	"i64": wasm.ValI64,
	"f32": wasm.ValF32,
	"f64": wasm.ValF64,
}

// wasmOps maps Wasm text names to their single-byte opcodes.
var wasmOps = func() map[string]byte {
	m := make(map[string]byte)
	for op := range 256 {
		if name := wasm.OpcodeName(byte(op)); name != "" {
			m[name] = byte(op)
		}
	}
	return m
}()

// apiConst renders the wazero api constant of a numeric value type.
func apiConst(typ string) (string, error) {
	vt, ok := valueTypes[typ]
	if !ok || !vt.IsNumeric() {
		return "", errors.Unsupported(errors.PhaseGenerate, "value type "+typ)
	}
	t, ok := vt.API()
	if !ok {
		return "", errors.Unsupported(errors.PhaseGenerate, "value type "+vt.String())
	}
	return "api.ValueType" + strings.ToUpper(api.ValueTypeName(t)), nil
}

func buildFamilies() []family {
	var fams []family
	add := func(name string, k kind, forms ...string) {
		fams = append(fams, family{name: name, kind: k, forms: forms})
	}

	for _, t := range []string{"i32", "i64"} {
		for _, op := range []string{"clz", "ctz", "popcnt"} {
			add(t+"."+op, kindUnary, "reg")
		}
		for _, op := range []string{"eq", "ne", "lt_s", "lt_u", "gt_s", "gt_u", "le_s", "le_u", "ge_s", "ge_u"} {
			add(t+"."+op, kindBinary, "reg", "imm16", "imm")
		}
		for _, op := range []string{"add", "sub", "mul", "div_s", "div_u", "rem_s", "rem_u", "and", "or", "xor", "shl", "shr_s", "shr_u", "rotl", "rotr"} {
			switch op {
			case "add", "mul", "and", "or", "xor":
				add(t+"."+op, kindBinary, "reg", "imm16", "imm")
			default:
				add(t+"."+op, kindBinary, "reg", "imm16", "imm16_rev", "imm", "imm_rev")
			}
		}
	}

	for _, t := range []string{"f32", "f64"} {
		for _, op := range []string{"eq", "ne", "lt", "gt", "le", "ge"} {
			if t == "f32" {
				add(t+"."+op, kindBinary, "reg", "imm")
			} else {
				add(t+"."+op, kindBinary, "reg")
			}
		}
		for _, op := range []string{"abs", "neg", "ceil", "floor", "trunc", "nearest", "sqrt"} {
			add(t+"."+op, kindUnary, "reg")
		}
		for _, op := range []string{"add", "sub", "mul", "div", "min", "max"} {
			switch {
			case t == "f64":
				add(t+"."+op, kindBinary, "reg")
			case op == "sub" || op == "div":
				add(t+"."+op, kindBinary, "reg", "imm", "imm_rev")
			default:
				add(t+"."+op, kindBinary, "reg", "imm")
			}
		}
		add(t+".copysign", kindBinary, "reg", "copysign_imm")
	}

	for _, op := range []string{
		"i32.wrap_i64", "i32.trunc_f32_s", "i32.trunc_f32_u", "i32.trunc_f64_s", "i32.trunc_f64_u",
		"i64.extend_i32_s", "i64.extend_i32_u", "i64.trunc_f32_s", "i64.trunc_f32_u", "i64.trunc_f64_s", "i64.trunc_f64_u",
		"f32.convert_i32_s", "f32.convert_i32_u", "f32.convert_i64_s", "f32.convert_i64_u", "f32.demote_f64",
		"f64.convert_i32_s", "f64.convert_i32_u", "f64.convert_i64_s", "f64.convert_i64_u", "f64.promote_f32",
		"i32.extend8_s", "i32.extend16_s", "i64.extend8_s", "i64.extend16_s", "i64.extend32_s",
	} {
		add(op, kindUnary, "reg")
	}

	for _, op := range []string{
		"i32.load", "i64.load", "f32.load", "f64.load", "i32.load8_s", "i32.load8_u", "i32.load16_s", "i32.load16_u",
		"i64.load8_s", "i64.load8_u", "i64.load16_s", "i64.load16_u", "i64.load32_s", "i64.load32_u",
	} {
		add(op, kindLoad, "reg", "at", "offset16")
	}

	for _, op := range []string{"i32.store", "i64.store", "f32.store", "f64.store", "i32.store8", "i32.store16", "i64.store8", "i64.store16", "i64.store32"} {
		if strings.HasPrefix(op, "f") {
			add(op, kindStore, "reg", "offset16", "at")
		} else {
			add(op, kindStore, "reg", "offset16", "offset16_imm", "at", "at_imm")
		}
	}
	return fams
}

// camel turns "i32.sub_imm16_rev" into "I32SubImm16Rev".
func camel(name string) string {
	var b strings.Builder
	for _, p := range strings.FieldsFunc(name, func(r rune) bool { return r == '.' || r == '_' }) {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func operator(name string) string {
	_, op, _ := strings.Cut(name, ".")
	return op
}

func isUnsigned(name string) bool {
	switch operator(name) {
	case "div_u", "rem_u", "lt_u", "gt_u", "le_u", "ge_u":
		return true
	}
	return false
}

func isIntDiv(name string) bool {
	op := operator(name)
	return strings.HasPrefix(name, "i") && (strings.HasPrefix(op, "div") || strings.HasPrefix(op, "rem"))
}

// access returns log2 of the bytes a memory operator touches. The access
// may not be wider than the operator's value type.
func access(name string, op byte) (uint32, error) {
	align, ok := wasm.NaturalAlign(op)
	if !ok {
		return 0, errors.Unsupported(errors.PhaseGenerate, name+" is not a memory access")
	}
	if vt := valueTypes[name[:3]]; 1<<align > vt.Size() {
		return 0, errors.New(errors.PhaseGenerate, errors.KindOverflow).
			Op(name).
			Type(vt.String()).
			Detail("access of %d bytes", 1<<align).
			Build()
	}
	return align, nil
}

// narrow returns the Go type of an inline store value: int8 for byte
// stores, int16 otherwise.
func narrow(align uint32) string {
	if align == 0 {
		return "int8"
	}
	return "int16"
}

func tag16(name string) string {
	switch {
	case name[:3] == "i64" && isUnsigned(name):
		return "uint64"
	case name[:3] == "i64":
		return "int64"
	case isUnsigned(name):
		return "uint32"
	default:
		return "int32"
	}
}

func tag32(name string) string {
	switch name[:3] {
	case "i32":
		if isUnsigned(name) {
			return "uint32"
		}
		return "int32"
	case "i64":
		return "int64"
	default:
		return "float32"
	}
}

func buildRows(fams []family) ([]row, error) {
	var rows []row
	for _, c := range controls {
		r := row{
			Name:    c.name,
			Op:      "Op" + camel(c.name),
			Shape:   c.shape,
			Type:    c.typ,
			Trailer: c.trailer,
			Doc:     c.doc,
		}
		if r.Type != "" {
			t, err := apiConst(r.Type)
			if err != nil {
				return nil, err
			}
			r.APIType = t
		}
		rows = append(rows, r)
	}

	for _, f := range fams {
		for _, form := range f.forms {
			r, err := familyRow(f, form)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
	}
	return rows, nil
}

func familyRow(f family, form string) (row, error) {
	name := f.name
	op, ok := wasmOps[name]
	if !ok {
		return row{}, errors.Unsupported(errors.PhaseGenerate, "wasm operator "+name)
	}
	apiType, err := apiConst(name[:3])
	if err != nil {
		return row{}, err
	}
	isa := name + suffixes[form]
	r := row{
		Name:     isa,
		Op:       "Op" + camel(isa),
		Func:     camel(isa),
		Type:     name[:3],
		APIType:  apiType,
		Unsigned: isUnsigned(name),
		Wasm:     name,
		NonZero:  isIntDiv(name) && (form == "imm16" || form == "imm"),
	}
	nz := ""
	if isIntDiv(name) && form != "reg" {
		nz = " The immediate is never zero."
	}

	switch f.kind {
	case kindUnary:
		r.Shape = "ShapeUnary"
		r.Doc = fmt.Sprintf("%s computes result = %s(input).", r.Op, name)
		r.Ctor = "unary"
	case kindBinary:
		r.Ctor = form
		switch form {
		case "reg":
			r.Shape = "ShapeBinary"
			r.Doc = fmt.Sprintf("%s computes result = %s(lhs, rhs).", r.Op, name)
		case "imm16":
			r.Shape = "ShapeBinaryImm16"
			r.Doc = fmt.Sprintf("%s computes result = %s(reg, imm16).", r.Op, name) + nz
		case "imm16_rev":
			r.Shape = "ShapeBinaryImm16"
			r.Doc = fmt.Sprintf("%s computes result = %s(imm16, reg).", r.Op, name)
		case "imm":
			r.Shape = "ShapeUnary"
			r.Trailer = "TrailerConst32"
			r.Doc = fmt.Sprintf("%s computes result = %s(input, imm32). Followed by an OpConst32 word holding imm32.", r.Op, name) + nz
		case "imm_rev":
			r.Shape = "ShapeUnary"
			r.Trailer = "TrailerConst32"
			r.Doc = fmt.Sprintf("%s computes result = %s(imm32, input). Followed by an OpConst32 word holding imm32.", r.Op, name)
		case "copysign_imm":
			r.Shape = "ShapeCopysignImm"
			r.Doc = fmt.Sprintf("%s computes result = %s(lhs, sign).", r.Op, name)
		default:
			return row{}, unknownForm(name, form)
		}
	case kindLoad:
		if !wasm.IsLoad(op) {
			return row{}, errors.Unsupported(errors.PhaseGenerate, name+" is not a load")
		}
		if _, err := access(name, op); err != nil {
			return row{}, err
		}
		r.Ctor = "load_" + form
		switch form {
		case "reg":
			r.Shape = "ShapeUnary"
			r.Trailer = "TrailerConst32"
			r.Doc = fmt.Sprintf("%s loads result = %s(ptr + offset). Followed by an OpConst32 word holding offset.", r.Op, name)
		case "at":
			r.Shape = "ShapeRegImm32"
			r.Doc = fmt.Sprintf("%s loads result = %s(address).", r.Op, name)
		case "offset16":
			r.Shape = "ShapeLoadOffset16"
			r.Doc = fmt.Sprintf("%s loads result = %s(ptr + offset16).", r.Op, name)
		default:
			return row{}, unknownForm(name, form)
		}
	case kindStore:
		if !wasm.IsStore(op) {
			return row{}, errors.Unsupported(errors.PhaseGenerate, name+" is not a store")
		}
		align, err := access(name, op)
		if err != nil {
			return row{}, err
		}
		r.Ctor = "store_" + form
		r.Narrow = narrow(align)
		n := r.Narrow
		switch form {
		case "reg":
			r.Shape = "ShapeStore"
			r.Trailer = "TrailerRegister"
			r.Doc = fmt.Sprintf("%s stores %s(ptr + offset, value). Followed by an OpRegister word holding value.", r.Op, name)
		case "offset16":
			r.Shape = "ShapeStoreOffset16"
			r.Doc = fmt.Sprintf("%s stores %s(ptr + offset16, value).", r.Op, name)
		case "offset16_imm":
			r.Shape = "ShapeStoreOffset16Imm16"
			if n == "int8" {
				r.Shape = "ShapeStoreOffset16Imm8"
			}
			r.Doc = fmt.Sprintf("%s stores %s(ptr + offset16, value) with an inline %s value.", r.Op, name, n)
		case "at":
			r.Shape = "ShapeStoreAt"
			r.Doc = fmt.Sprintf("%s stores %s(address, value).", r.Op, name)
		case "at_imm":
			r.Shape = "ShapeStoreAtImm16"
			if n == "int8" {
				r.Shape = "ShapeStoreAtImm8"
			}
			r.Doc = fmt.Sprintf("%s stores %s(address, value) with an inline %s value.", r.Op, name, n)
		default:
			return row{}, unknownForm(name, form)
		}
	}
	return r, nil
}

func unknownForm(name, form string) error {
	return errors.Unsupported(errors.PhaseGenerate, fmt.Sprintf("%s: unknown form %q", name, form))
}

// Fields renders the OpInfo literal of the row.
func (r row) Fields() string {
	fields := []string{fmt.Sprintf("Name: %q", r.Name), "Shape: " + r.Shape}
	if r.APIType != "" {
		fields = append(fields, "Type: "+r.APIType)
	}
	if r.Unsigned {
		fields = append(fields, "Unsigned: true")
	}
	if r.Trailer != "" {
		fields = append(fields, "Trailer: "+r.Trailer)
	}
	if r.NonZero {
		fields = append(fields, "NonZeroImm: true")
	}
	return strings.Join(fields, ", ")
}

// ctorSig is the signature and body of a generated constructor.
// {op}, {tag16}, {tag32} and {narrow} are substituted per row.
type ctorSig struct {
	params, result, body string
}

var ctors = map[string]ctorSig{
	"unary":              {"result, input Register", "Instruction", "unary({op}, result, input)"},
	"reg":                {"result, lhs, rhs Register", "Instruction", "binary({op}, result, lhs, rhs)"},
	"imm16":              {"result, lhs Register, rhs Const16[{tag16}]", "Instruction", "binaryImm16({op}, result, lhs, rhs.Any())"},
	"imm16_rev":          {"result Register, lhs Const16[{tag16}], rhs Register", "Instruction", "binaryImm16({op}, result, rhs, lhs.Any())"},
	"imm":                {"result, lhs Register, rhs Const32[{tag32}]", "Seq", "withConst32(unary({op}, result, lhs), rhs.Any())"},
	"imm_rev":            {"result Register, lhs Const32[{tag32}], rhs Register", "Seq", "withConst32(unary({op}, result, rhs), lhs.Any())"},
	"copysign_imm":       {"result, lhs Register, rhs Sign", "Instruction", "copysignImm({op}, result, lhs, rhs)"},
	"load_reg":           {"result, ptr Register, offset Const32[uint32]", "Seq", "withConst32(unary({op}, result, ptr), offset.Any())"},
	"load_at":            {"result Register, address Const32[uint32]", "Instruction", "regImm32({op}, result, address.Any())"},
	"load_offset16":      {"result, ptr Register, offset Const16[uint32]", "Instruction", "loadOffset16({op}, result, ptr, offset)"},
	"store_reg":          {"ptr Register, offset Const32[uint32], value Register", "Seq", "withRegister(store({op}, ptr, offset), value)"},
	"store_offset16":     {"ptr Register, offset Const16[uint32], value Register", "Instruction", "storeOffset16({op}, ptr, offset, uint16(value))"},
	"store_offset16_imm": {"ptr Register, offset Const16[uint32], value {narrow}", "Instruction", "storeOffset16({op}, ptr, offset, uint16(value))"},
	"store_at":           {"address Const32[uint32], value Register", "Instruction", "storeAt({op}, address, uint16(value))"},
	"store_at_imm":       {"address Const32[uint32], value {narrow}", "Instruction", "storeAt({op}, address, uint16(value))"},
}

func (r row) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{op}", r.Op,
		"{tag16}", tag16(r.Wasm),
		"{tag32}", tag32(r.Wasm),
		"{narrow}", r.Narrow,
	)
}

// Params renders the constructor parameter list.
func (r row) Params() string {
	return r.replacer().Replace(ctors[r.Ctor].params)
}

// Result renders the constructor result type.
func (r row) Result() string {
	return ctors[r.Ctor].result
}

// Body renders the constructor return expression.
func (r row) Body() string {
	return r.replacer().Replace(ctors[r.Ctor].body)
}

// Forms renders the Forms array literal of a family.
func (f family) Forms() string {
	items := make([]string, len(f.forms))
	for i, form := range f.forms {
		items[i] = encodings[form] + ": Op" + camel(f.name+suffixes[form])
	}
	return strings.Join(items, ", ")
}

// Name returns the Wasm operator name.
func (f family) Name() string {
	return f.name
}

// WasmConst returns the wasm package constant of the operator.
func (f family) WasmConst() string {
	return "wasm.Op" + camel(f.name)
}
