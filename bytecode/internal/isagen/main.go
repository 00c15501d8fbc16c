// Command isagen generates the opcode table, the instruction families and
// the instruction constructors of package bytecode.
//
// Usage:
//
//	go run ./internal/isagen -out .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-regvm/errors"
)

const header = "// Code generated by isagen. DO NOT EDIT.\n\npackage bytecode\n"

var opcodesTmpl = template.Must(template.New("opcodes").Parse(header + `
import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/wasm"
)

const (
	// OpInvalid is the zero Opcode and never appears in valid streams.
	OpInvalid Opcode = iota
{{range .Rows}}
	// {{.Doc}}
	{{.Op}}
{{end}}
	numOpcodes
)

var opInfos = [numOpcodes]OpInfo{
	OpInvalid: {Name: "invalid", Shape: ShapeNone},
{{- range .Rows}}
	{{.Op}}: { {{- .Fields -}} },
{{- end}}
}

var families = []Family{
{{- range .Families}}
	{Name: "{{.Name}}", Wasm: {{.WasmConst}}, Forms: [numEncodings]Opcode{ {{- .Forms -}} }},
{{- end}}
}
`))

var constructTmpl = template.Must(template.New("construct").Parse(header + `
{{range .Rows}}{{if .Ctor}}
// {{.Func}} creates a new [{{.Op}}] instruction.
func {{.Func}}({{.Params}}) {{.Result}} {
	return {{.Body}}
}
{{end}}{{end}}`))

type data struct {
	Rows     []row
	Families []family
}

func main() {
	var (
		out     = flag.String("out", ".", "Output directory")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, outDir string) error {
	fams := buildFamilies()
	rows, err := buildRows(fams)
	if err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "build table")
	}
	if err := checkUnique(rows); err != nil {
		return err
	}
	d := data{Rows: rows, Families: fams}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"opcode_gen.go", opcodesTmpl},
		{"construct_gen.go", constructTmpl},
	}
	for _, f := range files {
		src, err := render(f.tmpl, d)
		if err != nil {
			return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "render "+f.name)
		}
		path := filepath.Join(outDir, f.name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info("generated", zap.String("file", path), zap.Int("bytes", len(src)))
	}
	log.Info("instruction set",
		zap.Int("opcodes", len(rows)+1),
		zap.Int("families", len(fams)))
	return nil
}

func render(t *template.Template, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "execute template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "format")
	}
	return src, nil
}

func checkUnique(rows []row) error {
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if seen[r.Op] {
			return errors.New(errors.PhaseGenerate, errors.KindInvalidData).
				Op(r.Op).
				Detail("duplicate opcode").
				Build()
		}
		seen[r.Op] = true
	}
	return nil
}
