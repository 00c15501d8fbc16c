package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-regvm/bytecode"
	"github.com/wippyai/wasm-regvm/wasm"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		familyName  = flag.String("family", "", "Show the forms of a single family (e.g. i32.add)")
		disasm      = flag.Bool("disasm", false, "Encode and disassemble a sample instruction stream")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		bytecode.SetLogger(log)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))

	var err error
	switch {
	case *interactive:
		err = runInteractive()
	case *disasm:
		err = runDisasm()
	case *familyName != "":
		err = printFamily(*familyName, color)
	default:
		printTable(color)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func render(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}

func printTable(color bool) {
	fmt.Println(render(headerStyle, fmt.Sprintf("%d opcodes", bytecode.NumOpcodes()), color))
	for i := 1; i < bytecode.NumOpcodes(); i++ {
		op := bytecode.Opcode(i)
		info := op.Info()
		fmt.Printf("%4d  %s %s\n", i,
			render(nameStyle, fmt.Sprintf("%-28s", info.Name), color),
			render(dimStyle, describe(info), color))
	}
}

// lookupFamily resolves a Wasm text name such as "i32.add" to its family.
func lookupFamily(name string) (bytecode.Family, bool) {
	for op := range 256 {
		if wasm.OpcodeName(byte(op)) == name {
			return bytecode.LookupFamily(byte(op))
		}
	}
	return bytecode.Family{}, false
}

func printFamily(name string, color bool) error {
	f, ok := lookupFamily(name)
	if !ok {
		return fmt.Errorf("unknown family %q", name)
	}
	fmt.Println(render(headerStyle, fmt.Sprintf("%s (0x%02X)", wasm.OpcodeName(f.Wasm), f.Wasm), color))
	for _, enc := range bytecode.Encodings() {
		op, ok := f.Opcode(enc)
		if !ok {
			continue
		}
		fmt.Printf("  %-14s %s %s\n", enc,
			render(nameStyle, fmt.Sprintf("%-28s", op), color),
			render(dimStyle, describe(op.Info()), color))
	}
	return nil
}

func describe(info bytecode.OpInfo) string {
	parts := []string{info.Shape.String()}
	if info.Type != 0 {
		parts = append(parts, wasm.FromAPI(info.Type).String())
	}
	if info.Trailer != bytecode.TrailerNone {
		parts = append(parts, "+"+info.Trailer.Opcode().String())
	}
	if info.Unsigned {
		parts = append(parts, "unsigned")
	}
	if info.NonZeroImm {
		parts = append(parts, "nonzero")
	}
	return strings.Join(parts, " ")
}

// runDisasm encodes
//
//	if x != 0 { return x / 7 + 100 } else { return 1 }
//
// with x in r0 and prints the result.
func runDisasm() error {
	seven, _ := bytecode.NewConst16[int32](7)
	hundred, _ := bytecode.NewConst16[int32](100)

	enc := bytecode.NewEncoderWithDefaults()
	br := enc.Push(bytecode.BranchEqz(0, 0))
	enc.Push(bytecode.I32DivSImm16(1, 0, seven))
	enc.Push(bytecode.I32AddImm16(1, 1, hundred))
	enc.Push(bytecode.ReturnReg(1))
	if err := enc.PatchBranch(br, enc.Next()); err != nil {
		return err
	}
	enc.Push(bytecode.ReturnImm32(bytecode.AnyConst32FromI32(1)))

	code, err := enc.Finish()
	if err != nil {
		return err
	}
	return bytecode.Disassemble(os.Stdout, code)
}
