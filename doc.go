// Package regvm is the instruction set of a register-based WebAssembly
// interpreter.
//
// Wasm function bodies are translated into a flat stream of fixed-size
// instruction words that address a per-frame register file instead of an
// operand stack. The module only defines the encoding: what an instruction
// word holds and how it is constructed, validated, encoded and printed.
// Translation and execution build on top of it.
//
// # Packages
//
//	regvm/
//	├── bytecode/        Instruction words, registers, constants, opcode table
//	│   └── internal/isagen/  Generator for opcode_gen.go and construct_gen.go
//	├── wasm/            Wasm value types and opcode names
//	├── errors/          Structured error types
//	└── cmd/isa/         Opcode table browser and disassembler
//
// # Quick Start
//
// Encode a function body and print it:
//
//	imm, _ := bytecode.NewConst16[int32](100)
//
//	enc := bytecode.NewEncoderWithDefaults()
//	enc.Push(bytecode.I32AddImm16(1, 0, imm))
//	enc.Push(bytecode.ReturnReg(1))
//
//	code, err := enc.Finish()
//	if err != nil {
//		return err
//	}
//	bytecode.Disassemble(os.Stdout, code)
//
// # Logging
//
// The bytecode package logs through a package-level zap logger that
// defaults to a no-op. Install one with bytecode.SetLogger.
package regvm
