// Package wasm provides the WebAssembly binary format constants the register
// machine instruction set is translated from.
//
// It covers the single-byte opcodes of the core instruction set together with
// their text format names and the numeric value types:
//
//	wasm.OpcodeName(wasm.OpI32Add) // "i32.add"
//	wasm.NaturalAlign(wasm.OpI64Load16S) // 1, true
//	wasm.ValI64.String() // "i64"
//
// Value types share their encoding with wazero's api.ValueType and convert
// losslessly in both directions:
//
//	t, ok := wasm.ValF32.API() // api.ValueTypeF32, true
//	v := wasm.FromAPI(api.ValueTypeI32) // wasm.ValI32
package wasm
