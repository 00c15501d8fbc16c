package wasm

import (
	"github.com/tetratelabs/wazero/api"
)

// ValType represents a WebAssembly value type.
// See constants.go for ValI32, ValI64, ValF32, ValF64, etc.
type ValType byte

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	case ValV128:
		return "v128"
	case ValFuncRef:
		return "funcref"
	case ValExtern:
		return "externref"
	default:
		return "unknown"
	}
}

// API returns the wazero value type with the same encoding.
// wazero's api has no funcref or v128 value type, so those report false.
func (v ValType) API() (api.ValueType, bool) {
	switch v {
	case ValI32, ValI64, ValF32, ValF64, ValExtern:
		return api.ValueType(v), true
	}
	return 0, false
}

// FromAPI converts a wazero value type.
func FromAPI(t api.ValueType) ValType {
	return ValType(t)
}

// IsNumeric reports whether v is one of the four scalar number types.
func (v ValType) IsNumeric() bool {
	switch v {
	case ValI32, ValI64, ValF32, ValF64:
		return true
	}
	return false
}

// Size returns the size of a numeric value in bytes, or 0 for other types.
func (v ValType) Size() int {
	switch v {
	case ValI32, ValF32:
		return 4
	case ValI64, ValF64:
		return 8
	}
	return 0
}
